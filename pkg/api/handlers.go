package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/calberts/binascii/pkg/binascii"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = 32 << 20
	}
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleHexEncode hex-encodes the raw request body
func (s *Server) handleHexEncode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	out, err := binascii.Hexlify(body)
	s.metrics.RecordCodecOperation("hex_encode", err, len(body), len(out))
	if err != nil {
		// Unreachable for a request body, which is always byte-like.
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, EncodeResult{Result: string(out), Length: len(out)})
}

// handleHexDecode decodes a hex request body into raw bytes
func (s *Server) handleHexDecode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	out, err := binascii.Unhexlify(body)
	s.metrics.RecordCodecOperation("hex_decode", err, len(body), len(out))
	if err != nil {
		s.sendCodecError(w, err)
		return
	}
	sendBinary(w, out)
}

// handleBase64Encode base64-encodes the raw request body
func (s *Server) handleBase64Encode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	out, err := binascii.B2ABase64(body)
	s.metrics.RecordCodecOperation("base64_encode", err, len(body), len(out))
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, EncodeResult{Result: string(out), Length: len(out)})
}

// handleBase64Decode decodes a base64 request body into raw bytes
func (s *Server) handleBase64Decode(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	out, err := binascii.A2BBase64(body)
	s.metrics.RecordCodecOperation("base64_decode", err, len(body), len(out))
	if err != nil {
		s.sendCodecError(w, err)
		return
	}
	sendBinary(w, out)
}

// handleCRC32 checksums the raw request body, optionally continuing from a
// seed passed as ?seed=N (decimal, or 0x-prefixed hex)
func (s *Server) handleCRC32(w http.ResponseWriter, r *http.Request) {
	var seed uint32
	if q := r.URL.Query().Get("seed"); q != "" {
		parsed, err := strconv.ParseUint(q, 0, 32)
		if err != nil {
			sendError(w, "invalid seed: must be an unsigned 32-bit integer", http.StatusBadRequest)
			return
		}
		seed = uint32(parsed)
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	sum, err := binascii.CRC32(body, seed)
	s.metrics.RecordCodecOperation("crc32", err, len(body), 4)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, ChecksumResult{Checksum: sum, Seed: seed})
}

// readBody reads the request body under the configured size cap
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(w, "request body too large", http.StatusRequestEntityTooLarge)
		} else {
			sendError(w, "failed to read request body", http.StatusBadRequest)
		}
		return nil, false
	}
	return body, true
}

// sendCodecError maps the codec error taxonomy onto HTTP status codes.
// Every decode failure is an input-validation outcome, so they all map to
// 400 with the codec's own message.
func (s *Server) sendCodecError(w http.ResponseWriter, err error) {
	var typeErr *binascii.UnsupportedTypeError
	var b64Err *binascii.Base64DecodeError
	switch {
	case errors.Is(err, binascii.ErrOddLength),
		errors.Is(err, binascii.ErrNonHexDigit),
		errors.Is(err, binascii.ErrNonASCII),
		errors.As(err, &b64Err),
		errors.As(err, &typeErr):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// sendBinary writes decoded bytes as an octet-stream response
func sendBinary(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
