package api

// ServerConfig holds the settings for the HTTP surface
type ServerConfig struct {
	Bind         string
	Port         int
	APIKey       string
	MaxBodyBytes int64
}

// APIResponse is the standard JSON envelope for API responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeResult is the payload returned by the encode endpoints. Result is
// hex or base64 text, which is always ASCII-safe in JSON.
type EncodeResult struct {
	Result string `json:"result"`
	Length int    `json:"length"`
}

// ChecksumResult is the payload returned by the crc32 endpoint
type ChecksumResult struct {
	Checksum uint32 `json:"checksum"`
	Seed     uint32 `json:"seed"`
}
