package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/calberts/binascii/pkg/binascii"
)

// Config represents the binascii server configuration
type Config struct {
	Bind     string   `yaml:"bind"`
	Port     int      `yaml:"port"`
	Security Security `yaml:"security"`
	Limits   Limits   `yaml:"limits"`
	Logging  Logging  `yaml:"logging"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Limits contains request limits for the HTTP surface
type Limits struct {
	// MaxBodyBytes caps the size of a request body. Zero means
	// DefaultMaxBodyBytes.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultMaxBodyBytes is the request body cap used when the config does
// not set one.
const DefaultMaxBodyBytes = 32 << 20

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Bind: "127.0.0.1",
		Port: 8080,
		Security: Security{
			APIKey: "auto",
		},
		Limits: Limits{
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key,
// returned as lowercase hex
func GenerateSecureKey(length int) (string, error) {
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	encoded, err := binascii.Hexlify(raw)
	if err != nil {
		return "", fmt.Errorf("failed to encode secure key: %w", err)
	}
	return string(encoded), nil
}

// BootstrapConfig loads the configuration at configPath, creating it with
// a generated API key when it does not exist yet
func BootstrapConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		return LoadConfig(configPath)
	}

	config := DefaultConfig()

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, err
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}
