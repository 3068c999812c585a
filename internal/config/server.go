package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ServerConfig holds settings for the HTTP and WebSocket game host.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS origin list passed to the cors middleware
	AllowOrigins string

	// ReadTimeout bounds how long a request may take to arrive
	ReadTimeout time.Duration

	// MaxGames caps the number of hosted games (0 = unlimited)
	MaxGames int

	// LogRequests enables the request logger middleware
	LogRequests bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
		ReadTimeout:  10 * time.Second,
		LogRequests:  true,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout < 0 {
		return fmt.Errorf("negative read timeout (%v): %w", s.ReadTimeout, errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("negative game limit (%d): %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
