// Package config provides runtime configuration for the chess front ends:
// the interactive loop, batch self-play and the game server.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	// Grouped settings
	Output   OutputConfig
	SelfPlay SelfPlayConfig
	Server   ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		SelfPlay:   *NewSelfPlayConfig(),
		Server:     *NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and game views are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer diagnostics are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
