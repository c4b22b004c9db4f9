package server

import (
	"fmt"

	"github.com/skillsenselab/todo-api/internal/server/middleware"
)

// Config holds HTTP server configuration.
type Config struct {
	Host         string                 `yaml:"host" mapstructure:"host"`
	Port         int                    `yaml:"port" mapstructure:"port"`
	ReadTimeout  int                    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int                    `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int                    `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	MaxBodySize  string                 `yaml:"max_body_size" mapstructure:"max_body_size"`
	CORS         *middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "2MB"
	}
	if c.CORS == nil {
		c.CORS = &middleware.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-API-Key"},
		}
	}
}

// Validate checks server configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got: %d)", c.Port)
	}
	return nil
}
