// Package config loads service configuration from config.yml and the
// environment, following the ApplyDefaults/Validate convention used by every
// config struct in the repository.
package config

import (
	"fmt"

	"github.com/skillsenselab/todo-api/internal/auth"
	"github.com/skillsenselab/todo-api/internal/logger"
	"github.com/skillsenselab/todo-api/internal/observability"
	"github.com/skillsenselab/todo-api/internal/server"
)

// Config is the full service configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`

	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Auth          auth.Spec            `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`

	// TodosSeedFile optionally points at a JSON file of initial todos.
	TodosSeedFile string `yaml:"todos_seed_file" mapstructure:"todos_seed_file"`
	// UsersSeedFile optionally points at a JSON file of initial users.
	UsersSeedFile string `yaml:"users_seed_file" mapstructure:"users_seed_file"`
	// NotesDir is the directory holding uploaded notes.
	NotesDir string `yaml:"notes_dir" mapstructure:"notes_dir"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "todo-api"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.NotesDir == "" {
		c.NotesDir = "data/notes"
	}
	c.Logging.ServiceName = c.Name
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("config.server: %w", err)
	}
	return nil
}
