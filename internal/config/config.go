// Package config defines the runtime configuration and its validation.
package config

import (
	"fmt"
	"os"
)

// Config holds all runtime options, populated from flags and environment
// variables.
type Config struct {
	// Common flags
	Parallel int    `validate:"min=1"`
	Quiet    bool
	Stats    bool
	Delete   bool
	Dry      bool   `mapstructure:"dry-run"`
	Output   string `validate:"required"`
	Suite    string `validate:"oneof=aes-gcm chacha20"`
	Suffix   string `validate:"required"`

	// Password sources, mutually exclusive. When both are empty the
	// password is prompted for interactively.
	Password     string `validate:"exclusive=PasswordFile"`
	PasswordFile string `mapstructure:"password-file" validate:"omitempty,file"`

	// File selection
	Include     []string
	Exclude     []string
	IncludeFrom string `mapstructure:"include-from" validate:"omitempty,file"`
	ExcludeFrom string `mapstructure:"exclude-from" validate:"omitempty,file"`

	// Command-specific
	Decrypt bool

	// Positional arguments
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags and checks
// that the output directory exists and is a directory.
func (c *Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	info, err := os.Stat(c.Output)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("output %q is not a directory", c.Output)
	}

	return nil
}
