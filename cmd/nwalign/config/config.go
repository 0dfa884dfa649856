// SPDX-License-Identifier: MIT

// Package config holds the nwalign YAML configuration: scoring weights,
// alphabet, fill strategy, output and logging settings.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/seqalign/nw"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultFileName is used by "nwalign config init" when no path is given.
const DefaultFileName = "nwalign.yaml"

// Config is the top-level configuration document.
type Config struct {
	// Scoring carries the match / mismatch / gap weights.
	Scoring nw.ScoringPolicy `yaml:"scoring"`

	// Alphabet constrains input symbols: any, dna, rna, iupac or protein.
	Alphabet string `yaml:"alphabet" validate:"alphabet"`

	Fill   FillConfig   `yaml:"fill"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// FillConfig selects the matrix fill strategy.
type FillConfig struct {
	// Parallel enables the anti-diagonal wavefront fill.
	Parallel bool `yaml:"parallel"`
	// Workers bounds goroutines per diagonal; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format   string `yaml:"format" validate:"oneof=text yaml"`
	Color    string `yaml:"color" validate:"oneof=auto always never"`
	Matrix   bool   `yaml:"matrix"`
	KeepCase bool   `yaml:"keep_case"`
	// Width wraps text alignments into blocks; 0 disables wrapping.
	Width int `yaml:"width" validate:"gte=0"`
}

// LogConfig sets the slog level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scoring:  nw.DefaultPolicy(),
		Alphabet: "any",
		Fill:     FillConfig{Parallel: false, Workers: 0},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
			Width:  60,
		},
		Log: LogConfig{Level: "warn"},
	}
}

var validate = mustValidator()

// newValidator returns a validator with the custom "alphabet" tag registered.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("alphabet", validateAlphabet); err != nil {
		return nil, fmt.Errorf("config: register alphabet validation: %w", err)
	}

	return v, nil
}

func mustValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}

	return v
}

// validateAlphabet accepts every name nw.ParseAlphabet understands.
func validateAlphabet(fl validator.FieldLevel) bool {
	_, err := nw.ParseAlphabet(fl.Field().String())

	return err == nil
}

// Validate checks field constraints and wraps failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// AlphabetSet resolves the configured alphabet name.
func (c Config) AlphabetSet() (nw.Alphabet, error) {
	return nw.ParseAlphabet(c.Alphabet)
}

// AlignOptions translates the configuration into nw options.
func (c Config) AlignOptions() ([]nw.Option, error) {
	alphabet, err := c.AlphabetSet()
	if err != nil {
		return nil, err
	}
	opts := []nw.Option{nw.WithAlphabet(alphabet)}
	if c.Fill.Parallel {
		opts = append(opts, nw.WithParallelFill(c.Fill.Workers))
	}

	return opts, nil
}
