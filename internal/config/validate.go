// Package config provides configuration loading for asnber tools.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// maxTagOctets is the longest identifier a uint64 tag number can need.
const maxTagOctets = 11

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateParserConfig(&config.Parser)...)
	errs = append(errs, validateOutputConfig(&config.Output)...)

	return errs
}

// Validate combines the results of ValidateConfig into a single error.
func Validate(config *Config) error {
	return multierr.Combine(ValidateConfig(config)...)
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q, must be one of: debug, info, warn, error", config.Level),
		})
	}

	switch config.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q, must be one of: text, json", config.Format),
		})
	}

	return errs
}

// validateParserConfig validates tag parser configuration.
func validateParserConfig(config *ParserConfig) []error {
	var errs []error

	if config.MaxOctets < 0 || config.MaxOctets > maxTagOctets {
		errs = append(errs, ValidationError{
			Field:   "parser.max_octets",
			Message: fmt.Sprintf("must be between 0 and %d, got %d", maxTagOctets, config.MaxOctets),
		})
	}

	return errs
}

// validateOutputConfig validates command output configuration.
func validateOutputConfig(config *OutputConfig) []error {
	var errs []error

	switch config.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid format %q, must be one of: text, json", config.Format),
		})
	}

	return errs
}
