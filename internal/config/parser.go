// Package config provides configuration loading for asnber tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Parser errors.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrUnknownKey   = errors.New("unknown configuration key")
	ErrInvalidEnv   = errors.New("invalid environment override")
)

// EnvPrefix prefixes the environment variables read by ApplyEnv.
const EnvPrefix = "ASNBER_"

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses TOML,
// and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from TOML data.
// It substitutes environment variables and applies defaults for missing values.
func ParseConfig(data []byte) (*Config, error) {
	// Substitute environment variables
	data = substituteEnvVars(data)

	// Start with defaults, the decoder only overwrites keys that are present
	config := DefaultConfig()

	meta, err := toml.Decode(string(data), config)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return config, nil
}

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	// Pattern matches ${VAR} or ${VAR:-default}
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllFunc(data, func(match []byte) []byte {
		// Extract content between ${ and }
		content := string(match[2 : len(match)-1])

		// Check for default value syntax: VAR:-default
		if idx := strings.Index(content, ":-"); idx != -1 {
			varName := content[:idx]
			defaultVal := content[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return []byte(val)
			}
			return []byte(defaultVal)
		}

		// Simple variable substitution
		return []byte(os.Getenv(content))
	})
}

// ApplyEnv overrides config fields from ASNBER_* variables found through
// lookup, typically os.LookupEnv.
func ApplyEnv(config *Config, lookup func(string) (string, bool)) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{"LOG_LEVEL", &config.Logging.Level},
		{"LOG_FORMAT", &config.Logging.Format},
		{"LOG_OUTPUT", &config.Logging.Output},
		{"OUTPUT_FORMAT", &config.Output.Format},
	}
	for _, s := range strs {
		if v, ok := lookup(EnvPrefix + s.name); ok {
			*s.dst = strings.TrimSpace(v)
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"ALLOW_NON_MINIMAL", &config.Parser.AllowNonMinimal},
		{"OUTPUT_LOWERCASE", &config.Output.Lowercase},
	}
	for _, b := range bools {
		if v, ok := lookup(EnvPrefix + b.name); ok {
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidEnv, EnvPrefix, b.name, v)
			}
			*b.dst = parsed
		}
	}

	if v, ok := lookup(EnvPrefix + "MAX_OCTETS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sMAX_OCTETS=%q", ErrInvalidEnv, EnvPrefix, v)
		}
		config.Parser.MaxOctets = n
	}

	return nil
}
