// Package config provides configuration loading for asnber tools.
package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
		Parser: ParserConfig{
			AllowNonMinimal: false,
			MaxOctets:       0,
		},
		Output: OutputConfig{
			Format:    "text",
			Lowercase: false,
		},
	}
}
