// Package config provides configuration loading for asnber tools.
package config

import "github.com/KilimcininKorOglu/asnber/internal/ber"

// Config holds the complete tool configuration.
type Config struct {
	Logging LogConfig    `toml:"logging"`
	Parser  ParserConfig `toml:"parser"`
	Output  OutputConfig `toml:"output"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// ParserConfig holds tag parsing configuration.
type ParserConfig struct {
	AllowNonMinimal bool `toml:"allow_non_minimal"`
	MaxOctets       int  `toml:"max_octets"`
}

// ParseOptions returns the tag parser options described by c.
func (c ParserConfig) ParseOptions() ber.ParseOptions {
	return ber.ParseOptions{
		AllowNonMinimal: c.AllowNonMinimal,
		MaxOctets:       c.MaxOctets,
	}
}

// OutputConfig holds command output configuration.
type OutputConfig struct {
	Format    string `toml:"format"`
	Lowercase bool   `toml:"lowercase"`
}
