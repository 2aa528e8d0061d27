// Package config provides configuration loading for asnber tools.
//
// Configuration is read from a TOML file. Keys that are absent keep their
// default values; unknown keys are rejected.
//
//	[logging]
//	level = "debug"
//	format = "json"
//	output = "${ASNBER_LOG_FILE:-stderr}"
//
//	[parser]
//	allow_non_minimal = true
//	max_octets = 6
//
//	[output]
//	format = "text"
//	lowercase = false
//
// ${VAR} and ${VAR:-default} references are replaced with environment
// variable values before parsing. ApplyEnv then applies ASNBER_*
// overrides such as ASNBER_LOG_LEVEL and ASNBER_ALLOW_NON_MINIMAL.
//
// Use Validate to check the result; it reports every problem at once.
package config
