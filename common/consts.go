package common

const (
	// EnvPrefix prefixes the environment variables overriding the config.
	EnvPrefix = "FLIGHTSCRIPT"

	DefaultConfigFileName = "config.toml"
)
