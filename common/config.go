package common

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"gitlab.com/aero-tools/flightscript/helpers/homedir"
	"gitlab.com/aero-tools/flightscript/helpers/process"
	"gitlab.com/aero-tools/flightscript/script"
)

// Config holds the settings shared by every command. Zero values mean unset
// so that layers can be merged. The same struct is the flag layer of the
// commands embedding it.
//
//nolint:lll
type Config struct {
	Executable string `toml:"executable,omitempty" json:"executable,omitempty" envconfig:"FS_EXE" long:"executable" description:"Path of the FlightStream executable"`
	ScriptFile string `toml:"script_file,omitempty" json:"script_file,omitempty" envconfig:"SCRIPT_FILE" long:"script" description:"Script file to write and run"`
	Hidden     bool   `toml:"hidden,omitempty" json:"hidden,omitempty" envconfig:"HIDDEN" long:"hidden" description:"Run FlightStream without its user interface"`

	GracefulKillTimeout time.Duration `toml:"graceful_kill_timeout,omitempty" json:"graceful_kill_timeout,omitempty" envconfig:"GRACEFUL_KILL_TIMEOUT" jsonschema:"minimum=0" long:"graceful-kill-timeout" description:"How long FlightStream gets to exit after being asked to"`
	ForceKillTimeout    time.Duration `toml:"force_kill_timeout,omitempty" json:"force_kill_timeout,omitempty" envconfig:"FORCE_KILL_TIMEOUT" jsonschema:"minimum=0" long:"force-kill-timeout" description:"How long to wait for FlightStream to exit after killing it"`

	CatalogFile string `toml:"catalog_file,omitempty" json:"catalog_file,omitempty" envconfig:"CATALOG_FILE" long:"catalog" description:"Additional command catalog (TOML)"`
	MetricsFile string `toml:"metrics_file,omitempty" json:"metrics_file,omitempty" envconfig:"METRICS_FILE" long:"metrics-file" description:"Write metrics in text exposition format to this file"`
}

func NewConfig() *Config {
	return &Config{
		ScriptFile:          script.DefaultFile,
		GracefulKillTimeout: process.GracefulTimeout,
		ForceKillTimeout:    process.KillTimeout,
	}
}

func GetDefaultConfigFile() string {
	return filepath.Join(homedir.New().ConfigDir(NAME), DefaultConfigFileName)
}

// LoadConfig decodes configFile over c. A missing file leaves c untouched.
func (c *Config) LoadConfig(configFile string) error {
	_, err := os.Stat(configFile)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	md, err := toml.DecodeFile(configFile, c)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", configFile, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("decoding %s: unknown keys %v", configFile, undecoded)
	}

	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return nil
}

func (c *Config) SaveConfig(configFile string) error {
	var newConfig bytes.Buffer
	newBuffer := bufio.NewWriter(&newConfig)

	if err := c.Encode(newBuffer); err != nil {
		return err
	}

	if err := newBuffer.Flush(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
		return err
	}

	return os.WriteFile(configFile, newConfig.Bytes(), 0o600)
}

// ConfigFromEnv reads FLIGHTSCRIPT_* variables. The executable is also read
// from FS_EXE.
func ConfigFromEnv() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return c, nil
}

// LoadEnvFile sets the variables of a dotenv file that aren't set yet.
func LoadEnvFile(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading env file: %w", err)
	}

	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

// Merge overrides c with the set values of every layer, in order.
func (c *Config) Merge(layers ...*Config) error {
	for _, layer := range layers {
		if layer == nil {
			continue
		}

		if err := mergo.Merge(c, layer, mergo.WithOverride); err != nil {
			return fmt.Errorf("merging config: %w", err)
		}
	}

	return nil
}

// LoadLayeredConfig builds the effective configuration: defaults, then the
// config file, then the environment, then flags.
func LoadLayeredConfig(configFile string, flags *Config) (*Config, error) {
	file := new(Config)
	if err := file.LoadConfig(configFile); err != nil {
		return nil, err
	}

	env, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	config := NewConfig()
	if err := config.Merge(file, env, flags); err != nil {
		return nil, err
	}

	hd := homedir.New()
	config.Executable = hd.Expand(config.Executable)
	config.ScriptFile = hd.Expand(config.ScriptFile)
	config.CatalogFile = hd.Expand(config.CatalogFile)
	config.MetricsFile = hd.Expand(config.MetricsFile)

	return config, nil
}
