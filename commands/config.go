package commands

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/aero-tools/flightscript/common"
)

type configOptions struct {
	config *common.Config

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Config file"`
	EnvFile    string `long:"env-file" env:"ENV_FILE" description:"Dotenv file read before the environment"`
}

// loadConfig builds the effective configuration with flags as the top layer.
func (c *configOptions) loadConfig(flags *common.Config) error {
	if c.EnvFile != "" {
		if err := common.LoadEnvFile(c.EnvFile); err != nil {
			return err
		}
	}

	if c.ConfigFile == "" {
		c.ConfigFile = common.GetDefaultConfigFile()
	}

	config, err := common.LoadLayeredConfig(c.ConfigFile, flags)
	if err != nil {
		return err
	}

	// Config validation is best-effort
	if err := common.Validate(config); err != nil {
		logrus.Warningf("There might be a problem with your config\n%v", err)
	}

	c.config = config

	return nil
}
