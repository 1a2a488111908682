package commands

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
)

type ConfigCommand struct {
	configOptions
	common.Config

	Save bool `long:"save" description:"Write the effective configuration to the config file"`

	stdout io.Writer
}

func (c *ConfigCommand) Execute(_ *cli.Context) {
	if err := c.execute(); err != nil {
		logrus.Fatalln(err)
	}
}

// execute prints the configuration resulting from every layer.
func (c *ConfigCommand) execute() error {
	if err := c.loadConfig(&c.Config); err != nil {
		return err
	}

	if !c.Save {
		return c.config.Encode(writerOrDefault(c.stdout, os.Stdout))
	}

	if err := c.config.SaveConfig(c.ConfigFile); err != nil {
		return err
	}

	logrus.WithField("file", c.ConfigFile).Infoln("Configuration saved")

	return nil
}

func init() {
	common.RegisterCommand2("config", "print or save the effective configuration", &ConfigCommand{})
}
