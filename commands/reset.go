package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/script"
)

type ResetCommand struct {
	configOptions

	ScriptFile string `long:"script" description:"Script file to remove"`
}

func (c *ResetCommand) Execute(_ *cli.Context) {
	if err := c.execute(); err != nil {
		logrus.Fatalln(err)
	}
}

func (c *ResetCommand) execute() error {
	if err := c.loadConfig(&common.Config{ScriptFile: c.ScriptFile}); err != nil {
		return err
	}

	script.HardReset(script.New(), c.config.ScriptFile, nil)
	logrus.WithField("file", c.config.ScriptFile).Infoln("Script reset")

	return nil
}

func init() {
	common.RegisterCommand2("reset", "remove the script file", &ResetCommand{})
}
