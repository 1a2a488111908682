package commands

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/plan"
	"gitlab.com/aero-tools/flightscript/script"
)

type ShowCommand struct {
	configOptions

	Plan    string `short:"p" long:"plan" env:"PLAN_FILE" description:"Plan file (YAML or TOML) listing the commands of the script"`
	Catalog string `long:"catalog" description:"Additional command catalog (TOML)"`
	NoColor bool   `long:"no-color" description:"Print the script without colors"`

	stdout io.Writer
}

func (c *ShowCommand) Execute(_ *cli.Context) {
	if err := c.execute(); err != nil {
		logrus.Fatalln(err)
	}
}

// execute prints the script the plan builds without writing any file.
func (c *ShowCommand) execute() error {
	if c.Plan == "" {
		return errPlanNotSet
	}

	if err := c.loadConfig(&common.Config{CatalogFile: c.Catalog}); err != nil {
		return err
	}

	p, err := plan.Load(c.Plan)
	if err != nil {
		return err
	}

	s, err := newSession(c.config.CatalogFile, p.Catalog)
	if err != nil {
		return err
	}

	if err := p.Apply(s.writer); err != nil {
		return err
	}

	return script.Display(writerOrDefault(c.stdout, os.Stdout), s.log, !c.NoColor && !color.NoColor)
}

func init() {
	common.RegisterCommand2("show", "print the script a plan builds", &ShowCommand{})
}
