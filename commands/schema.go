package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/plan"
)

type SchemaCommand struct {
	stdout io.Writer
}

func (c *SchemaCommand) Execute(_ *cli.Context) {
	if err := c.execute(); err != nil {
		logrus.Fatalln(err)
	}
}

func (c *SchemaCommand) execute() error {
	schema, err := plan.Schema()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writerOrDefault(c.stdout, os.Stdout), string(schema))

	return err
}

func init() {
	common.RegisterCommand2("schema", "print the JSON schema of plan files", &SchemaCommand{})
}
