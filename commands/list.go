package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/formatter"
)

type ListCommand struct {
	configOptions

	Catalog string `long:"catalog" description:"Additional command catalog (TOML)"`

	stdout io.Writer
}

func (c *ListCommand) Execute(_ *cli.Context) {
	if err := c.execute(); err != nil {
		logrus.Fatalln(err)
	}
}

func (c *ListCommand) execute() error {
	if err := c.loadConfig(&common.Config{CatalogFile: c.Catalog}); err != nil {
		return err
	}

	s, err := newSession(c.config.CatalogFile)
	if err != nil {
		return err
	}

	definitions := s.writer.Catalog.Definitions()

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Command", "Keyword", "Parameters", "Title"})
	for _, def := range definitions {
		t.AppendRow(table.Row{def.Name, def.Keyword(), describeParams(def.Params), def.Title})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d commands", len(definitions))})

	_, err = fmt.Fprintln(writerOrDefault(c.stdout, os.Stdout), t.Render())

	return err
}

// describeParams renders params as "name:type", required ones marked with *.
func describeParams(params []formatter.Param) string {
	return strings.Join(lo.Map(params, func(p formatter.Param, _ int) string {
		name := p.Name
		if p.Required {
			name += "*"
		}

		return name + ":" + string(p.Type)
	}), " ")
}

func init() {
	common.RegisterCommand2("commands", "list the commands scripts can be built from", &ListCommand{})
}
