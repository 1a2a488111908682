package commands

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/plan"
	"gitlab.com/aero-tools/flightscript/runner"
	"gitlab.com/aero-tools/flightscript/script"
)

var errPlanNotSet = errors.New("plan file not set, use --plan")

type BuildCommand struct {
	configOptions
	common.Config

	Plan    string        `short:"p" long:"plan" env:"PLAN_FILE" description:"Plan file (YAML or TOML) listing the commands of the script"`
	Output  string        `short:"o" long:"output" description:"Script file to write, overrides the plan and --script"`
	Run     bool          `long:"run" description:"Run FlightStream on the script once written"`
	Timeout time.Duration `long:"timeout" env:"RUN_TIMEOUT" description:"Stop FlightStream when the run takes longer than this"`

	stdout io.Writer
	stderr io.Writer
}

func (c *BuildCommand) Execute(_ *cli.Context) {
	if err := c.execute(context.Background()); err != nil {
		logrus.Fatalln(err)
	}
}

func (c *BuildCommand) execute(ctx context.Context) error {
	if c.Plan == "" {
		return errPlanNotSet
	}

	if err := c.loadConfig(&c.Config); err != nil {
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

	metrics := runner.NewMetrics()
	defer writeMetrics(c.config.MetricsFile, s.collector, metrics)

	output := lo.CoalesceOrEmpty(c.Output, p.Output, c.config.ScriptFile)

	script.HardReset(s.log, output, s.logger)

	if err := p.Apply(s.writer); err != nil {
		return err
	}

	if err := s.writeScript(output); err != nil {
		return err
	}

	if !c.Run {
		return nil
	}

	return runScript(ctx, c.config, output, c.Timeout, metrics, c.stdout, c.stderr)
}

func init() {
	common.RegisterCommand2("build", "write a script file from a plan", &BuildCommand{})
}
