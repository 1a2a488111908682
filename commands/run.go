package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/aero-tools/flightscript/common"
	"gitlab.com/aero-tools/flightscript/runner"
)

type RunCommand struct {
	configOptions
	common.Config

	Timeout time.Duration `long:"timeout" env:"RUN_TIMEOUT" description:"Stop FlightStream when the run takes longer than this"`

	stdout io.Writer
	stderr io.Writer
}

func (c *RunCommand) Execute(_ *cli.Context) {
	if err := c.execute(context.Background()); err != nil {
		logrus.Fatalln(err)
	}
}

func (c *RunCommand) execute(ctx context.Context) error {
	if err := c.loadConfig(&c.Config); err != nil {
		return err
	}

	metrics := runner.NewMetrics()
	defer writeMetrics(c.config.MetricsFile, metrics)

	return runScript(ctx, c.config, c.config.ScriptFile, c.Timeout, metrics, c.stdout, c.stderr)
}

// runScript runs FlightStream on scriptPath until it exits, the timeout
// expires or the process gets interrupted. A non-zero exit code is an error.
func runScript(
	ctx context.Context,
	config *common.Config,
	scriptPath string,
	timeout time.Duration,
	metrics *runner.Metrics,
	stdout, stderr io.Writer,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	r := runner.New(logrus.StandardLogger(), metrics)
	result, err := r.Run(ctx, runner.Options{
		Executable:          config.Executable,
		ScriptPath:          scriptPath,
		Hidden:              config.Hidden,
		CheckScript:         true,
		GracefulKillTimeout: config.GracefulKillTimeout,
		ForceKillTimeout:    config.ForceKillTimeout,
	})

	if result != nil {
		_, _ = io.WriteString(writerOrDefault(stdout, os.Stdout), result.Stdout)
		_, _ = io.WriteString(writerOrDefault(stderr, os.Stderr), result.Stderr)
	}

	if err != nil {
		return err
	}

	if !result.Success() {
		return fmt.Errorf("FlightStream exited with code %d", result.ExitCode)
	}

	return nil
}

func writerOrDefault(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}

	return w
}

func init() {
	common.RegisterCommand2("run", "run FlightStream on a script file", &RunCommand{})
}
