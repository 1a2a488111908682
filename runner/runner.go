package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"mvdan.cc/sh/v3/syntax"

	"gitlab.com/aero-tools/flightscript/helpers/process"
	"gitlab.com/aero-tools/flightscript/script"
)

const (
	// ScriptFlag precedes the path of the script to execute.
	ScriptFlag = "-script"
	// HiddenFlag runs the application without its user interface.
	HiddenFlag = "-hidden"

	// ExecutableEnv names the variable read when no executable is given.
	ExecutableEnv = "FS_EXE"
)

// InterruptedExitCode is the exit code of runs stopped before the process
// exited on its own.
const InterruptedExitCode = -1

var ErrExecutableNotSet = errors.New("FlightStream executable not set, use --executable or " + ExecutableEnv)

var (
	newCommander  = process.NewOSCmd
	newKillWaiter = process.NewOSKillWait
)

var getExitCode = func(err *exec.ExitError) int {
	return err.ExitCode()
}

type Options struct {
	Executable string
	ScriptPath string
	Hidden     bool

	// CheckScript makes Run fail before launching anything when the script
	// file doesn't exist.
	CheckScript bool

	Dir string
	Env []string

	GracefulKillTimeout time.Duration
	ForceKillTimeout    time.Duration
}

type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// BuildArgs returns the arguments passed to the executable.
func BuildArgs(scriptPath string, hidden bool) []string {
	args := make([]string, 0, 3)
	if hidden {
		args = append(args, HiddenFlag)
	}

	return append(args, ScriptFlag, scriptPath)
}

// Command returns the full command line used to run scriptPath.
func Command(executable, scriptPath string, hidden bool) []string {
	return append([]string{executable}, BuildArgs(scriptPath, hidden)...)
}

// ResolveExecutable returns executable, or the value of FS_EXE when it's
// empty.
func ResolveExecutable(executable string) (string, error) {
	if executable != "" {
		return executable, nil
	}

	if env := os.Getenv(ExecutableEnv); env != "" {
		return env, nil
	}

	return "", ErrExecutableNotSet
}

type Runner struct {
	logger  logrus.FieldLogger
	metrics *Metrics
}

func New(logger logrus.FieldLogger, metrics *Metrics) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Runner{
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes the script and waits for the application to exit. A non-zero
// exit code is reported in the result, not as an error. When ctx is done the
// process is terminated and the partial result is returned with the error and
// InterruptedExitCode. The output is left out when the process couldn't be
// killed.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	executable, err := ResolveExecutable(opts.Executable)
	if err != nil {
		return nil, err
	}

	scriptPath := opts.ScriptPath
	if scriptPath == "" {
		scriptPath = script.DefaultFile
	}

	logger := r.logger.WithFields(logrus.Fields{
		"executable": executable,
		"script":     scriptPath,
	})

	info, err := os.Stat(scriptPath)
	switch {
	case err == nil:
		logger.WithField("size", units.HumanSize(float64(info.Size()))).Debugln("Script file found")
	case opts.CheckScript:
		return nil, fmt.Errorf("checking script file: %w", err)
	}

	args := BuildArgs(scriptPath, opts.Hidden)
	logger.Debugln("Running", quote(Command(executable, scriptPath, opts.Hidden)))

	var stdout, stderr bytes.Buffer

	processLogger := process.NewLogger(logger)
	cmd := newCommander(executable, args, process.CommandOptions{
		Dir:                 opts.Dir,
		Env:                 append(os.Environ(), opts.Env...),
		Stdout:              &stdout,
		Stderr:              &stderr,
		Logger:              processLogger,
		HideWindow:          opts.Hidden,
		GracefulKillTimeout: opts.GracefulKillTimeout,
		ForceKillTimeout:    opts.ForceKillTimeout,
	})

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	err = process.Wait(ctx, cmd, newKillWaiter(processLogger, opts.GracefulKillTimeout, opts.ForceKillTimeout))

	result := &Result{
		Duration: time.Since(started),
	}

	// A process that couldn't be killed may still be writing its output.
	if errors.Is(err, &process.KillProcessError{}) {
		result.ExitCode = InterruptedExitCode
		logger.WithError(err).Warningln("Run interrupted, output discarded")
		return result, err
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	var eerr *exec.ExitError
	if errors.As(err, &eerr) {
		result.ExitCode = getExitCode(eerr)
		err = nil
	}

	if err != nil {
		result.ExitCode = InterruptedExitCode
		logger.WithError(err).Warningln("Run interrupted")
		return result, err
	}

	r.metrics.observe(result)

	logger.WithFields(logrus.Fields{
		"exit_code": result.ExitCode,
		"duration":  result.Duration,
	}).Infoln("Script finished")

	return result, nil
}

func quote(command []string) string {
	quoted := make([]string, 0, len(command))
	for _, arg := range command {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = arg
		}

		quoted = append(quoted, q)
	}

	return strings.Join(quoted, " ")
}
