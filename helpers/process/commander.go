package process

import (
	"io"
	"os"
	"os/exec"
	"time"
)

//go:generate mockery --name=Commander --inpackage
type Commander interface {
	Start() error
	Wait() error
	Process() *os.Process
}

type CommandOptions struct {
	Dir string
	Env []string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Logger Logger

	// HideWindow starts the process without a console window on Windows.
	HideWindow bool

	GracefulKillTimeout time.Duration
	ForceKillTimeout    time.Duration
}

type osCmd struct {
	internal *exec.Cmd
	options  CommandOptions
}

// NewOSCmd returns a Commander running executable in its own process group
// so that terminating it reaches its children too.
func NewOSCmd(executable string, args []string, options CommandOptions) Commander {
	c := exec.Command(executable, args...)
	c.Dir = options.Dir
	c.Env = options.Env
	c.Stdin = options.Stdin
	c.Stdout = options.Stdout
	c.Stderr = options.Stderr

	return &osCmd{
		internal: c,
		options:  options,
	}
}

func (c *osCmd) Start() error {
	setProcessGroup(c.internal, c.options.HideWindow)

	return c.internal.Start()
}

func (c *osCmd) Wait() error {
	return c.internal.Wait()
}

func (c *osCmd) Process() *os.Process {
	return c.internal.Process
}
