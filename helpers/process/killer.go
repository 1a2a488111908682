package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrProcessNotStarted is returned when we try to manipulate a process that
// hasn't started yet (still nil).
var ErrProcessNotStarted = errors.New("process not started yet")

const (
	// GracefulTimeout is how long a terminated process gets to exit on its
	// own before being force killed.
	GracefulTimeout = 30 * time.Second

	// KillTimeout is how long to wait for a force killed process to exit.
	KillTimeout = 10 * time.Second
)

//go:generate mockery --name=killer --inpackage
type killer interface {
	Terminate()
	ForceKill()
}

var newProcessKiller = newKiller

//go:generate mockery --name=KillWaiter --inpackage
type KillWaiter interface {
	KillAndWait(command Commander, waitCh chan error) error
}

type KillProcessError struct {
	pid int
}

func (k *KillProcessError) Error() string {
	return fmt.Sprintf("failed to kill process PID=%d, likely process is dormant", k.pid)
}

func (k *KillProcessError) Is(err error) bool {
	_, ok := err.(*KillProcessError)

	return ok
}

type osKillWait struct {
	logger Logger

	gracefulKillTimeout time.Duration
	forceKillTimeout    time.Duration
}

func NewOSKillWait(logger Logger, gracefulKillTimeout, forceKillTimeout time.Duration) KillWaiter {
	if gracefulKillTimeout <= 0 {
		gracefulKillTimeout = GracefulTimeout
	}

	if forceKillTimeout <= 0 {
		forceKillTimeout = KillTimeout
	}

	return &osKillWait{
		logger:              logger,
		gracefulKillTimeout: gracefulKillTimeout,
		forceKillTimeout:    forceKillTimeout,
	}
}

// KillAndWait terminates the process and waits until waitCh returns. When the
// graceful timeout passes first the process is force killed.
func (kw *osKillWait) KillAndWait(command Commander, waitCh chan error) error {
	process := command.Process()
	if process == nil {
		return ErrProcessNotStarted
	}

	log := kw.logger.WithFields(logrus.Fields{
		"PID": process.Pid,
	})

	processKiller := newProcessKiller(log, command)
	processKiller.Terminate()

	select {
	case err := <-waitCh:
		return err
	case <-time.After(kw.gracefulKillTimeout):
		processKiller.ForceKill()

		select {
		case err := <-waitCh:
			return err
		case <-time.After(kw.forceKillTimeout):
			return &KillProcessError{pid: process.Pid}
		}
	}
}

// Wait blocks until the started command exits. If ctx is done first the
// command is handed to kw. The context error is returned once the process is
// gone, a kill failure otherwise.
func Wait(ctx context.Context, command Commander, kw KillWaiter) error {
	waitCh := make(chan error, 1)
	go func() {
		waitCh <- command.Wait()
	}()

	select {
	case err := <-waitCh:
		return err
	case <-ctx.Done():
		err := kw.KillAndWait(command, waitCh)
		if errors.Is(err, &KillProcessError{}) || errors.Is(err, ErrProcessNotStarted) {
			return err
		}

		return ctx.Err()
	}
}
