package test

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// NewHook adds a hook to the standard logger and returns it with a function
// restoring the previous hooks.
//
// Prefer passing a logrus.FieldLogger to the code under test and using
// test.NewNullLogger: every global hook leaks until it's removed.
func NewHook() (*test.Hook, func()) {
	oldHooks := logrus.LevelHooks{}
	for level, hooks := range logrus.StandardLogger().Hooks {
		oldHooks[level] = hooks
	}

	newHook := test.NewGlobal()
	return newHook, func() {
		logrus.StandardLogger().ReplaceHooks(oldHooks)
	}
}

type fatalLogHook struct {
	output io.Writer
}

func (s *fatalLogHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.FatalLevel,
	}
}

func (s *fatalLogHook) Fire(e *logrus.Entry) error {
	_, _ = fmt.Fprintln(s.output, e.Message)

	panic(e)
}

// MakeFatalToPanic turns Fatal calls on the standard logger into a panic with
// the entry, so commands ending in logrus.Fatalln can be tested.
func MakeFatalToPanic() func() {
	logger := logrus.StandardLogger()
	hooks := make(logrus.LevelHooks)

	hooks.Add(&fatalLogHook{output: logger.Out})
	oldHooks := logger.ReplaceHooks(hooks)

	return func() {
		logger.ReplaceHooks(oldHooks)
	}
}
