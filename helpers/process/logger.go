package process

import (
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Logger --inpackage
type Logger interface {
	WithFields(fields logrus.Fields) Logger
	Warn(args ...interface{})
}

type fieldLogger struct {
	logger logrus.FieldLogger
}

// NewLogger adapts a logrus logger or entry to the Logger interface.
func NewLogger(logger logrus.FieldLogger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &fieldLogger{logger: logger}
}

func (l *fieldLogger) WithFields(fields logrus.Fields) Logger {
	return &fieldLogger{logger: l.logger.WithFields(fields)}
}

func (l *fieldLogger) Warn(args ...interface{}) {
	l.logger.Warningln(args...)
}
