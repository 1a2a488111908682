package script

import (
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
)

// HardReset clears the log and removes the script file at path. The log is
// always cleared; failing to remove the file is only logged.
func HardReset(l *Log, path string, logger logrus.FieldLogger) {
	l.Clear()

	if path == "" {
		path = DefaultFile
	}

	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger.WithError(err).WithField("file", path).Warningln("Failed to remove script file")
}
