package formatter

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/aero-tools/flightscript/script"
)

// Writer formats catalog commands into a script log.
type Writer struct {
	Log     *script.Log
	Catalog *Catalog

	logger logrus.FieldLogger
}

func NewWriter(log *script.Log, catalog *Catalog, logger logrus.FieldLogger) *Writer {
	if catalog == nil {
		catalog = Builtin()
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Writer{
		Log:     log,
		Catalog: catalog,
		logger:  logger,
	}
}

// Command validates args against the named command and appends its block to
// the log. Nothing is appended when validation fails.
func (w *Writer) Command(name string, args Args) error {
	def, err := w.Catalog.Get(name)
	if err != nil {
		return err
	}

	lines, err := def.Render(args)
	if err != nil {
		return err
	}

	w.Log.Append(lines...)

	w.logger.WithFields(logrus.Fields{
		"command": name,
		"lines":   len(lines),
	}).Debugln("Command appended")

	return nil
}

// Comment appends free text as script comments.
func (w *Writer) Comment(text ...string) {
	lines := make([]string, 0, len(text))
	for _, t := range text {
		lines = append(lines, "# "+t)
	}

	w.Log.Append(lines...)
}
