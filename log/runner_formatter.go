package log

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

const messageWidth = 50

type levelStyle struct {
	color  string
	prefix string
}

var levelStyles = map[logrus.Level]levelStyle{
	logrus.DebugLevel: {color: ANSI_BOLD_WHITE},
	logrus.WarnLevel:  {color: ANSI_YELLOW, prefix: "WARNING: "},
	logrus.ErrorLevel: {color: ANSI_BOLD_RED, prefix: "ERROR: "},
	logrus.FatalLevel: {color: ANSI_BOLD_RED, prefix: "FATAL: "},
	logrus.PanicLevel: {color: ANSI_BOLD_RED, prefix: "PANIC: "},
}

// RunnerTextFormatter prints the level prefix and message padded to a fixed
// width, followed by the entry fields.
type RunnerTextFormatter struct {
	DisableColors bool

	// Fields are sorted unless DisableSorting is set.
	DisableSorting bool
}

func (f *RunnerTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	f.printColored(b, entry)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func (f *RunnerTextFormatter) printColored(b *bytes.Buffer, entry *logrus.Entry) {
	levelColor, resetColor, levelPrefix := f.getColorsAndPrefix(entry)

	fmt.Fprintf(b, "%s%s%-*s%s ", levelColor, levelPrefix, messageWidth-len(levelPrefix), entry.Message, resetColor)
	for _, k := range f.prepareKeys(entry) {
		fmt.Fprintf(b, " %s%s%s=%v", levelColor, k, resetColor, entry.Data[k])
	}
}

func (f *RunnerTextFormatter) getColorsAndPrefix(entry *logrus.Entry) (string, string, string) {
	style := levelStyles[entry.Level]
	if f.DisableColors {
		return "", "", style.prefix
	}

	return style.color, ANSI_RESET, style.prefix
}

func (f *RunnerTextFormatter) prepareKeys(entry *logrus.Entry) []string {
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}

	if !f.DisableSorting {
		sort.Strings(keys)
	}

	return keys
}
