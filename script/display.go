package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	commentColor = color.New(color.Faint)
	keywordColor = color.New(color.Bold, color.FgCyan)
)

// Display prints the log one line at a time. With colored set, comment lines
// are dimmed and command keywords highlighted.
func Display(w io.Writer, l *Log, colored bool) error {
	for _, line := range l.Lines() {
		if colored {
			line = colorize(line)
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func colorize(line string) string {
	if strings.HasPrefix(line, "#") {
		return commentColor.Sprint(line)
	}

	keyword, rest, found := strings.Cut(line, " ")
	if !isKeyword(keyword) {
		return line
	}

	if !found {
		return keywordColor.Sprint(keyword)
	}

	return keywordColor.Sprint(keyword) + " " + rest
}

func isKeyword(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' && r != '-' {
			return false
		}
	}

	return true
}
