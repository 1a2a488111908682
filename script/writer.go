package script

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// WriteTo writes every line followed by a newline, then one more newline
// terminating the script.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var written int64
	for _, line := range l.Lines() {
		n, err := bw.WriteString(line + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	n, err := bw.WriteString("\n")
	written += int64(n)
	if err != nil {
		return written, err
	}

	return written, bw.Flush()
}

// Bytes returns the script exactly as WriteFile would store it.
func (l *Log) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = l.WriteTo(&buf)

	return buf.Bytes()
}

// WriteFile creates or truncates path and stores the script in it. The log
// is left untouched.
func (l *Log) WriteFile(path string) error {
	if path == "" {
		path = DefaultFile
	}

	if err := os.WriteFile(path, l.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing script file: %w", err)
	}

	return nil
}
