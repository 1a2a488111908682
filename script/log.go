package script

import (
	"sync"
)

// DefaultFile is where scripts are written and read when no path is given.
const DefaultFile = "script_out.txt"

// Log is the ordered list of lines forming a command script. The external
// application executes the lines top to bottom, so append order is the only
// thing Log guarantees.
//
// The zero value is an empty log ready to use.
type Log struct {
	mu    sync.Mutex
	lines []string

	appended func(n int)
}

func New() *Log {
	return &Log{}
}

// Append adds lines to the end of the log in the order given.
func (l *Log) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}

	l.mu.Lock()
	l.lines = append(l.lines, lines...)
	cb := l.appended
	l.mu.Unlock()

	if cb != nil {
		cb(len(lines))
	}
}

// Lines returns a copy of the lines appended so far.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := make([]string, len(l.lines))
	copy(lines, l.lines)

	return lines
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.lines)
}

func (l *Log) Empty() bool {
	return l.Len() == 0
}

// Clear drops every line. Clearing an empty log is a no-op.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
}

// OnAppend registers a callback receiving the number of lines of every
// Append call. It's used to feed metrics; pass nil to remove it.
func (l *Log) OnAppend(fn func(n int)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.appended = fn
}
