package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the viewer log file, relative to the working directory.
const DefaultPath = "logs/viewer.txt"

// DefaultKeep is how many recent lines stay in memory for the console.
const DefaultKeep = 200

// Logger keeps the most recent lines in memory (shown by the console overlay) and appends
// every line to a file on disk. An empty path logs to memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	keep  int
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists.
// keep <= 0 means DefaultKeep.
func New(path string, keep int) *Logger {
	if keep <= 0 {
		keep = DefaultKeep
	}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, keep: keep, now: time.Now}
}

// Log records one line, prefixed with [timestamp] in local time.
// A failing file write is dropped; the in-memory copy is always kept.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.keep; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats and records one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the lines held in memory, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
