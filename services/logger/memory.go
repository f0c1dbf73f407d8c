package logsvc

import (
	"io"
	"log"
	"sync"

	"github.com/prachishaw/ClassCapsule/core"
)

// MemoryLogger records messages instead of reporting them; used by tests and quiet CLIs.
type MemoryLogger struct {
	mu       sync.Mutex
	std      *log.Logger
	Messages []Entry
}

type Entry struct {
	Level string
	Msg   string
	Args  []interface{}
}

var _ core.Logger = (*MemoryLogger)(nil)

// NewNopLogger returns a MemoryLogger that prints nothing.
func NewNopLogger() *MemoryLogger {
	return &MemoryLogger{std: log.New(io.Discard, "", 0)}
}

// NewMemoryLogger returns a MemoryLogger that also prints to std.
func NewMemoryLogger(std *log.Logger) *MemoryLogger {
	return &MemoryLogger{std: std}
}

func (l *MemoryLogger) record(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, Entry{Level: level, Msg: msg, Args: args})
	l.std.Println(level, msg)
}

// Has reports whether msg was logged at level.
func (l *MemoryLogger) Has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Messages {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}
	return false
}

func (l *MemoryLogger) Debug(msg string, args ...interface{}) { l.record("DEBUG", msg, args) }

func (l *MemoryLogger) Info(msg string, args ...interface{}) { l.record("INFO", msg, args) }

func (l *MemoryLogger) Warn(msg string, args ...interface{}) { l.record("WARN", msg, args) }

func (l *MemoryLogger) Error(msg string, args ...interface{}) { l.record("ERROR", msg, args) }

// Fatal records msg; it does not exit.
func (l *MemoryLogger) Fatal(msg string, args ...interface{}) { l.record("FATAL", msg, args) }
