package utils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents an enumeration of log levels
type LogLevel int

const (
	Error   LogLevel = 40
	Warning LogLevel = 30
	Info    LogLevel = 20
	Debug   LogLevel = 10
)

// ParseLogLevel maps a level name to a LogLevel, defaulting to Warning.
func ParseLogLevel(name string) LogLevel {
	switch strings.ToLower(name) {
	case "error":
		return Error
	case "info":
		return Info
	case "debug":
		return Debug
	default:
		return Warning
	}
}

// Logger provides leveled logging with key-value context.
type Logger struct {
	mu     sync.Mutex
	logger *log.Logger
	level  LogLevel
}

// NewLogger creates a new logger with a given prefix.
func NewLogger(prefix string, level ...LogLevel) *Logger {
	levelValue := Warning
	if len(level) > 0 {
		levelValue = level[0]
	}
	return &Logger{
		logger: log.New(os.Stdout, fmt.Sprintf("[%s] ", prefix), log.LstdFlags),
		level:  levelValue,
	}
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.log(Debug, "DEBUG", msg, keyvals...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.log(Info, "INFO", msg, keyvals...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.log(Warning, "WARN", msg, keyvals...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.log(Error, "ERROR", msg, keyvals...)
}

func (l *Logger) log(level LogLevel, tag, msg string, keyvals ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.level > level {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", tag, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	l.logger.Println(b.String())
}
