package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Level gates which messages reach the log.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var level atomic.Int32

func init() {
	level.Store(int32(LevelInfo))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
// Anything else is LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel changes the minimum level that is written.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// IsDebugMode reports whether debug messages are written.
func IsDebugMode() bool {
	return Level(level.Load()) <= LevelDebug
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string, lvl Level) (cleanup func(), err error) {
	SetLevel(lvl)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log: %w", err)
	}

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

func logf(l Level, prefix, format string, args ...any) {
	if l < Level(level.Load()) {
		return
	}
	// depth 3: log.Output <- logf <- Debugf/Infof/... <- caller
	_ = log.Output(3, prefix+fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) { logf(LevelDebug, "DEBUG ", format, args...) }
func Infof(format string, args ...any)  { logf(LevelInfo, "INFO ", format, args...) }
func Warnf(format string, args ...any)  { logf(LevelWarn, "WARN ", format, args...) }
func Errorf(format string, args ...any) { logf(LevelError, "ERROR ", format, args...) }
