package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

const defaultLogFile = "combopick.log"

// LevelTrace sits below debug so trace entries never mix with regular levels.
const LevelTrace = slog.Level(-8)

var (
	pathMu       sync.Mutex
	logPath      = defaultLogFile
	traceEnabled = atomic.NewBool(false)
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(func(logger *slog.Logger) {
		logger.Error(err.Error())
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceEnabled.Store(enabled)
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !traceEnabled.Load() {
		return
	}
	write(func(logger *slog.Logger) {
		logger.Log(context.Background(), LevelTrace, event, slog.Any("payload", payload))
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	pathMu.Lock()
	defer pathMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	pathMu.Lock()
	defer pathMu.Unlock()
	return logPath
}

func write(emit func(*slog.Logger)) {
	pathMu.Lock()
	defer pathMu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       LevelTrace,
		ReplaceAttr: renameTraceLevel,
	})
	emit(slog.New(handler))
}

func renameTraceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}
	return a
}
