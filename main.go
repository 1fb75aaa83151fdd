package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/combopick/internal/app"
	"github.com/atomicstack/combopick/internal/config"
	"github.com/atomicstack/combopick/internal/logging"
	"github.com/atomicstack/combopick/internal/logging/events"
	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	result, err := app.Run(runtimeCfg.App)
	if err != nil {
		os.Exit(exitCode(err))
	}
	fmt.Println(result.Value)
}

// exitCode logs err and maps it to the process exit status.
func exitCode(err error) int {
	if errors.Is(err, app.ErrAborted) {
		return 130
	}
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v (details in %s)\n", err, logging.Path())
	return 1
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	if cfg.File != "" {
		flags["config"] = cfg.File
	}
	payload := map[string]interface{}{
		"runID":  uuid.NewString(),
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["terminals"] = terminals()
	return payload
}

// terminal is what startup saw on one standard stream.
type terminal struct {
	Stream string `json:"stream"`
	TTY    bool   `json:"tty"`
	Cols   int    `json:"cols,omitempty"`
	Rows   int    `json:"rows,omitempty"`
	Err    string `json:"err,omitempty"`
}

// terminals describes stdin, stdout and stderr in that order. The picker
// draws on stderr, so a redirected stdout is expected and harmless.
func terminals() []terminal {
	streams := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	out := make([]terminal, 0, len(streams))
	for _, f := range streams {
		out = append(out, describeStream(f))
	}
	return out
}

func describeStream(f *os.File) terminal {
	info := terminal{Stream: filepath.Base(f.Name())}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return info
	}
	info.TTY = true
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		info.Err = err.Error()
		return info
	}
	info.Cols, info.Rows = cols, rows
	return info
}
