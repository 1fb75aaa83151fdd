package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/combopick/internal/app"
	"github.com/atomicstack/combopick/internal/source"
)

var (
	// ErrInvalid marks configuration that parsed but cannot run.
	ErrInvalid = errors.New("invalid configuration")
	// ErrUnknownFormat is returned for config files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("unknown config file format")
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig        = "COMBOPICK_CONFIG"
	envSource        = "COMBOPICK_SOURCE"
	envOptions       = "COMBOPICK_OPTIONS"
	envOptionsFile   = "COMBOPICK_OPTIONS_FILE"
	envCustom        = "COMBOPICK_CUSTOM"
	envInitial       = "COMBOPICK_INITIAL"
	envTitle         = "COMBOPICK_TITLE"
	envLabel         = "COMBOPICK_LABEL"
	envWidth         = "COMBOPICK_WIDTH"
	envMaxRows       = "COMBOPICK_MAX_ROWS"
	envSubmit        = "COMBOPICK_SUBMIT"
	envCopy          = "COMBOPICK_COPY"
	envCreateSession = "COMBOPICK_CREATE_SESSION"
	envSocketPath    = "COMBOPICK_SOCKET"
	envAccent        = "COMBOPICK_ACCENT"
	envHelpLine      = "COMBOPICK_HELP_LINE"
	envTrace         = "COMBOPICK_TRACE"
	envLogFile       = "COMBOPICK_LOG_FILE"
)

// Load parses configuration from CLI arguments, environment variables and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values from the
// config file are overridden by the environment, which is overridden by flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := envOrDefault(env, envConfig, "")
	if v, ok := scanFlag(args, "config"); ok {
		path = v
	}
	file := defaultFile()
	if path != "" {
		if err := loadFile(path, &file); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("combopick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a YAML or TOML config file")
	src := fs.String("source", envOrDefault(env, envSource, file.Source), "candidate source: static, file, tmux or continents")
	options := fs.String("options", envOrDefault(env, envOptions, strings.Join(file.Options, ",")), "comma separated candidates for the static source")
	optionsFile := fs.String("options-file", envOrDefault(env, envOptionsFile, file.OptionsFile), "file with one candidate per line for the file source")
	custom := fs.Bool("custom", envOrBool(env, envCustom, file.Custom), "offer the typed text as a custom entry")
	initial := fs.String("initial", envOrDefault(env, envInitial, file.Initial), "initial value")
	title := fs.String("title", envOrDefault(env, envTitle, file.Title), "heading shown above the field")
	label := fs.String("label", envOrDefault(env, envLabel, file.Label), "caption drawn left of the field")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "field width in cells (0 uses the default)")
	maxRows := fs.Int("max-rows", envOrInt(env, envMaxRows, file.MaxRows), "popup rows shown before scrolling (0 uses the default)")
	submit := fs.Bool("submit", envOrBool(env, envSubmit, file.Submit), "exit as soon as a value is committed")
	copyResult := fs.Bool("copy", envOrBool(env, envCopy, file.Copy), "copy the result to the clipboard")
	createSession := fs.Bool("create-session", envOrBool(env, envCreateSession, file.CreateSession), "create a tmux session for a custom name")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, file.Socket), "path to the tmux socket (overrides environment detection)")
	accent := fs.String("accent", envOrDefault(env, envAccent, file.Accent), "accent colour for the theme")
	helpLine := fs.Bool("help-line", envOrBool(env, envHelpLine, file.HelpLine), "show the key binding hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *maxRows < 0 {
		return Config{}, fmt.Errorf("max-rows must be >= 0 (got %d)", *maxRows)
	}

	cfg := Config{
		App: app.Config{
			Source:        *src,
			Options:       source.Split(*options),
			OptionsFile:   *optionsFile,
			Custom:        *custom,
			Initial:       *initial,
			Title:         *title,
			Label:         *label,
			Width:         *width,
			MaxRows:       *maxRows,
			Submit:        *submit,
			Copy:          *copyResult,
			CreateSession: *createSession,
			SocketPath:    *socket,
			Accent:        *accent,
			HelpLine:      *helpLine,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"source":        *src,
			"options":       *options,
			"optionsFile":   *optionsFile,
			"custom":        strconv.FormatBool(*custom),
			"initial":       *initial,
			"width":         strconv.Itoa(*width),
			"maxRows":       strconv.Itoa(*maxRows),
			"submit":        strconv.FormatBool(*submit),
			"copy":          strconv.FormatBool(*copyResult),
			"createSession": strconv.FormatBool(*createSession),
			"socket":        *socket,
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// scanFlag finds -name/--name in args ahead of the real parse so the config
// file can supply flag defaults.
func scanFlag(args []string, name string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed == arg {
			continue
		}
		if v, ok := strings.CutPrefix(trimmed, name+"="); ok {
			return v, true
		}
		if trimmed == name && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "usage: combopick [flags]\n\nsources: %s\n", kindList())
}

func kindList() string {
	kinds := source.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Validate checks that the chosen source has what it needs.
func Validate(cfg Config) error {
	kind, err := source.ParseKind(cfg.App.Source)
	if err != nil {
		return fmt.Errorf("%w: %w (want one of %s)", ErrInvalid, err, kindList())
	}
	switch kind {
	case source.KindStatic:
		if len(cfg.App.Options) == 0 && !cfg.App.Custom {
			return fmt.Errorf("%w: static source needs --options or --custom", ErrInvalid)
		}
	case source.KindFile:
		if strings.TrimSpace(cfg.App.OptionsFile) == "" {
			return fmt.Errorf("%w: file source needs --options-file", ErrInvalid)
		}
	}
	if cfg.App.CreateSession && kind != source.KindTmux {
		return fmt.Errorf("%w: --create-session only applies to the tmux source", ErrInvalid)
	}
	if cfg.App.CreateSession && !cfg.App.Custom {
		return fmt.Errorf("%w: --create-session needs --custom", ErrInvalid)
	}
	return nil
}
