package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/combopick/internal/source"
	"github.com/atomicstack/combopick/internal/theme"
	"github.com/atomicstack/combopick/pkg/imtui"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrAborted is returned when the user interrupts the picker.
	ErrAborted = errors.New("aborted")
	// ErrNoCandidates is returned when the source is empty and custom
	// values are not allowed.
	ErrNoCandidates = errors.New("no candidates")
)

// Config describes user-provided application options.
type Config struct {
	Source        string
	Options       []string
	OptionsFile   string
	Custom        bool
	Initial       string
	Title         string
	Label         string
	Width         int
	MaxRows       int
	Submit        bool
	Copy          bool
	CreateSession bool
	SocketPath    string
	Accent        string
	HelpLine      bool
}

// Result is the value the user settled on.
type Result struct {
	Value   string
	Custom  bool
	Source  string
	Created bool
}

var (
	listSessions    = source.Sessions
	createSession   = source.CreateSession
	copyToClipboard = clipboard.WriteAll
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (Result, error) {
	p, err := newPicker(cfg)
	if err != nil {
		return Result{}, err
	}
	// The UI draws on stderr so stdout carries only the picked value.
	program := tea.NewProgram(p.program(),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return Result{}, ErrAborted
		}
		return Result{}, fmt.Errorf("run picker: %w", err)
	}
	return p.complete()
}

func (p *picker) program() *imtui.Program {
	styles := theme.Default()
	if p.cfg.Accent != "" {
		styles = theme.WithAccent(p.cfg.Accent)
	}
	ctx := imtui.NewContext(imtui.WithStyles(styles))
	return imtui.NewProgram(ctx, p.draw)
}

// complete runs the side effects requested for the committed result.
func (p *picker) complete() (Result, error) {
	if p.err != nil {
		return Result{}, p.err
	}
	if !p.done {
		return Result{}, ErrAborted
	}
	if p.cfg.CreateSession && p.result.Custom {
		if err := createSession(p.socket, p.result.Value); err != nil {
			return p.result, err
		}
		p.result.Created = true
	}
	if p.cfg.Copy {
		if err := copyToClipboard(p.result.Value); err != nil {
			return p.result, fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return p.result, nil
}
