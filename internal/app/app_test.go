package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/combopick/internal/source"
	"github.com/atomicstack/combopick/internal/testutil"
	"github.com/atomicstack/combopick/pkg/combobox"
	"github.com/atomicstack/combopick/pkg/imtui"
	tea "github.com/charmbracelet/bubbletea"
)

func startPicker(t *testing.T, cfg Config) (*picker, *imtui.Harness) {
	t.Helper()
	p, err := newPicker(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := imtui.NewContext(imtui.WithSize(60, 20))
	return p, imtui.NewHarness(imtui.NewProgram(ctx, p.draw))
}

func TestPickerFocusesFieldOnStart(t *testing.T) {
	p, h := startPicker(t, Config{Source: "static", Options: []string{"red", "green", "blue"}, Label: "> "})
	if h.Program().Context().Focused() != p.box.ID() {
		t.Fatalf("expected the field focused after startup")
	}
	view := h.View()
	for _, want := range []string{"red", "green", "blue"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %s listed, got:\n%s", want, view)
		}
	}
}

func TestPickerContinentsPopupGolden(t *testing.T) {
	_, h := startPicker(t, Config{Source: "continents", Initial: "Eurasia", Label: "> ", HelpLine: true})
	testutil.Golden(t, filepath.Join("picker", "continents_popup.txt"), h.View())
}

func TestPickerSubmitsOnCommit(t *testing.T) {
	p, h := startPicker(t, Config{Source: "static", Options: []string{"red", "green", "blue"}, Submit: true})
	h.Type("gr")
	h.Press(tea.KeyEnter)
	if !h.Quit() {
		t.Fatalf("expected the program to quit after commit")
	}
	res, err := p.complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != "green" || res.Custom || res.Source != "static" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestPickerKeepsRunningWhileTyping(t *testing.T) {
	p, h := startPicker(t, Config{Source: "static", Options: []string{"red", "green", "blue"}, Submit: true})
	h.Type("g")
	if h.Quit() {
		t.Fatalf("expected the program to keep running after a keystroke")
	}
	if text, _ := p.current(); text != "" {
		t.Fatalf("expected no value picked yet, got %q", text)
	}
	if p.done || p.status != "" {
		t.Fatalf("expected no finish or status yet, got done=%v status=%q", p.done, p.status)
	}
	if !strings.Contains(h.View(), "green") {
		t.Fatalf("expected the filtered popup still open, got:\n%s", h.View())
	}
}

func TestPickerCustomValueShowsClosestCandidate(t *testing.T) {
	p, h := startPicker(t, Config{Source: "static", Options: []string{"Africa", "America"}, Custom: true})
	h.Type("amerca")
	if !strings.Contains(h.View(), "Custom: amerca") {
		t.Fatalf("expected custom entry offered, got:\n%s", h.View())
	}
	h.Press(tea.KeyEnter)
	if h.Quit() {
		t.Fatalf("expected program to keep running without submit")
	}
	if !strings.Contains(h.View(), "closest: America") {
		t.Fatalf("expected closest hint in status, got:\n%s", h.View())
	}

	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected esc on an unfocused field to finish")
	}
	res, err := p.complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != "amerca" || !res.Custom {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestPickerEscWhileFocusedOnlyBlurs(t *testing.T) {
	_, h := startPicker(t, Config{Source: "static", Options: []string{"a"}})
	h.Press(tea.KeyEsc)
	if h.Quit() {
		t.Fatalf("expected first esc to drop focus only")
	}
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected second esc to finish")
	}
}

func TestPickerInterruptAborts(t *testing.T) {
	p, h := startPicker(t, Config{Source: "static", Options: []string{"a"}})
	h.Press(tea.KeyCtrlC)
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
	if _, err := p.complete(); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestPickerNeedsCandidates(t *testing.T) {
	if _, err := newPicker(Config{Source: "static"}); !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
	if _, err := newPicker(Config{Source: "static", Custom: true}); err != nil {
		t.Fatalf("expected custom-only picker to be allowed, got %v", err)
	}
	if _, err := newPicker(Config{Source: "ldap"}); !errors.Is(err, source.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestPickerContinentsSeedFromInitial(t *testing.T) {
	p, h := startPicker(t, Config{Source: "continents", Initial: "oceania", Submit: true})
	h.Press(tea.KeyEnter)
	res, err := p.complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != "Oceania" {
		t.Fatalf("expected the seeded cursor row committed, got %+v", res)
	}
}

func TestPickerContinentsInitialParse(t *testing.T) {
	_, err := newPicker(Config{Source: "continents", Initial: "Atlantis"})
	if !errors.Is(err, combobox.ErrUnparsable) {
		t.Fatalf("expected ErrUnparsable, got %v", err)
	}

	p, h := startPicker(t, Config{Source: "continents", Initial: "Atlantis", Custom: true})
	h.Press(tea.KeyEsc)
	h.Press(tea.KeyEsc)
	res, err := p.complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != "Atlantis" || !res.Custom {
		t.Fatalf("expected custom initial kept, got %+v", res)
	}
}

func TestPickerTmuxCreatesSessionAndCopies(t *testing.T) {
	prevList, prevCreate, prevCopy := listSessions, createSession, copyToClipboard
	t.Cleanup(func() {
		listSessions, createSession, copyToClipboard = prevList, prevCreate, prevCopy
	})
	listSessions = func(socket string) ([]source.Entry, error) {
		return source.Align([]source.Entry{{Name: "main", Detail: "2 windows"}}), nil
	}
	var created, copied []string
	createSession = func(socket, name string) error {
		created = append(created, socket+"|"+name)
		return nil
	}
	copyToClipboard = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	p, h := startPicker(t, Config{
		Source:        "tmux",
		SocketPath:    "/tmp/test.sock",
		Custom:        true,
		CreateSession: true,
		Copy:          true,
		Submit:        true,
	})
	if !strings.Contains(h.View(), "main  2 windows") {
		t.Fatalf("expected aligned session row, got:\n%s", h.View())
	}
	h.Type("work")
	h.Press(tea.KeyEnter)
	res, err := p.complete()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Custom || !res.Created || res.Value != "work" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(created) != 1 || created[0] != "/tmp/test.sock|work" {
		t.Fatalf("unexpected session creation %v", created)
	}
	if len(copied) != 1 || copied[0] != "work" {
		t.Fatalf("unexpected clipboard writes %v", copied)
	}
}

func TestPickerSideEffectErrorsSurface(t *testing.T) {
	prevCopy := copyToClipboard
	t.Cleanup(func() { copyToClipboard = prevCopy })
	boom := errors.New("no clipboard")
	copyToClipboard = func(string) error { return boom }

	p, h := startPicker(t, Config{Source: "static", Options: []string{"a"}, Copy: true, Submit: true})
	h.Press(tea.KeyEnter)
	if _, err := p.complete(); !errors.Is(err, boom) {
		t.Fatalf("expected clipboard error, got %v", err)
	}
}
