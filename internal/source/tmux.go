package source

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/atomicstack/combopick/internal/logging/events"
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// Sessions lists tmux sessions as entries whose detail reads like
// "3 windows (attached)".
func Sessions(socketPath string) ([]Entry, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()

	sessions, err := client.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]Entry, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		out = append(out, Entry{Name: s.Name, Detail: sessionDetail(s)})
	}
	events.App.Source(string(KindTmux), len(out))
	return Align(out), nil
}

func sessionDetail(s *gotmux.Session) string {
	detail := fmt.Sprintf("%d window", s.Windows)
	if s.Windows != 1 {
		detail += "s"
	}
	if s.Attached > 0 {
		detail += " (attached)"
	}
	return detail
}

// CreateSession starts a detached session called name.
func CreateSession(socketPath, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("session name required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	if _, err := client.NewSession(&gotmux.SessionOptions{Name: name}); err != nil {
		return fmt.Errorf("create session %s: %w", name, err)
	}
	return nil
}

// ResolveSocketPath picks the tmux socket: the flag, then COMBOPICK_SOCKET,
// then the socket of the enclosing tmux, then tmux's default location.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("COMBOPICK_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}
