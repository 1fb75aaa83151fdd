package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// BootstrapSession is the session every test server starts with.
const BootstrapSession = "combopick-test"

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("skipping: tmux binary not available")
	}
}

// Server is a throwaway tmux server on its own socket. Its directory holds
// the socket and the verbose server logs.
type Server struct {
	Socket string
	Dir    string
	t      *testing.T
}

// StartServer boots a detached server with BootstrapSession. The server is
// killed and its logs checked for a crash when the test ends.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "combopick-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	s := &Server{Socket: filepath.Join(dir, "tmux-test.sock"), Dir: dir, t: t}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	boot := s.Command("-f", "/dev/null", "-vv", "new-session", "-d", "-s", BootstrapSession, "sleep", "600")
	boot.Dir = dir
	if err := boot.Run(); err != nil {
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	if pid, err := s.Command("display-message", "-p", "#{pid}").Output(); err == nil {
		t.Logf("started tmux test server pid=%s socket=%s", strings.TrimSpace(string(pid)), s.Socket)
	}
	t.Cleanup(s.checkLogs)
	t.Cleanup(s.kill)
	return s
}

// Command builds a tmux invocation against the server, isolated from any
// tmux the test itself runs under.
func (s *Server) Command(args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", s.Socket}, args...)...)
	env := slices.DeleteFunc(os.Environ(), func(entry string) bool {
		return strings.HasPrefix(entry, "TMUX=") || strings.HasPrefix(entry, "TMUX_TMPDIR=")
	})
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+s.Dir)
	return cmd
}

// Launch starts argv in a new 80x24 session and returns its pane target.
// The client environment does not reach panes of a running server, so env
// is handed over with -e.
func (s *Server) Launch(session string, env map[string]string, argv ...string) string {
	s.t.Helper()
	args := []string{"new-session", "-d", "-x", "80", "-y", "24", "-s", session}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, "-e", k+"="+env[k])
	}
	args = append(args, argv...)
	if out, err := s.Command(args...).CombinedOutput(); err != nil {
		s.t.Fatalf("failed to launch %v: %v\n%s", argv, err, out)
	}
	return session + ":0.0"
}

// SendKeys types keys into target using tmux key names.
func (s *Server) SendKeys(target string, keys ...string) {
	s.t.Helper()
	args := append([]string{"send-keys", "-t", target}, keys...)
	if out, err := s.Command(args...).CombinedOutput(); err != nil {
		s.t.Fatalf("send-keys %v failed: %v\n%s", keys, err, out)
	}
}

// Capture returns the rendered contents of a pane.
func (s *Server) Capture(target string) (string, error) {
	out, err := s.Command("capture-pane", "-p", "-t", target).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(out), nil
}

// WaitForText polls target until its contents include want.
func (s *Server) WaitForText(ctx context.Context, target, want string) string {
	s.t.Helper()
	for {
		select {
		case <-ctx.Done():
			last, _ := s.Capture(target)
			s.t.Fatalf("timeout waiting for %q in pane %s: %v\nlast capture:\n%s", want, target, ctx.Err(), last)
		case <-time.After(50 * time.Millisecond):
			out, err := s.Capture(target)
			if errors.Is(err, ErrPaneUnavailable) {
				continue
			}
			if err != nil {
				s.t.Fatalf("capture error: %v", err)
			}
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// kill stops the server over control mode, falling back to kill-server.
func (s *Server) kill() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := gotmux.NewTmuxWithOptions(s.Socket, gotmux.WithContext(ctx))
	if err == nil {
		defer client.Close()
		err = client.KillServer()
	}
	if err != nil {
		s.t.Logf("control-mode kill failed for %s: %v; using kill-server", s.Socket, err)
		_ = s.Command("kill-server").Run()
	}
}

func (s *Server) checkLogs() {
	logs, _ := filepath.Glob(filepath.Join(s.Dir, "tmux-server-*.log"))
	for _, path := range logs {
		content, err := os.ReadFile(path)
		if err != nil {
			s.t.Errorf("failed to read tmux server log %s: %v", path, err)
			continue
		}
		if bytes.Contains(content, []byte("server exited unexpectedly")) {
			s.t.Errorf("tmux server reported unexpected exit; see %s", path)
		}
	}
}
