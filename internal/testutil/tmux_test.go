package testutil

import (
	"context"
	"testing"
	"time"
)

func TestStartServerLifecycle(t *testing.T) {
	s := StartServer(t)
	out, err := s.Command("list-sessions", "-F", "#{session_name}").Output()
	if err != nil {
		t.Skipf("skipping: list-sessions failed: %v", err)
	}
	if string(out) != BootstrapSession+"\n" {
		t.Fatalf("expected the bootstrap session, got %q", out)
	}
}

func TestLaunchPassesEnvironmentToPane(t *testing.T) {
	s := StartServer(t)
	pane := s.Launch("env", map[string]string{"PICK_GREETING": "hello-from-env"},
		"sh", "-c", `echo "[$PICK_GREETING]"; sleep 300`)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.WaitForText(ctx, pane, "[hello-from-env]")
}
