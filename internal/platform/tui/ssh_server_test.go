package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestNewSSHServerRejectsInvalidGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Game.Rows = 2
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Error("NewSSHServer() should fail for an unplayable game config")
	}
}

func TestSSHServerShutdownDrainsThenClosesStore(t *testing.T) {
	srv := newTestSSHServer(t)
	if srv.store == nil {
		t.Fatal("expected the scores database to open")
	}

	// The store stays usable until the server has stopped.
	if _, err := srv.store.SaveResult(storage.Result{Outcome: snake.Lost.String(), Rows: 40, Cols: 50}); err != nil {
		t.Fatalf("SaveResult() before shutdown failed: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	if _, err := srv.store.SaveResult(storage.Result{Outcome: snake.Lost.String(), Rows: 40, Cols: 50}); err == nil {
		t.Error("store should be closed after Shutdown()")
	}
}
