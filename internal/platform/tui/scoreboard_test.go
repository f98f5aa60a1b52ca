package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newScoreStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	results := []storage.Result{
		{Player: "ann", FoodEaten: 3, Outcome: "lost", Rows: 40, Cols: 50},
		{Player: "bob", FoodEaten: 8, Outcome: "lost", Rows: 40, Cols: 50},
		{Player: "ann", FoodEaten: 5, Outcome: "won", Rows: 40, Cols: 50},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardViews(t *testing.T) {
	m := NewScoreboardModel(newScoreStore(t), "ann", 80, 24)

	if got := len(m.Results()); got != 3 {
		t.Fatalf("top view lists %d results, expected 3", got)
	}
	if m.Results()[0].Player != "bob" {
		t.Errorf("best result should come first, got %+v", m.Results()[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Results()); got != 2 {
		t.Fatalf("player view lists %d results, expected 2", got)
	}
	if !strings.Contains(m.View(), "RESULTS FOR ANN") {
		t.Error("player view should name the player")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Results()); got != 3 {
		t.Errorf("tab should switch back to the top view, got %d results", got)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "ann", 80, 24)

	if len(m.Results()) != 0 {
		t.Error("no results expected without a store")
	}
	if !strings.Contains(m.View(), "No scores database") {
		t.Error("view should explain the missing database")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
