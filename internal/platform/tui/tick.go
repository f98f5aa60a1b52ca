// Package tui runs the snake game in a terminal through Bubble Tea.
// It maps keys to game actions, drives the tick loop and the food timer
// with commands, and draws snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game the tick chain belongs to.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(gen int, period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// spawnMsg delivers a due food-timer firing back to Update.
type spawnMsg struct {
	gen  int
	fire func()
}

type pendingFiring struct {
	delay time.Duration
	fire  func()
}

// cmdScheduler implements snake.Scheduler on top of tea.Tick.
// After only queues; flush turns the queue into commands, so a firing
// always runs on a later Update and never inside the caller.
type cmdScheduler struct {
	gen     int
	pending []pendingFiring
}

func (s *cmdScheduler) After(d time.Duration, fire func()) {
	s.pending = append(s.pending, pendingFiring{delay: d, fire: fire})
}

// flush returns a command for every queued firing, or nil.
func (s *cmdScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, p := range s.pending {
		gen, fire := s.gen, p.fire
		cmds = append(cmds, tea.Tick(p.delay, func(time.Time) tea.Msg {
			return spawnMsg{gen: gen, fire: fire}
		}))
	}
	s.pending = nil
	return tea.Batch(cmds...)
}
