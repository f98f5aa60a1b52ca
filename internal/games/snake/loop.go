package snake

import "time"

// DefaultTick is the tick period used when none is configured.
const DefaultTick = 100 * time.Millisecond

// Loop is the fixed-period driver step for a snake. It does not own a
// timer; the caller invokes Tick once per period.
type Loop struct {
	snake   *Snake
	session *Session
	period  time.Duration
	ticks   uint64
}

// NewLoop creates a loop advancing s once per period.
func NewLoop(s *Snake, session *Session, period time.Duration) *Loop {
	if period <= 0 {
		period = DefaultTick
	}
	return &Loop{snake: s, session: session, period: period}
}

// Tick advances the snake one step. After the session has ended it does
// nothing and returns the terminal outcome, so late ticks are harmless.
func (l *Loop) Tick() Outcome {
	if !l.session.Running() {
		return l.session.Outcome()
	}
	l.ticks++
	return l.snake.Advance()
}

// Period returns the configured tick period.
func (l *Loop) Period() time.Duration {
	return l.period
}

// Ticks returns how many ticks advanced the snake.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}
