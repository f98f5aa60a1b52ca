package snake

// Outcome is the result of one advance step.
type Outcome int

const (
	Continued Outcome = iota
	AteFood
	Won
	Lost
)

// Terminal reports whether o ends the session.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case AteFood:
		return "ate_food"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session holds the state shared by the snake, the spawner and the loop:
// whether the game is still running, how much food has been eaten and how
// it ended.
type Session struct {
	running   bool
	foodEaten int
	outcome   Outcome
}

// NewSession returns a running session with no food eaten.
func NewSession() *Session {
	return &Session{running: true}
}

// Running reports whether the session has not yet ended.
func (s *Session) Running() bool {
	return s.running
}

// FoodEaten returns the running food counter.
func (s *Session) FoodEaten() int {
	return s.foodEaten
}

// Outcome returns the last step outcome; Won or Lost once terminal.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// end marks the session terminal. Only the first call has an effect.
func (s *Session) end(o Outcome) {
	if !s.running {
		return
	}
	s.running = false
	s.outcome = o
}

func (s *Session) record(o Outcome) {
	if o == AteFood {
		s.foodEaten++
	}
	s.outcome = o
}
