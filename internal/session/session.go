// Package session tracks one player's run: the ready, playing and ended
// phases, the run timer and the seed and size of the current course.
//
// Only the methods on Session mutate state. Everything else reads through
// Reader or receives Transition values from Subscribe.
package session

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hazard-course/internal/core"
)

// Phase is the stage of a run.
type Phase int

const (
	Ready Phase = iota
	Playing
	Ended
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is a read-only copy of the session. A zero StartTime or EndTime
// means the time is not set.
type State struct {
	Phase       Phase
	StartTime   time.Time
	EndTime     time.Time
	BlocksCount int
	BlocksSeed  int64
}

// Transition describes one phase change.
type Transition struct {
	From  Phase
	To    Phase
	At    time.Time
	State State // state after the change
}

// Reader is the read side of a session.
type Reader interface {
	Snapshot() State
	Elapsed() time.Duration
}

// Session is the game state of one run. It is driven from the frame loop
// and is not safe for concurrent use.
type Session struct {
	clock     core.Clock
	state     State
	observers map[int]func(Transition)
	nextObs   int
}

var _ Reader = (*Session)(nil)

// New creates a session in the ready phase. A nil clock uses the system
// clock.
func New(clock core.Clock, count int, seed int64) *Session {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Session{
		clock: clock,
		state: State{
			Phase:       Ready,
			BlocksCount: count,
			BlocksSeed:  seed,
		},
		observers: make(map[int]func(Transition)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	return s.state
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.Snapshot().Phase
}

// Elapsed returns the run time: now minus start while playing, end minus
// start once ended, and zero while ready.
func (s *Session) Elapsed() time.Duration {
	switch s.state.Phase {
	case Playing:
		d := s.clock.Now().Sub(s.state.StartTime)
		if d < 0 {
			return 0
		}
		return d
	case Ended:
		return s.state.EndTime.Sub(s.state.StartTime)
	default:
		return 0
	}
}

// Start moves ready to playing and records the start time. It reports
// whether the transition happened.
func (s *Session) Start() bool {
	return s.transition(Ready, Playing, func(st *State, now time.Time) {
		st.StartTime = now
		st.EndTime = time.Time{}
	})
}

// End moves playing to ended and records the end time.
func (s *Session) End() bool {
	return s.transition(Playing, Ended, func(st *State, now time.Time) {
		if now.Before(st.StartTime) {
			now = st.StartTime
		}
		st.EndTime = now
	})
}

// RestartOption changes what the next course looks like.
type RestartOption func(*restartConfig)

type restartConfig struct {
	seed     int64
	seedSet  bool
	count    int
	countSet bool
}

// WithSeed sets the seed of the next course.
func WithSeed(seed int64) RestartOption {
	return func(c *restartConfig) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithCount sets the hazard count of the next course. Negative counts are
// ignored.
func WithCount(count int) RestartOption {
	return func(c *restartConfig) {
		if count >= 0 {
			c.count = count
			c.countSet = true
		}
	}
}

// Restart moves ended to ready, clears both times and reseeds the course.
// Without WithSeed the seed advances by one.
func (s *Session) Restart(opts ...RestartOption) bool {
	var cfg restartConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return s.transition(Ended, Ready, func(st *State, _ time.Time) {
		st.StartTime = time.Time{}
		st.EndTime = time.Time{}
		if cfg.seedSet {
			st.BlocksSeed = cfg.seed
		} else {
			st.BlocksSeed++
		}
		if cfg.countSet {
			st.BlocksCount = cfg.count
		}
	})
}

// HandleInput applies the input gating of a run: any movement while ready
// starts the run, and the restart action is honoured only once the run
// has ended. It reports whether a transition happened.
func (s *Session) HandleInput(in core.InputFrame) bool {
	switch s.Phase() {
	case Ready:
		if in.HasMovement() {
			return s.Start()
		}
	case Ended:
		if in.Has(core.ActionRestart) {
			return s.Restart()
		}
	}
	return false
}

// Subscribe registers fn to be called after every phase transition. The
// returned cancel func removes it and may be called more than once.
func (s *Session) Subscribe(fn func(Transition)) (cancel func()) {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		delete(s.observers, id)
	}
}

func (s *Session) transition(from, to Phase, apply func(*State, time.Time)) bool {
	if s.state.Phase != from {
		return false
	}

	now := s.clock.Now()
	apply(&s.state, now)
	s.state.Phase = to
	s.checkInvariants()

	// observers may subscribe or cancel while being notified
	tr := Transition{From: from, To: to, At: now, State: s.state}
	observers := make([]func(Transition), 0, len(s.observers))
	for id := 0; id < s.nextObs; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}

	for _, fn := range observers {
		fn(tr)
	}
	return true
}

func (s *Session) checkInvariants() {
	st := s.state
	if !st.EndTime.IsZero() && st.Phase != Ended {
		panic(fmt.Sprintf("session: end time set in phase %s", st.Phase))
	}
	if !st.EndTime.IsZero() && st.EndTime.Before(st.StartTime) {
		panic("session: end time before start time")
	}
}

// FormatElapsed renders d as seconds with two decimals, e.g. "12.34".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.2f", d.Seconds())
}
