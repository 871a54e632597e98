package level

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/frame"
	"github.com/vovakirdan/hazard-course/internal/hazard"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/session"
)

// RunnerConfig wires a Runner.
type RunnerConfig struct {
	Session *session.Session
	Palette []hazard.Type
	Bridge  physics.Bridge
	// Driver defaults to a driver stepping Bridge.
	Driver *frame.Driver
	Logger *log.Logger
	// OnFellOff is called when the player drops below the course while
	// the run is not over. Typically it respawns the player.
	OnFellOff func()
}

// Runner keeps the built level in sync with the session: a restart tears
// the old level down and builds the layout for the new count and seed.
type Runner struct {
	log       *log.Logger
	session   *session.Session
	generator *course.Generator
	palette   []hazard.Type
	bridge    physics.Bridge
	driver    *frame.Driver
	level     *Level
	onFellOff func()
	unsub     func()
	lastErr   error
}

// NewRunner builds the level for the session's current count and seed.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("level: session is required")
	}
	if cfg.Bridge == nil {
		return nil, fmt.Errorf("level: bridge is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	driver := cfg.Driver
	if driver == nil {
		driver = frame.NewDriver(cfg.Bridge)
	}

	r := &Runner{
		log:       logger,
		session:   cfg.Session,
		generator: course.NewGenerator(),
		palette:   cfg.Palette,
		bridge:    cfg.Bridge,
		driver:    driver,
		onFellOff: cfg.OnFellOff,
	}

	if err := r.rebuild(cfg.Session.Snapshot()); err != nil {
		return nil, err
	}
	r.unsub = cfg.Session.Subscribe(r.onTransition)
	return r, nil
}

// Tick runs one frame and feeds the physics events of that frame into
// the session. It returns the events it handled.
func (r *Runner) Tick(dt time.Duration) []physics.Event {
	r.driver.Tick(dt)

	events := r.bridge.Events()
	for _, e := range events {
		r.handle(e)
	}
	return events
}

func (r *Runner) handle(e physics.Event) {
	switch e.Kind {
	case physics.EventEnterStart:
		r.log.Debug("entered start", "body", e.Body)
	case physics.EventEnterGoal:
		if r.session.End() {
			r.log.Info("run finished", "time", session.FormatElapsed(r.session.Elapsed()))
		}
	case physics.EventFellOff:
		if r.session.Phase() == session.Ended {
			r.session.Restart()
			return
		}
		r.log.Warn("player fell off the course", "phase", r.session.Phase())
		if r.onFellOff != nil {
			r.onFellOff()
		}
	}
}

func (r *Runner) onTransition(tr session.Transition) {
	r.log.Debug("phase changed", "from", tr.From, "to", tr.To)
	if tr.From != session.Ended || tr.To != session.Ready {
		return
	}
	if err := r.rebuild(tr.State); err != nil {
		r.log.Error("rebuild level", "error", err)
	}
}

func (r *Runner) rebuild(st session.State) error {
	blocks, err := r.generator.Layout(course.Spec{
		Count:   st.BlocksCount,
		Palette: r.palette,
		Seed:    st.BlocksSeed,
	})
	if err != nil {
		r.lastErr = err
		return fmt.Errorf("level: generate: %w", err)
	}
	if r.level != nil && !r.level.TornDown() && sameBlocks(r.level.Blocks(), blocks) {
		return nil
	}

	if r.level != nil {
		r.level.Teardown()
	}
	lvl, err := Build(blocks, st.BlocksSeed, Deps{Bridge: r.bridge, Driver: r.driver, Logger: r.log})
	if err != nil {
		r.level = nil
		r.lastErr = err
		return err
	}
	r.level = lvl
	r.lastErr = nil

	r.log.Info("course ready", "blocks", len(blocks), "seed", st.BlocksSeed, "hazards", len(lvl.Controllers()))
	return nil
}

func sameBlocks(a, b []course.Block) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// Level returns the current level. It may be nil if the last rebuild
// failed.
func (r *Runner) Level() *Level {
	return r.level
}

// Err returns the error of the last rebuild, if any.
func (r *Runner) Err() error {
	return r.lastErr
}

// Session returns the session driving the runner.
func (r *Runner) Session() *session.Session { return r.session }

// Driver returns the frame driver.
func (r *Runner) Driver() *frame.Driver { return r.driver }

// Generations returns how many layouts were generated.
func (r *Runner) Generations() int {
	return r.generator.Generations()
}

// Close unsubscribes from the session and tears the level down.
func (r *Runner) Close() {
	if r.unsub != nil {
		r.unsub()
	}
	if r.level != nil {
		r.level.Teardown()
	}
}
