// Package level assembles one generated course into a physics bridge and
// keeps it in step with the run's session.
package level

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-course/internal/bounds"
	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/frame"
	"github.com/vovakirdan/hazard-course/internal/motion"
	"github.com/vovakirdan/hazard-course/internal/physics"
	"github.com/vovakirdan/hazard-course/internal/registry"

	// built-in block kinds
	_ "github.com/vovakirdan/hazard-course/internal/blocks"
)

// Drawable is one render instance: shared geometry and material handles
// plus a per-instance transform.
type Drawable = core.Drawable

// Deps are the collaborators a level is built into.
type Deps struct {
	Bridge physics.Bridge
	Driver *frame.Driver
	Logger *log.Logger
}

// Level is one generation of the course: its blocks, bounds, bodies and
// running obstacle controllers.
type Level struct {
	blocks      []course.Block
	seed        int64
	bounds      bounds.Set
	bridge      physics.Bridge
	log         *log.Logger
	bodies      []physics.Body
	drawables   []Drawable
	controllers []*motion.Controller
	torn        bool
}

// Build spawns blocks into deps.Bridge, adds the bounds and attaches every
// obstacle controller to deps.Driver. On error everything spawned so far
// is removed again.
func Build(blocks []course.Block, seed int64, deps Deps) (*Level, error) {
	if deps.Bridge == nil {
		return nil, fmt.Errorf("level: bridge is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	set, err := bounds.Build(len(blocks))
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	l := &Level{
		blocks: blocks,
		seed:   seed,
		bounds: set,
		bridge: deps.Bridge,
		log:    logger,
	}

	env := registry.Env{Bridge: deps.Bridge, Seed: seed}
	for _, b := range blocks {
		spawned, err := registry.Spawn(env, b)
		if err != nil {
			l.Teardown()
			return nil, fmt.Errorf("level: spawn block %d (%s): %w", b.Index, b.Kind, err)
		}
		l.bodies = append(l.bodies, spawned.Bodies...)
		l.drawables = append(l.drawables, spawned.Drawables...)
		if spawned.Controller != nil {
			l.controllers = append(l.controllers, spawned.Controller)
		}
	}

	body, err := set.Spawn(deps.Bridge)
	if err != nil {
		l.Teardown()
		return nil, fmt.Errorf("level: %w", err)
	}
	l.bodies = append(l.bodies, body)
	l.drawables = append(l.drawables, set.Walls()...)

	if deps.Driver != nil {
		for _, c := range l.controllers {
			c.Attach(deps.Driver)
		}
	}

	logger.Debug("level built", "blocks", len(blocks), "seed", seed, "bodies", len(l.bodies), "obstacles", len(l.controllers))
	return l, nil
}

// Teardown stops every controller and then removes every body, so no
// pose write ever reaches a disposed body. Safe to call more than once.
func (l *Level) Teardown() {
	if l.torn {
		return
	}
	l.torn = true

	for _, c := range l.controllers {
		c.Detach()
	}
	for _, b := range l.bodies {
		l.bridge.RemoveBody(b)
	}
	l.log.Debug("level torn down", "seed", l.seed, "bodies", len(l.bodies))
	l.bodies = nil
}

// Blocks returns the generated blocks. Callers must not modify them.
func (l *Level) Blocks() []course.Block { return l.blocks }

// Seed returns the seed the level was generated with.
func (l *Level) Seed() int64 { return l.seed }

// Bounds returns the bounds of the level.
func (l *Level) Bounds() bounds.Set { return l.bounds }

// Controllers returns the obstacle controllers in block order.
func (l *Level) Controllers() []*motion.Controller { return l.controllers }

// Drawables returns the render instances of the level.
func (l *Level) Drawables() []Drawable { return l.drawables }

// BodyCount returns the number of bodies the level owns.
func (l *Level) BodyCount() int { return len(l.bodies) }

// TornDown reports whether Teardown was called.
func (l *Level) TornDown() bool { return l.torn }

// Start returns the spawn point above the start block.
func (l *Level) Start() core.Vec3 {
	return l.blocks[0].Position.Add(core.V3(0, 1, 0))
}

// Goal returns the origin of the end block.
func (l *Level) Goal() core.Vec3 {
	return l.blocks[len(l.blocks)-1].Position
}
