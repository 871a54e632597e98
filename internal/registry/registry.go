// Package registry provides a global registry for block builders.
// Block kinds register themselves in init() functions, allowing the level
// to spawn any generated block without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/motion"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

// Env is what a builder needs to spawn one block.
type Env struct {
	Bridge physics.Bridge
	// Seed is the course seed. Hazard parameters are derived from it and
	// the block index.
	Seed int64
}

// Spawned is everything one block put into the world.
type Spawned struct {
	Bodies    []physics.Body
	Drawables []core.Drawable
	// Controller drives the block's obstacle; nil for static blocks.
	Controller *motion.Controller
}

// Builder spawns the bodies and visuals of one block kind.
type Builder interface {
	// ID returns the kind id (e.g., "start", "spinner").
	// Matches course.Kind.String().
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Spawn creates the block's bodies at b.Position. On error nothing
	// stays in the bridge.
	Spawn(env Env, b course.Block) (Spawned, error)
}

// BuilderInfo contains metadata about a registered builder.
type BuilderInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new builder.
type Factory func() Builder

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a builder factory to the registry.
// Typically called from an init() function.
// Panics if a builder with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: block %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered builders, sorted by ID.
func List() []BuilderInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BuilderInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BuilderInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a builder by its ID.
func Create(id string) (Builder, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown block %q", id)
	}

	return f(), nil
}

// Exists checks if a builder with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Spawn looks up the builder for b's kind and spawns it.
func Spawn(env Env, b course.Block) (Spawned, error) {
	builder, err := Create(b.Kind.String())
	if err != nil {
		return Spawned{}, err
	}
	return builder.Spawn(env, b)
}
