// Package course generates the ordered block layout of one course: a
// start platform, a run of hazard platforms drawn from a palette, and a
// goal platform.
package course

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/hazard"
)

// BlockSpacing is the distance between consecutive block origins along -Z.
const BlockSpacing = 4.0

// Configuration errors. Generation fails with one of these, wrapped, before
// any block exists.
var (
	ErrInvalidCount = errors.New("course: block count must not be negative")
	ErrEmptyPalette = errors.New("course: palette must not be empty")
	ErrUnknownType  = errors.New("course: palette contains an unknown hazard type")
)

// KindClass separates the fixed ends of a course from hazard blocks.
type KindClass int

const (
	ClassStart KindClass = iota
	ClassHazard
	ClassEnd
)

// Kind identifies what a block is.
type Kind struct {
	Class  KindClass
	Hazard hazard.Type // meaningful only when Class == ClassHazard
}

// Block kinds for the fixed ends.
var (
	KindStart = Kind{Class: ClassStart}
	KindEnd   = Kind{Class: ClassEnd}
)

// HazardKind returns the kind of a hazard block of type t.
func HazardKind(t hazard.Type) Kind {
	return Kind{Class: ClassHazard, Hazard: t}
}

// IsHazard reports whether the block hosts a hazard.
func (k Kind) IsHazard() bool {
	return k.Class == ClassHazard
}

// String returns the registry id of the kind.
func (k Kind) String() string {
	switch k.Class {
	case ClassStart:
		return "start"
	case ClassEnd:
		return "end"
	default:
		return k.Hazard.String()
	}
}

// Block is one platform segment of a generated course.
type Block struct {
	Kind     Kind
	Index    int
	Position core.Vec3
}

// PositionAt returns the origin of the block at index.
func PositionAt(index int) core.Vec3 {
	return core.V3(0, 0, -BlockSpacing*float64(index))
}

// Spec determines a course.
type Spec struct {
	Count   int
	Palette []hazard.Type
	Seed    int64
}

// Length returns the number of blocks including start and goal.
func (s Spec) Length() int {
	return s.Count + 2
}

// Validate checks the spec for configuration errors.
func (s Spec) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, s.Count)
	}
	if len(s.Palette) == 0 {
		return ErrEmptyPalette
	}
	for _, t := range s.Palette {
		if !t.Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownType, t)
		}
	}
	return nil
}

// Generate builds the block sequence for (count, palette, seed). Interior
// slots are drawn uniformly with replacement from palette. The same
// arguments always produce the same sequence.
func Generate(count int, palette []hazard.Type, seed int64) ([]Block, error) {
	spec := Spec{Count: count, Palette: palette, Seed: seed}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	blocks := make([]Block, 0, spec.Length())
	blocks = append(blocks, Block{Kind: KindStart, Index: 0, Position: PositionAt(0)})

	for i := 1; i <= count; i++ {
		t := palette[rng.Intn(len(palette))]
		blocks = append(blocks, Block{Kind: HazardKind(t), Index: i, Position: PositionAt(i)})
	}

	end := count + 1
	blocks = append(blocks, Block{Kind: KindEnd, Index: end, Position: PositionAt(end)})
	return blocks, nil
}

// Hazards returns the hazard types of blocks in course order.
func Hazards(blocks []Block) []hazard.Type {
	out := make([]hazard.Type, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind.IsHazard() {
			out = append(out, b.Kind.Hazard)
		}
	}
	return out
}

// Generator memoizes the last layout. A new layout is generated only when
// count, palette contents or seed change; otherwise the cached blocks are
// returned so visuals stay in sync with already spawned bodies.
type Generator struct {
	last        Spec
	blocks      []Block
	valid       bool
	generations int
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Layout returns the blocks for spec, reusing the cached result when the
// spec is unchanged. The returned slice must not be modified.
func (g *Generator) Layout(spec Spec) ([]Block, error) {
	if g.valid && g.matches(spec) {
		return g.blocks, nil
	}

	blocks, err := Generate(spec.Count, spec.Palette, spec.Seed)
	if err != nil {
		return nil, err
	}

	g.last = Spec{Count: spec.Count, Palette: slices.Clone(spec.Palette), Seed: spec.Seed}
	g.blocks = blocks
	g.valid = true
	g.generations++
	return blocks, nil
}

// Generations returns how many layouts were actually generated.
func (g *Generator) Generations() int {
	return g.generations
}

// Invalidate drops the cached layout.
func (g *Generator) Invalidate() {
	g.valid = false
	g.blocks = nil
}

func (g *Generator) matches(spec Spec) bool {
	return g.last.Count == spec.Count &&
		g.last.Seed == spec.Seed &&
		slices.Equal(g.last.Palette, spec.Palette)
}
