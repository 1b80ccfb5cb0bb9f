// Package gameplay drives floor progression: it generates each floor, hands
// the result to the content and rendering collaborators, and escalates the
// generation parameters when a boss is defeated.
package gameplay

import (
	"fmt"

	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/game/floor"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/renderer"
	"cryptforge/pkg/game/state"
	"cryptforge/pkg/game/walls"
)

// maxGenerateAttempts bounds how many fresh layouts are tried when one fails validation
const maxGenerateAttempts = 3

// Transition is the floor-transition signal
type Transition struct {
	Floor         int
	CorridorCount int
}

// ContentPlacer decides what occupies the rooms of a new layout
type ContentPlacer interface {
	PlaceContent(layout *generator.Layout)
}

// WallPainter paints the wall tiles of a new layout
type WallPainter interface {
	PaintWalls(placements []walls.Placement)
}

// TransitionObserver is told when the floor number changes
type TransitionObserver interface {
	FloorChanged(t Transition)
}

// InventoryKeeper snapshots player inventory before a boss-defeat
// regeneration and restores it afterwards
type InventoryKeeper interface {
	Snapshot()
	Restore()
}

// PlacerFunc adapts a function to ContentPlacer
type PlacerFunc func(layout *generator.Layout)

// PlaceContent calls f
func (f PlacerFunc) PlaceContent(layout *generator.Layout) { f(layout) }

// PainterFunc adapts a function to WallPainter
type PainterFunc func(placements []walls.Placement)

// PaintWalls calls f
func (f PainterFunc) PaintWalls(placements []walls.Placement) { f(placements) }

// ObserverFunc adapts a function to TransitionObserver
type ObserverFunc func(t Transition)

// FloorChanged calls f
func (f ObserverFunc) FloorChanged(t Transition) { f(t) }

// Options configures a Controller
type Options struct {
	// Generator builds layouts. Defaults to generator.New().
	Generator generator.LayoutGenerator

	// Base holds the parameters of the first floor. The corridor count is
	// always taken from the floor package.
	Base generator.Parameters

	// Seed is the session seed
	Seed int64

	Placers   []ContentPlacer
	Painters  []WallPainter
	Observers []TransitionObserver
	Inventory InventoryKeeper

	// DumpPath is where map dumps are written. Defaults to DefaultDumpPath.
	DumpPath string
}

// Controller owns the floor number and generation parameters of a session.
// It is not safe for concurrent use: each call runs generation to completion
// before any collaborator is notified.
type Controller struct {
	gen       generator.LayoutGenerator
	session   *state.Session
	placers   []ContentPlacer
	painters  []WallPainter
	observers []TransitionObserver
	inventory InventoryKeeper
	dumpPath  string
}

// NewController creates a controller on the first floor. No layout is
// generated until Start is called.
func NewController(opts Options) *Controller {
	gen := opts.Generator
	if gen == nil {
		gen = generator.New()
	}
	dumpPath := opts.DumpPath
	if dumpPath == "" {
		dumpPath = DefaultDumpPath
	}
	return &Controller{
		gen:       gen,
		session:   state.NewSession(opts.Base, opts.Seed),
		placers:   opts.Placers,
		painters:  opts.Painters,
		observers: opts.Observers,
		inventory: opts.Inventory,
		dumpPath:  dumpPath,
	}
}

// Session returns the session state
func (c *Controller) Session() *state.Session {
	return c.session
}

// Floor returns the current floor number
func (c *Controller) Floor() int {
	return c.session.Floor
}

// CorridorCount returns the corridor count for the current floor
func (c *Controller) CorridorCount() int {
	return c.session.Params.CorridorCount
}

// Parameters returns the parameters of the current floor
func (c *Controller) Parameters() generator.Parameters {
	return c.session.Params
}

// Layout returns the current layout, or nil before the first generation
func (c *Controller) Layout() *generator.Layout {
	return c.session.Layout
}

// Start generates the current floor and notifies the collaborators
func (c *Controller) Start() error {
	if err := c.generateFloor(); err != nil {
		return err
	}
	c.logFloor("GT{FLOOR_ENTERED} FLOOR{%d}")
	return nil
}

// BossDefeated escalates to the next floor and regenerates
func (c *Controller) BossDefeated() error {
	if c.inventory != nil {
		c.inventory.Snapshot()
		defer c.inventory.Restore()
	}

	c.session.AdvanceFloor()
	if err := c.generateFloor(); err != nil {
		return err
	}

	c.session.ClearMessages()
	c.logFloor("GT{FLOOR_DESCENDED} FLOOR{%d}")
	c.notifyTransition()
	return nil
}

// Reset returns to the first floor with the initial corridor count and drops
// the current layout. It does not generate; call Start for that.
func (c *Controller) Reset() {
	c.session.ResetProgress()
	c.session.ClearMessages()
	c.notifyTransition()
}

// Reseed replaces the session seed used for following generations
func (c *Controller) Reseed(seed int64) {
	c.session.Seed = seed
}

// Regenerate rebuilds the current floor from the same seed
func (c *Controller) Regenerate() error {
	if err := c.generateFloor(); err != nil {
		return err
	}
	c.session.ClearMessages()
	c.logFloor("GT{FLOOR_RESET} FLOOR{%d}")
	return nil
}

// generateFloor builds, validates and classifies the current floor, then
// publishes it. A layout that fails validation is discarded and a fresh one
// is generated from the next stream of the seed.
func (c *Controller) generateFloor() error {
	params := c.session.Params

	var layout *generator.Layout
	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		rng := random.Derive(c.session.Seed, stream(c.session.Floor, attempt))

		candidate, err := c.gen.Generate(params, rng)
		if err != nil {
			return fmt.Errorf("generate floor %d: %w", c.session.Floor, err)
		}
		if err := candidate.Validate(); err != nil {
			lastErr = err
			continue
		}
		layout = candidate
		break
	}
	if layout == nil {
		return fmt.Errorf("generate floor %d: %d attempts failed: %w", c.session.Floor, maxGenerateAttempts, lastErr)
	}

	c.session.SetLayout(layout, walls.Classify(layout.Floor))

	for _, p := range c.placers {
		p.PlaceContent(layout)
	}
	for _, p := range c.painters {
		p.PaintWalls(c.session.Walls)
	}
	return nil
}

// stream picks the random stream of one generation attempt on one floor
func stream(floorNumber, attempt int) uint64 {
	return uint64(floorNumber)*maxGenerateAttempts + uint64(attempt)
}

func (c *Controller) notifyTransition() {
	t := Transition{Floor: c.session.Floor, CorridorCount: c.session.Params.CorridorCount}
	for _, o := range c.observers {
		o.FloorChanged(t)
	}
}

func (c *Controller) logFloor(msg string) {
	c.session.AddMessage(renderer.FormatString(msg, c.session.Floor))
	c.session.AddMessage(floor.FlavourText(c.session.Floor))
}
