package gameplay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	engineinput "cryptforge/pkg/engine/input"
	"cryptforge/pkg/engine/random"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/devtools"
	"cryptforge/pkg/game/floor"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/walls"
)

// recorder collects collaborator calls in order
type recorder struct {
	calls       []string
	transitions []Transition
}

func (r *recorder) PlaceContent(*generator.Layout) { r.calls = append(r.calls, "place") }
func (r *recorder) PaintWalls([]walls.Placement) { r.calls = append(r.calls, "paint") }
func (r *recorder) Snapshot() { r.calls = append(r.calls, "snapshot") }
func (r *recorder) Restore() { r.calls = append(r.calls, "restore") }
func (r *recorder) FloorChanged(t Transition) { r.transitions = append(r.transitions, t) }

func newController(t *testing.T, gen generator.LayoutGenerator, rec *recorder) *Controller {
	t.Helper()
	opts := Options{
		Generator: gen,
		Base:      generator.DefaultParameters(),
		Seed:      42,
		DumpPath:  filepath.Join(t.TempDir(), "map.txt"),
	}
	if rec != nil {
		opts.Placers = []ContentPlacer{rec}
		opts.Painters = []WallPainter{rec}
		opts.Observers = []TransitionObserver{rec}
		opts.Inventory = rec
	}
	return NewController(opts)
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestNewController_FirstFloorNoLayout(t *testing.T) {
	c := newController(t, nil, nil)
	if c.Floor() != floor.First {
		t.Errorf("Floor() = %d, want %d", c.Floor(), floor.First)
	}
	if c.CorridorCount() != floor.InitialCorridorCount {
		t.Errorf("CorridorCount() = %d, want %d", c.CorridorCount(), floor.InitialCorridorCount)
	}
	if c.Layout() != nil {
		t.Error("layout generated before Start")
	}
}

func TestStart_PublishesLayout(t *testing.T) {
	rec := &recorder{}
	c := newController(t, nil, rec)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.Layout() == nil {
		t.Fatal("Start left no layout")
	}
	if err := c.Layout().Validate(); err != nil {
		t.Errorf("published layout invalid: %v", err)
	}
	if want := []string{"place", "paint"}; !equalCalls(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if len(rec.transitions) != 0 {
		t.Errorf("Start notified %d transitions, want 0", len(rec.transitions))
	}
	if c.Session().Player != c.Layout().Start {
		t.Errorf("player at %v, want layout start %v", c.Session().Player, c.Layout().Start)
	}
}

func TestBossDefeated_Escalates(t *testing.T) {
	c := newController(t, nil, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for n := 1; n <= 3; n++ {
		if err := c.BossDefeated(); err != nil {
			t.Fatalf("BossDefeated %d: %v", n, err)
		}
		if c.Floor() != floor.First+n {
			t.Errorf("after %d defeats floor = %d, want %d", n, c.Floor(), floor.First+n)
		}
		want := floor.InitialCorridorCount + n*floor.CorridorCountStep
		if c.CorridorCount() != want {
			t.Errorf("after %d defeats corridors = %d, want %d", n, c.CorridorCount(), want)
		}
		if got := len(c.Layout().Segments); got != want {
			t.Errorf("after %d defeats layout has %d segments, want %d", n, got, want)
		}
	}
}

func TestBossDefeated_CollaboratorOrder(t *testing.T) {
	rec := &recorder{}
	c := newController(t, nil, rec)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	rec.calls = nil

	if err := c.BossDefeated(); err != nil {
		t.Fatalf("BossDefeated: %v", err)
	}
	if want := []string{"snapshot", "place", "paint", "restore"}; !equalCalls(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if len(rec.transitions) != 1 {
		t.Fatalf("transitions = %d, want 1", len(rec.transitions))
	}
	want := Transition{Floor: 2, CorridorCount: floor.InitialCorridorCount + floor.CorridorCountStep}
	if rec.transitions[0] != want {
		t.Errorf("transition = %+v, want %+v", rec.transitions[0], want)
	}
}

func TestReset_Idempotent(t *testing.T) {
	rec := &recorder{}
	c := newController(t, nil, rec)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.BossDefeated(); err != nil {
		t.Fatalf("BossDefeated: %v", err)
	}
	rec.calls = nil

	c.Reset()
	c.Reset()

	if c.Floor() != floor.First || c.CorridorCount() != floor.InitialCorridorCount {
		t.Errorf("after Reset floor=%d corridors=%d", c.Floor(), c.CorridorCount())
	}
	if c.Layout() != nil {
		t.Error("Reset generated a layout")
	}
	if len(rec.calls) != 0 {
		t.Errorf("Reset called collaborators: %v", rec.calls)
	}
	want := Transition{Floor: floor.First, CorridorCount: floor.InitialCorridorCount}
	for _, tr := range rec.transitions[1:] {
		if tr != want {
			t.Errorf("reset transition = %+v, want %+v", tr, want)
		}
	}
}

func TestRegenerate_SameSeedSameFloor(t *testing.T) {
	c := newController(t, nil, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	first := c.Layout()
	if err := c.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if c.Layout() == first {
		t.Error("Regenerate reused the old layout value")
	}
	if !c.Layout().Floor.Equal(first.Floor) {
		t.Error("Regenerate with the same seed changed the floor")
	}
}

func TestStart_SameSeedAcrossControllers(t *testing.T) {
	a := newController(t, nil, nil)
	b := newController(t, nil, nil)
	if err := a.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !a.Layout().Floor.Equal(b.Layout().Floor) {
		t.Error("same seed produced different floors")
	}
}

var errBroken = errors.New("broken generator")

type failingGenerator struct{}

func (failingGenerator) Name() string { return "failing" }
func (failingGenerator) Generate(generator.Parameters, *random.Source) (*generator.Layout, error) {
	return nil, errBroken
}

// emptyGenerator returns layouts that never validate
type emptyGenerator struct{ calls int }

func (g *emptyGenerator) Name() string { return "empty" }
func (g *emptyGenerator) Generate(generator.Parameters, *random.Source) (*generator.Layout, error) {
	g.calls++
	return &generator.Layout{Floor: world.NewFloorSet(), Rooms: map[world.Point]world.FloorSet{}}, nil
}

func TestStart_GeneratorError(t *testing.T) {
	rec := &recorder{}
	c := newController(t, failingGenerator{}, rec)
	err := c.Start()
	if !errors.Is(err, errBroken) {
		t.Fatalf("Start = %v, want errBroken", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("collaborators called after failure: %v", rec.calls)
	}
}

func TestStart_InvalidLayoutRetries(t *testing.T) {
	gen := &emptyGenerator{}
	c := newController(t, gen, nil)
	err := c.Start()
	if !errors.Is(err, generator.ErrEmptyFloor) {
		t.Fatalf("Start = %v, want ErrEmptyFloor", err)
	}
	if gen.calls != maxGenerateAttempts {
		t.Errorf("generator called %d times, want %d", gen.calls, maxGenerateAttempts)
	}
	if c.Layout() != nil {
		t.Error("invalid layout was published")
	}
}

func TestStream_DistinctPerFloorAndAttempt(t *testing.T) {
	seen := map[uint64]bool{}
	for f := 1; f <= 5; f++ {
		for a := 0; a < maxGenerateAttempts; a++ {
			s := stream(f, a)
			if seen[s] {
				t.Errorf("stream(%d, %d) = %d repeats", f, a, s)
			}
			seen[s] = true
		}
	}
}

func TestProcessIntent_DefeatBoss(t *testing.T) {
	c := newController(t, devtools.DevMapGenerator{}, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionDefeatBoss}); err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}
	if c.Floor() != 2 {
		t.Errorf("floor = %d, want 2", c.Floor())
	}
}

func TestProcessIntent_DefeatBossOutsideBossRoom(t *testing.T) {
	c := newController(t, devtools.DevMapGenerator{}, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	right := engineinput.Intent{Action: engineinput.ActionMoveRight}
	for i := 0; i < 3; i++ {
		if err := ProcessIntent(c, right); err != nil {
			t.Fatalf("move: %v", err)
		}
	}

	if err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionDefeatBoss}); err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}
	if c.Floor() != 1 {
		t.Errorf("floor = %d, want 1", c.Floor())
	}
	if countMessages(c.Session(), "BOSS_NOT_HERE") != 1 {
		t.Errorf("messages = %q, want a refusal", c.Session().Messages)
	}
}

func TestProcessIntent_Quit(t *testing.T) {
	c := newController(t, devtools.DevMapGenerator{}, nil)
	if err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionQuit}); !errors.Is(err, ErrQuit) {
		t.Errorf("ProcessIntent(quit) = %v, want ErrQuit", err)
	}
}

func TestProcessIntent_ResetRun(t *testing.T) {
	c := newController(t, devtools.DevMapGenerator{}, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.BossDefeated(); err != nil {
		t.Fatalf("BossDefeated: %v", err)
	}
	if err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionResetRun}); err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}
	if c.Floor() != floor.First {
		t.Errorf("floor = %d, want %d", c.Floor(), floor.First)
	}
	if c.Layout() == nil {
		t.Error("reset run left no layout")
	}
}

func TestProcessIntent_DumpMap(t *testing.T) {
	c := newController(t, devtools.DevMapGenerator{}, nil)
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := ProcessIntent(c, engineinput.Intent{Action: engineinput.ActionDumpMap}); err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}
	if _, err := os.Stat(c.dumpPath); err != nil {
		t.Errorf("map dump missing: %v", err)
	}
	if countMessages(c.Session(), "MAP_DUMPED") != 1 {
		t.Errorf("messages = %q, want a dump notice", c.Session().Messages)
	}
}
