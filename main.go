package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"cryptforge/pkg/engine/input"
	"cryptforge/pkg/engine/terminal"
	"cryptforge/pkg/game/devtools"
	"cryptforge/pkg/game/gameplay"
	"cryptforge/pkg/game/generator"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/menu"
	"cryptforge/pkg/game/renderer"
	ebitenrenderer "cryptforge/pkg/game/renderer/ebiten"
	"cryptforge/pkg/game/renderer/tui"
	"cryptforge/pkg/game/walls"
)

// viewer is what main needs from a renderer to follow floor changes
type viewer interface {
	DrawFloor(layout *generator.Layout)
	PaintWalls(placements []walls.Placement)
	ShowSpawns(spawns []levelgen.Spawn)
	ShowMessage(msg string)
}

type config struct {
	seed          int64
	generator     generator.LayoutGenerator
	startFloor    int
	dumpPath      string
	screenshotDir string
}

func pickGenerator(name string) (generator.LayoutGenerator, error) {
	switch name {
	case "corridor":
		return generator.New(), nil
	case "devmap":
		return devtools.DevMapGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown generator %q", name)
}

// newController wires the placer and the viewer into a controller
func newController(cfg config, v viewer) *gameplay.Controller {
	placer := levelgen.NewPlacer(cfg.seed)
	opts := gameplay.Options{
		Generator: cfg.generator,
		Base:      generator.DefaultParameters(),
		Seed:      cfg.seed,
		Placers:   []gameplay.ContentPlacer{placer},
		DumpPath:  cfg.dumpPath,
	}

	if v != nil {
		opts.Placers = append(opts.Placers, gameplay.PlacerFunc(func(layout *generator.Layout) {
			v.DrawFloor(layout)
			v.ShowSpawns(placer.Spawns())
		}))
		opts.Painters = []gameplay.WallPainter{v}
		opts.Observers = []gameplay.TransitionObserver{gameplay.ObserverFunc(func(t gameplay.Transition) {
			v.ShowMessage(renderer.FormatString("GT{CORRIDORS} %d", t.CorridorCount))
		})}
	}

	return gameplay.NewController(opts)
}

// startRun generates the first floor, then defeats bosses until startFloor is reached
func startRun(c *gameplay.Controller, cfg config) error {
	if err := c.Start(); err != nil {
		return err
	}
	for c.Floor() < cfg.startFloor {
		if err := c.BossDefeated(); err != nil {
			return err
		}
	}
	if cfg.screenshotDir != "" {
		path, err := devtools.SaveScreenshotHTML(c.Session(), cfg.screenshotDir)
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		log.Printf("screenshot saved to %s", path)
	}
	return nil
}

func runTUI(cfg config, fog bool) error {
	if !terminal.IsTerminal() {
		return errors.New("the tui renderer needs a terminal; try -renderer dump")
	}

	t := tui.New()
	t.Fog = fog
	t.Init()

	c := newController(cfg, t)
	if err := startRun(c, cfg); err != nil {
		return err
	}

	for {
		t.RenderFrame(c.Session())

		intent, err := t.GetInput()
		if errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := gameplay.ProcessIntent(c, intent); err != nil {
			if errors.Is(err, gameplay.ErrQuit) {
				return nil
			}
			return err
		}
	}
}

func runEbiten(cfg config, fog bool) error {
	var c *gameplay.Controller
	var e *ebitenrenderer.EbitenRenderer

	e = ebitenrenderer.New(func(intent input.Intent) error {
		err := gameplay.ProcessIntent(c, intent)
		if errors.Is(err, gameplay.ErrQuit) {
			return ebiten.Termination
		}
		if err != nil {
			return err
		}
		e.RenderFrame(c.Session())
		return nil
	})
	e.SetFog(fog)
	e.Init()

	c = newController(cfg, e)
	if err := startRun(c, cfg); err != nil {
		return err
	}
	e.RenderFrame(c.Session())

	return e.Run()
}

// runDump generates the requested floor and writes its map dump
func runDump(cfg config) error {
	c := newController(cfg, nil)
	if err := startRun(c, cfg); err != nil {
		return err
	}

	if cfg.dumpPath == "" {
		return devtools.WriteMapDump(os.Stdout, c.Session())
	}
	path, err := devtools.DumpMapToFile(c.Session(), cfg.dumpPath)
	if err != nil {
		return err
	}
	log.Printf("map dump written to %s", path)
	return nil
}

func main() {
	seed := flag.Int64("seed", 0, "session seed (0 picks one from the clock)")
	mode := flag.String("renderer", "tui", "renderer to use: tui, ebiten or dump")
	startFloor := flag.Int("floor", 1, "starting floor number (for developer testing)")
	dumpPath := flag.String("dump", "", "map dump file (dump renderer writes to stdout when empty)")
	locale := flag.String("locale", "en_GB", "message language")
	localesDir := flag.String("locales", "locales", "directory holding <lang>/LC_MESSAGES/default.po")
	genName := flag.String("generator", "corridor", "layout generator: corridor or devmap")
	fog := flag.Bool("fog", false, "hide cells the player has not seen yet")
	screenshotDir := flag.String("screenshot", "", "save an HTML screenshot of the starting floor into this directory")
	bind := flag.String("bind", "", "rebind keys, e.g. defeat_boss=f,dump_map=p")
	flag.Parse()

	gotext.Configure(*localesDir, *locale, "default")
	renderer.InitColors()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := menu.Apply(*bind); err != nil {
		log.Fatalf("cryptforge: -bind: %v", err)
	}

	gen, err := pickGenerator(*genName)
	if err != nil {
		log.Fatalf("cryptforge: %v", err)
	}

	cfg := config{
		seed:          *seed,
		generator:     gen,
		startFloor:    *startFloor,
		dumpPath:      *dumpPath,
		screenshotDir: *screenshotDir,
	}

	switch *mode {
	case "tui":
		err = runTUI(cfg, *fog)
	case "ebiten":
		err = runEbiten(cfg, *fog)
	case "dump":
		err = runDump(cfg)
	default:
		err = fmt.Errorf("unknown renderer %q", *mode)
	}
	if err != nil {
		log.Fatalf("cryptforge: seed %d: %v", *seed, err)
	}
}
