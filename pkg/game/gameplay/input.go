package gameplay

import (
	"errors"

	"github.com/leonelquinteros/gotext"

	engineinput "cryptforge/pkg/engine/input"
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/devtools"
	"cryptforge/pkg/game/renderer"
)

// ErrQuit is returned by ProcessIntent when the player asks to quit
var ErrQuit = errors.New("quit requested")

// DefaultDumpPath is where ActionDumpMap writes when Options.DumpPath is empty
const DefaultDumpPath = "cryptforge-map.txt"

// ProcessIntent handles a high-level input intent from a viewer.
// Generation errors are returned; refused actions only add a message.
func ProcessIntent(c *Controller, intent engineinput.Intent) error {
	s := c.Session()

	switch intent.Action {
	case engineinput.ActionNone:
		return nil

	case engineinput.ActionQuit:
		return ErrQuit

	case engineinput.ActionMoveUp:
		MovePlayer(s, world.Up)
	case engineinput.ActionMoveDown:
		MovePlayer(s, world.Down)
	case engineinput.ActionMoveLeft:
		MovePlayer(s, world.Left)
	case engineinput.ActionMoveRight:
		MovePlayer(s, world.Right)

	case engineinput.ActionDefeatBoss:
		if !InBossRoom(s) {
			s.AddMessage(renderer.ColorDenied.Sprint(gotext.Get("BOSS_NOT_HERE")))
			return nil
		}
		return c.BossDefeated()

	case engineinput.ActionResetRun:
		c.Reset()
		return c.Start()

	case engineinput.ActionRegenerate:
		return c.Regenerate()

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(s, c.dumpPath)
		if err != nil {
			s.AddMessage(renderer.FormatString("GT{MAP_DUMP_FAILED} %v", err))
			return nil
		}
		s.AddMessage(renderer.FormatString("GT{MAP_DUMPED} %s", path))
	}

	return nil
}
