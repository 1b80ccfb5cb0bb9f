package ebiten

import (
	"github.com/gookit/color"

	"cryptforge/pkg/game/floor"
	"cryptforge/pkg/game/state"
)

// RenderFrame captures a snapshot of the session for the next Draw call
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if s == nil {
		e.snapshot.valid = false
		return
	}

	e.snapshot.valid = s.HasLayout()
	e.snapshot.floor = s.Floor
	e.snapshot.theme = floor.ThemeFor(s.Floor).String()
	e.snapshot.corridorCount = s.Params.CorridorCount
	e.snapshot.player = s.Player
	e.snapshot.discovered = s.Discovered
	e.snapshot.roomCount = 0
	if s.HasLayout() {
		e.snapshot.roomCount = len(s.Layout.Rooms)
	}

	// Messages are formatted for terminals; drop the color codes
	messages := make([]string, 0, len(s.Messages)+len(e.notices))
	for _, msg := range s.Messages {
		messages = append(messages, color.ClearCode(msg))
	}
	for _, msg := range e.notices {
		messages = append(messages, color.ClearCode(msg))
	}
	if len(messages) > messageLines {
		messages = messages[len(messages)-messageLines:]
	}
	e.snapshot.messages = messages
	e.notices = nil
}
