package ebiten

import (
	"cryptforge/pkg/engine/world"
	"cryptforge/pkg/game/levelgen"
	"cryptforge/pkg/game/renderer"
)

// getCellRenderOptions returns how the cell at p should be drawn.
// Callers hold floorMutex.
func (e *EbitenRenderer) getCellRenderOptions(p world.Point, snap *renderSnapshot) CellRenderOptions {
	l := e.layout
	if l == nil {
		return CellRenderOptions{}
	}
	if e.fog && p != snap.player && !snap.discovered.Has(p) {
		return CellRenderOptions{}
	}

	if !l.Floor.Has(p) {
		tile, ok := e.tiles[p]
		if !ok {
			return CellRenderOptions{}
		}
		opts := CellRenderOptions{IsWall: true, Shape: renderer.WallShape(tile), Color: colorWall}
		if tile.IsCorner() {
			opts.Color = colorCorner
		}
		return opts
	}

	var opts CellRenderOptions
	switch {
	case l.BossRoom.Has(p):
		opts.Fill = colorBossFloor
	case l.IsCorridor(p) && !l.InAnyRoom(p):
		opts.Fill = colorCorridor
	default:
		opts.Fill = colorFloor
	}

	if p == snap.player {
		opts.Icon = renderer.IconStart
		opts.Color = colorPlayer
		return opts
	}

	if kind, ok := e.spawns[p]; ok {
		opts.Icon, _ = renderer.SpawnGlyph(kind)
		switch kind {
		case levelgen.SpawnBoss:
			opts.Color = colorBoss
		case levelgen.SpawnMonster:
			opts.Color = colorMonster
		case levelgen.SpawnLoot:
			opts.Color = colorLoot
		default:
			opts.Color = colorShrine
		}
	}
	return opts
}
