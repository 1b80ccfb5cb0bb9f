package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"cryptforge/pkg/engine/world"
)

// Draw renders the floor to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	headerHeight := int(e.getUIFontSize()) + headerPadding

	mapAreaWidth := e.viewportCols * e.tileSize
	mapAreaHeight := e.viewportRows * e.tileSize
	mapX := (screenWidth - mapAreaWidth) / 2
	mapY := headerHeight + mapMargin

	e.drawHeader(screen, &snap)

	vector.DrawFilledRect(screen, float32(mapX-mapMargin), float32(mapY-mapMargin),
		float32(mapAreaWidth+mapMargin*2), float32(mapAreaHeight+mapMargin*2),
		colorMapBackground, false)

	e.drawMap(screen, &snap, mapX, mapY)
	e.drawMessages(screen, &snap, screenWidth, screenHeight)
}

// drawHeader draws the floor number, theme and counters
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	if e.monoFontSource == nil {
		return
	}
	header := fmt.Sprintf("Floor %d  %s", snap.floor, snap.theme)
	e.drawColoredText(screen, header, mapMargin, headerPadding/2, colorText)

	counters := fmt.Sprintf("%s %d  %s %d", gotext.Get("CORRIDORS"), snap.corridorCount, gotext.Get("ROOMS"), snap.roomCount)
	x := mapMargin + int(e.getTextWidth(header)) + mapMargin
	e.drawColoredText(screen, counters, x, headerPadding/2, colorSubtle)
}

// drawMap draws the viewport centred on the player. Screen rows grow
// downward while y grows upward, so the top row is the highest y.
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, mapX, mapY int) {
	e.floorMutex.RLock()
	defer e.floorMutex.RUnlock()

	top := snap.player.Y + e.viewportRows/2
	left := snap.player.X - e.viewportCols/2

	for vRow := 0; vRow < e.viewportRows; vRow++ {
		for vCol := 0; vCol < e.viewportCols; vCol++ {
			p := world.Pt(left+vCol, top-vRow)
			x := mapX + vCol*e.tileSize
			y := mapY + vRow*e.tileSize
			e.drawTile(screen, e.getCellRenderOptions(p, snap), x, y)
		}
	}
}

// drawTile draws one cell: background fill, wall blocks, then the glyph
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, opts CellRenderOptions, x, y int) {
	size := float32(e.tileSize)

	if opts.Fill != nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, opts.Fill, false)
	}

	for _, r := range opts.Shape {
		vector.DrawFilledRect(screen, float32(x)+r.X*size, float32(y)+r.Y*size, r.W*size, r.H*size, opts.Color, false)
	}

	if opts.Icon != "" && e.monoFontSource != nil {
		e.drawColoredChar(screen, opts.Icon, x, y, opts.Color)
	}
}

// drawMessages draws the message log as a bottom-aligned panel
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	if e.monoFontSource == nil || len(snap.messages) == 0 {
		return
	}

	lineHeight := int(e.getUIFontSize() + 4)
	panelHeight := lineHeight*len(snap.messages) + mapMargin
	panelY := screenHeight - panelHeight

	vector.DrawFilledRect(screen, 0, float32(panelY), float32(screenWidth), float32(panelHeight), colorPanel, false)

	for i, msg := range snap.messages {
		e.drawColoredText(screen, msg, mapMargin, panelY+mapMargin/2+i*lineHeight, colorText)
	}
}
