package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts creates the shared monospace font source
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load monospace font: %w", err)
	}
	e.monoFontSource = src
	e.invalidateFontCache()
	return nil
}

// getTileFontSize returns the font size for map tiles, scaled to the current tile size
func (e *EbitenRenderer) getTileFontSize() float64 {
	return baseFontSize * float64(e.tileSize) / defaultTileSize
}

// getUIFontSize returns the font size for UI text
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := e.getTileFontSize() * 0.75
	if size < 12 {
		size = 12
	}
	return size
}

// getMonoFontFace returns a cached monospace font face for map tiles
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.getTileFontSize()
	if e.cachedMonoFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoFace
}

// getUIFontFace returns a cached font face for header and messages
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedUIFace = nil
}
