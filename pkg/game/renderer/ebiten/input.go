package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cryptforge/pkg/engine/input"
)

// repeatKeys are movement keys that repeat while held
var repeatKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// pressKeys trigger once per press
var pressKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyB, "b"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	e.handleZoom()

	intent := e.checkInput()
	if intent.Action == engineinput.ActionNone || e.handler == nil {
		return nil
	}
	return e.handler(intent)
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		e.setTileSize(e.tileSize + tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		e.setTileSize(e.tileSize - tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) {
		e.setTileSize(defaultTileSize)
	}
}

// setTileSize clamps and applies a new tile size
func (e *EbitenRenderer) setTileSize(size int) {
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	if size == e.tileSize {
		return
	}
	e.tileSize = size
	e.invalidateFontCache()
	e.recalculateViewport()
}

// recalculateViewport derives the viewport from window and tile size
func (e *EbitenRenderer) recalculateViewport() {
	headerHeight := int(e.getUIFontSize()) + headerPadding
	messagesHeight := int(e.getUIFontSize()+4) * messageLines

	e.viewportCols = (e.windowWidth - mapMargin*2) / e.tileSize
	e.viewportRows = (e.windowHeight - headerHeight - messagesHeight - mapMargin*2) / e.tileSize

	if e.viewportCols < minViewport {
		e.viewportCols = minViewport
	}
	if e.viewportRows < minViewport {
		e.viewportRows = minViewport
	}

	// Keep odd numbers for centering
	if e.viewportCols%2 == 0 {
		e.viewportCols--
	}
	if e.viewportRows%2 == 0 {
		e.viewportRows--
	}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// checkInput maps the keyboard state to an intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	var triggered string
	// every repeat key is polled so released keys drop their repeat state
	for _, k := range repeatKeys {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(k.key), k.code) && triggered == "" {
			triggered = k.code
		}
	}
	if triggered == "" {
		for _, k := range pressKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				triggered = k.code
				break
			}
		}
	}
	if triggered == "" {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      triggered,
		Timestamp: time.Now(),
	}))
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.recalculateViewport()
	}
	return outsideWidth, outsideHeight
}
