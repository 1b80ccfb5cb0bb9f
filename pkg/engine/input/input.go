// Package input turns terminal and window key presses into viewer intents.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("input: interrupted")

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	_, err := r.Read(buf)
	return buf[0], err
}

// DecodeKey reads one key press from r and returns its code.
// Arrow keys are reported as "arrow_up" etc, Escape as "escape", and
// printable characters as themselves.
func DecodeKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 3:
		return "", ErrInterrupted
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == 0x1b:
		return decodeEscape(r)
	case b1 >= 32 && b1 < 127:
		return string(b1), nil
	}
	return "", nil
}

// decodeEscape handles both CSI (ESC [) and SS3 (ESC O) arrow sequences
func decodeEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence, discard it
	return "", nil
}

// ReadTerminalKey puts the terminal into raw mode, reads one key and restores
// the terminal.
func ReadTerminalKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	code, err := DecodeKey(os.Stdin)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

// ReadIntent reads one terminal key and maps it to an intent
func ReadIntent() (Intent, error) {
	raw, err := ReadTerminalKey()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}
