// Package menu lists the key bindings of the viewers and rebinds them from
// the command line.
package menu

import (
	"errors"
	"fmt"
	"strings"

	engineinput "cryptforge/pkg/engine/input"
)

// Binding errors
var (
	ErrBadBinding    = errors.New("binding must look like action=key")
	ErrUnknownAction = errors.New("unknown action")
	ErrFixedBinding  = errors.New("binding cannot be changed")
)

// BindingItem is one action and the keys bound to it
type BindingItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// Label returns the display label for this binding
func (b BindingItem) Label() string {
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", engineinput.ActionName(b.Action), codeText)
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(b.Action), codeText)
}

// Items returns every bindable action in display order
func Items() []BindingItem {
	actions := []engineinput.Action{
		engineinput.ActionMoveUp,
		engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft,
		engineinput.ActionMoveRight,
		engineinput.ActionDefeatBoss,
		engineinput.ActionResetRun,
		engineinput.ActionRegenerate,
		engineinput.ActionDumpMap,
		engineinput.ActionQuit,
	}
	items := make([]BindingItem, len(actions))
	for i, a := range actions {
		items[i] = BindingItem{Action: a, NonRebindable: isNonRebindable(a)}
	}
	return items
}

// isNonRebindable checks if an action cannot be rebound.
// Quit keeps escape so a bad binding never locks the player in.
func isNonRebindable(a engineinput.Action) bool {
	return a == engineinput.ActionQuit
}

// actionKey returns the command-line name of an action, e.g. "defeat_boss"
func actionKey(a engineinput.Action) string {
	return strings.ReplaceAll(strings.ToLower(engineinput.ActionName(a)), " ", "_")
}

// Apply parses a comma separated list of action=key pairs and rebinds each
// action to that single key. Arrow keys always stay bound to movement.
func Apply(list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	byKey := make(map[string]BindingItem)
	for _, item := range Items() {
		byKey[actionKey(item.Action)] = item
	}

	for _, pair := range strings.Split(list, ",") {
		name, code, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || code == "" {
			return fmt.Errorf("%w: %q", ErrBadBinding, pair)
		}
		item, ok := byKey[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		if item.NonRebindable {
			return fmt.Errorf("%w: %s", ErrFixedBinding, name)
		}
		engineinput.SetSingleBinding(item.Action, code)
	}
	return nil
}

// ActionsLine returns the key help line with ACTION markup. Movement is shown
// once since the arrow keys are always bound.
func ActionsLine() string {
	byAction := engineinput.GetBindingsByAction()
	parts := []string{"ACTION{arrows} move"}
	for _, item := range Items() {
		switch item.Action {
		case engineinput.ActionMoveUp, engineinput.ActionMoveDown, engineinput.ActionMoveLeft, engineinput.ActionMoveRight:
			continue
		}
		codes := byAction[item.Action]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("ACTION{%s} %s", strings.Join(codes, ","), strings.ToLower(engineinput.ActionName(item.Action))))
	}
	return strings.Join(parts, "  ")
}
