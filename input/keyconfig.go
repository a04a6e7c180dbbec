package input

import (
	"fmt"
	"strings"
)

// Bindings maps action names to key names
// Key names are single characters ("w") or terminal key names ("up", "escape", "ctrl_c"), resolved by the adapter
type Bindings map[string][]string

// DefaultBindings returns WASD + arrows, R to restart, Q/Escape/Ctrl-C to quit
func DefaultBindings() Bindings {
	return Bindings{
		"up":      {"w", "up"},
		"down":    {"s", "down"},
		"left":    {"a", "left"},
		"right":   {"d", "right"},
		"restart": {"r"},
		"quit":    {"q", "escape", "ctrl_c"},
	}
}

// Merge overlays o onto b; actions present in o replace b's keys entirely
func (b Bindings) Merge(o Bindings) Bindings {
	out := make(Bindings, len(b))
	for action, keys := range b {
		out[action] = append([]string(nil), keys...)
	}
	for action, keys := range o {
		out[action] = append([]string(nil), keys...)
	}
	return out
}

// Validate rejects unknown action names and empty key names
func (b Bindings) Validate() error {
	for action, keys := range b {
		if _, ok := LookupAction(action); !ok {
			return fmt.Errorf("keymap: unknown action %q (valid: %s)", action, strings.Join(ActionNames(), ", "))
		}
		for _, k := range keys {
			if strings.TrimSpace(k) == "" {
				return fmt.Errorf("keymap: empty key name for action %q", action)
			}
		}
	}
	return nil
}
