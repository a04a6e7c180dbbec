package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/Stan-breaks/Pixel-drifter/input"
)

// keyToName maps tcell Key constants to canonical config string names
// Ctrl-H, Ctrl-I, Ctrl-M and Ctrl-[ share codes with backspace, tab, enter and escape
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "backtab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace2",
	tcell.KeyDelete:     "delete",

	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyPgUp:   "page_up",
	tcell.KeyPgDn:   "page_down",
	tcell.KeyInsert: "insert",

	tcell.KeyF1:  "f1",
	tcell.KeyF2:  "f2",
	tcell.KeyF3:  "f3",
	tcell.KeyF4:  "f4",
	tcell.KeyF5:  "f5",
	tcell.KeyF6:  "f6",
	tcell.KeyF7:  "f7",
	tcell.KeyF8:  "f8",
	tcell.KeyF9:  "f9",
	tcell.KeyF10: "f10",
	tcell.KeyF11: "f11",
	tcell.KeyF12: "f12",

	tcell.KeyCtrlA: "ctrl_a",
	tcell.KeyCtrlB: "ctrl_b",
	tcell.KeyCtrlC: "ctrl_c",
	tcell.KeyCtrlD: "ctrl_d",
	tcell.KeyCtrlE: "ctrl_e",
	tcell.KeyCtrlF: "ctrl_f",
	tcell.KeyCtrlG: "ctrl_g",
	tcell.KeyCtrlJ: "ctrl_j",
	tcell.KeyCtrlK: "ctrl_k",
	tcell.KeyCtrlL: "ctrl_l",
	tcell.KeyCtrlN: "ctrl_n",
	tcell.KeyCtrlO: "ctrl_o",
	tcell.KeyCtrlP: "ctrl_p",
	tcell.KeyCtrlQ: "ctrl_q",
	tcell.KeyCtrlR: "ctrl_r",
	tcell.KeyCtrlS: "ctrl_s",
	tcell.KeyCtrlT: "ctrl_t",
	tcell.KeyCtrlU: "ctrl_u",
	tcell.KeyCtrlV: "ctrl_v",
	tcell.KeyCtrlW: "ctrl_w",
	tcell.KeyCtrlX: "ctrl_x",
	tcell.KeyCtrlY: "ctrl_y",
	tcell.KeyCtrlZ: "ctrl_z",
}

// knownNames is the set of accepted non-rune names, built from keyToName
var knownNames map[string]bool

// nameAliases folds alternate spellings onto canonical names
var nameAliases = map[string]string{
	"esc":       "escape",
	"return":    "enter",
	"shift_tab": "backtab",
	"pgup":      "page_up",
	"pgdn":      "page_down",
	" ":         "space",
}

func init() {
	knownNames = make(map[string]bool, len(keyToName)+1)
	for _, v := range keyToName {
		knownNames[v] = true
	}
	knownNames["space"] = true
}

// canonicalName normalises a config key name: lowercase, '-' as '_', aliases folded
func canonicalName(name string) string {
	if utf8.RuneCountInString(name) == 1 {
		if alias, ok := nameAliases[name]; ok {
			return alias
		}
		return strings.ToLower(name)
	}
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	if alias, ok := nameAliases[n]; ok {
		return alias
	}
	return n
}

// keyNameOf names a decoded key event, empty when the key has no config name
func keyNameOf(key tcell.Key, r rune, mod tcell.ModMask) string {
	if key == tcell.KeyRune {
		if r == ' ' {
			return "space"
		}
		name := strings.ToLower(string(r))
		if mod&tcell.ModCtrl != 0 {
			return "ctrl_" + name
		}
		return name
	}
	return keyToName[key]
}

func keyName(ev *tcell.EventKey) string {
	return keyNameOf(ev.Key(), ev.Rune(), ev.Modifiers())
}

// resolveBindings turns action→keys config into the key→actions lookup used per event
func resolveBindings(b input.Bindings) (map[string][]input.Action, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	keymap := make(map[string][]input.Action)
	for actionName, keys := range b {
		action, _ := input.LookupAction(actionName)
		for _, k := range keys {
			name := canonicalName(k)
			if utf8.RuneCountInString(name) != 1 && !knownNames[name] {
				return nil, fmt.Errorf("keymap: unknown key %q for action %q", k, actionName)
			}
			keymap[name] = append(keymap[name], action)
		}
	}
	return keymap, nil
}
