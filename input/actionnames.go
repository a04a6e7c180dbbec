package input

import "sort"

// Action is a logical input the game reacts to
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit

	actionCount
)

// actionRegistry maps canonical action names used in the keymap config
var actionRegistry = map[string]Action{
	"up":      ActionUp,
	"down":    ActionDown,
	"left":    ActionLeft,
	"right":   ActionRight,
	"restart": ActionRestart,
	"quit":    ActionQuit,
}

// LookupAction resolves a config action name
func LookupAction(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns every config action name, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}

// held reports whether the action is a level signal rather than an edge
func (a Action) held() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}
