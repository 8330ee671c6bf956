package explore

import (
	"errors"
	"strings"
	"unicode"
)

type Action string

const (
	ActionLeft  Action = "left"
	ActionRight Action = "right"
	ActionRoot  Action = "root"
	ActionExit  Action = "exit"
	ActionNone  Action = ""
)

var (
	ErrNoInput       = errors.New("no input")
	ErrUnknownAction = errors.New("unknown action")
)

var actionKeys = map[rune]Action{
	'e': ActionLeft,
	'd': ActionRight,
	'r': ActionRoot,
	's': ActionExit,
}

// ParseAction reads the first non-blank character of input, ignoring case
// and anything after it on the line.
func ParseAction(input string) (Action, error) {
	trimmed := strings.TrimLeftFunc(input, unicode.IsSpace)
	if trimmed == "" {
		return ActionNone, ErrNoInput
	}
	first := unicode.ToLower([]rune(trimmed)[0])
	action, ok := actionKeys[first]
	if !ok {
		return ActionNone, ErrUnknownAction
	}
	return action, nil
}
