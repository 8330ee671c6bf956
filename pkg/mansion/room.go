// Package mansion models the house as a fixed binary tree of rooms, each
// with at most one clue.
package mansion

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName is returned for a blank room name.
	ErrEmptyName = errors.New("room name cannot be empty")

	// ErrDuplicateRoom is returned when two rooms in one tree share a name.
	ErrDuplicateRoom = errors.New("duplicate room name")

	// ErrNilRoot is returned when a mansion is built without an entrance.
	ErrNilRoot = errors.New("mansion has no entrance")
)

// Room is a node of the mansion. Left and Right are wired directly by
// whoever builds the floor plan; there is no insert or rebalance.
type Room struct {
	Name  string // Unique, also the display key
	Clue  string // Empty means the room holds no clue
	Left  *Room
	Right *Room
}

// NewRoom returns a room with no children. The name is trimmed; the clue is
// kept exactly as given since it is also the suspect index key.
func NewRoom(name, clue string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Room{
		Name: name,
		Clue: clue,
	}, nil
}

// HasClue reports whether entering the room reveals a clue.
func (r *Room) HasClue() bool {
	return r != nil && r.Clue != ""
}
