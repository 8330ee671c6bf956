package mansion

import "fmt"

// Mansion holds the entrance of a fixed room tree.
type Mansion struct {
	root *Room
}

// New validates the tree hanging off root and wraps it. Room names must be
// unique because they double as display keys.
func New(root *Room) (*Mansion, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	seen := make(map[string]bool)
	var err error
	walk(root, func(r *Room) bool {
		if r.Name == "" {
			err = ErrEmptyName
			return false
		}
		if seen[r.Name] {
			err = fmt.Errorf("%w: %q", ErrDuplicateRoom, r.Name)
			return false
		}
		seen[r.Name] = true
		return true
	})
	if err != nil {
		return nil, err
	}

	return &Mansion{root: root}, nil
}

// Root returns the entrance room, or nil after Release.
func (m *Mansion) Root() *Room {
	return m.root
}

// Rooms returns rooms in pre-order (entrance first, left wing before right).
func (m *Mansion) Rooms() []*Room {
	var rooms []*Room
	walk(m.root, func(r *Room) bool {
		rooms = append(rooms, r)
		return true
	})
	return rooms
}

// Release tears the tree down children first and drops the root.
func (m *Mansion) Release() {
	release(m.root)
	m.root = nil
}

func walk(r *Room, visit func(*Room) bool) bool {
	if r == nil {
		return true
	}
	if !visit(r) {
		return false
	}
	return walk(r.Left, visit) && walk(r.Right, visit)
}

func release(r *Room) {
	if r == nil {
		return
	}
	release(r.Left)
	release(r.Right)
	r.Left = nil
	r.Right = nil
}
