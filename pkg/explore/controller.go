package explore

import (
	"errors"
	"log/slog"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
)

var (
	ErrNoMansion       = errors.New("mansion has no rooms")
	ErrExplorationOver = errors.New("exploration has ended")
)

// ClueRecorder stores discovered clues. journal.Journal satisfies it.
type ClueRecorder interface {
	Add(text string) bool
}

// SuspectLookup resolves a clue to a suspect. suspects.Index satisfies it.
type SuspectLookup interface {
	Lookup(clue string) (string, bool)
}

type EventKind int

const (
	EventEntered       EventKind = iota // Moved into Room
	EventBlocked                        // No room in that direction
	EventAlreadyAtRoot                  // Return requested while at the entrance
	EventExited                         // Exploration finished
)

// Discovery describes the clue revealed when entering a room.
type Discovery struct {
	Clue    string
	Suspect string
	Linked  bool // Suspect is known for this clue
	New     bool // First time the clue went into the journal
}

// Event is the result of one navigation step. Room is always the room the
// player stands in after the step.
type Event struct {
	Kind      EventKind
	Action    Action
	Room      *mansion.Room
	Discovery *Discovery // Set on EventEntered when the room holds a clue
}

// Controller walks the mansion one action at a time, journaling every clue
// it finds on the way. It is not safe for concurrent use.
type Controller struct {
	root    *mansion.Room
	current *mansion.Room
	journal ClueRecorder
	index   SuspectLookup
	logger  *slog.Logger
	done    bool
	visits  int
}

// NewController positions the player at the entrance. Call Start to reveal
// the entrance itself.
func NewController(m *mansion.Mansion, journal ClueRecorder, index SuspectLookup, logger *slog.Logger) (*Controller, error) {
	if m == nil || m.Root() == nil {
		return nil, ErrNoMansion
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		root:    m.Root(),
		current: m.Root(),
		journal: journal,
		index:   index,
		logger:  logger,
	}, nil
}

// Start enters the entrance room.
func (c *Controller) Start() Event {
	return c.enter(c.root, ActionNone)
}

// Step applies one action. Blocked moves and a return while already at the
// entrance leave the position unchanged.
func (c *Controller) Step(action Action) (Event, error) {
	if c.done {
		return Event{}, ErrExplorationOver
	}

	switch action {
	case ActionLeft:
		return c.move(c.current.Left, action), nil
	case ActionRight:
		return c.move(c.current.Right, action), nil
	case ActionRoot:
		if c.AtRoot() {
			return Event{Kind: EventAlreadyAtRoot, Action: action, Room: c.current}, nil
		}
		return c.enter(c.root, action), nil
	case ActionExit:
		c.done = true
		c.logger.Debug("exploration finished", "room", c.current.Name, "visits", c.visits)
		return Event{Kind: EventExited, Action: action, Room: c.current}, nil
	default:
		return Event{}, ErrUnknownAction
	}
}

// Current returns the room the player stands in.
func (c *Controller) Current() *mansion.Room {
	return c.current
}

// AtRoot reports whether the player stands at the entrance.
func (c *Controller) AtRoot() bool {
	return c.current == c.root
}

// Done reports whether the player chose to exit.
func (c *Controller) Done() bool {
	return c.done
}

// Visits counts rooms entered, revisits included.
func (c *Controller) Visits() int {
	return c.visits
}

func (c *Controller) move(next *mansion.Room, action Action) Event {
	if next == nil {
		c.logger.Debug("path blocked", "room", c.current.Name, "action", action)
		return Event{Kind: EventBlocked, Action: action, Room: c.current}
	}
	return c.enter(next, action)
}

func (c *Controller) enter(room *mansion.Room, action Action) Event {
	c.current = room
	c.visits++

	ev := Event{Kind: EventEntered, Action: action, Room: room}
	if !room.HasClue() {
		c.logger.Debug("entered room", "room", room.Name)
		return ev
	}

	d := &Discovery{Clue: room.Clue}
	d.New = c.journal.Add(room.Clue)
	d.Suspect, d.Linked = c.index.Lookup(room.Clue)
	ev.Discovery = d

	c.logger.Debug("clue discovered",
		"room", room.Name,
		"clue", room.Clue,
		"suspect", d.Suspect,
		"new", d.New)
	return ev
}
