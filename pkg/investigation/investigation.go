// Package investigation ties one playthrough together: the mansion being
// explored, the clue journal, the suspect index and the final accusation.
package investigation

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/journal"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// MaxAccusedLen is the longest accepted suspect name, in characters.
const MaxAccusedLen = 49

var (
	ErrEmptyJournal      = errors.New("no clues collected")
	ErrInvalidAccusation = errors.New("invalid accusation")
	ErrClosed            = errors.New("investigation is closed")
)

// Investigation owns every structure of a single run.
type Investigation struct {
	ID uuid.UUID

	mansion    *mansion.Mansion
	index      *suspects.Index
	journal    *journal.Journal
	controller *explore.Controller
	logger     *slog.Logger
	closed     bool
}

// New starts an investigation over the given mansion and index. The
// investigation takes ownership of both and releases them on Close.
func New(m *mansion.Mansion, ix *suspects.Index, base *slog.Logger) (*Investigation, error) {
	if base == nil {
		base = slog.Default()
	}
	id := uuid.New()
	log := logger.WithCaseID(base, id.String())

	j := journal.New()
	c, err := explore.NewController(m, j, ix, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	return &Investigation{
		ID:         id,
		mansion:    m,
		index:      ix,
		journal:    j,
		controller: c,
		logger:     log,
	}, nil
}

// Open starts an investigation of the built-in case.
func Open(logger *slog.Logger) (*Investigation, error) {
	m, ix, err := casefile.Open()
	if err != nil {
		return nil, err
	}
	return New(m, ix, logger)
}

// Start enters the mansion at its entrance.
func (inv *Investigation) Start() explore.Event {
	inv.logger.Info("investigation started", "rooms", len(inv.mansion.Rooms()))
	return inv.controller.Start()
}

// Move applies one navigation action.
func (inv *Investigation) Move(action explore.Action) (explore.Event, error) {
	if inv.closed {
		return explore.Event{}, ErrClosed
	}
	return inv.controller.Step(action)
}

// Suspects lists everyone the index can incriminate, sorted by name.
func (inv *Investigation) Suspects() []string {
	names := inv.index.Suspects()
	slices.Sort(names)
	return names
}

// Current is the room the detective stands in.
func (inv *Investigation) Current() *mansion.Room {
	return inv.controller.Current()
}

func (inv *Investigation) Exploring() bool {
	return !inv.closed && !inv.controller.Done()
}

// Clues returns the journal in ascending order.
func (inv *Investigation) Clues() []string {
	return inv.journal.List()
}

// HasEvidence reports whether at least one clue was journaled.
func (inv *Investigation) HasEvidence() bool {
	return !inv.journal.Empty()
}

// NormalizeAccusation trims the name and cuts it to MaxAccusedLen characters.
// Blank or non-UTF-8 input is rejected.
func NormalizeAccusation(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || !utf8.ValidString(name) {
		return "", ErrInvalidAccusation
	}
	if utf8.RuneCountInString(name) > MaxAccusedLen {
		name = string([]rune(name)[:MaxAccusedLen])
	}
	return name, nil
}

// Accuse counts the journaled clues pointing at accused and renders the
// verdict. It fails with ErrEmptyJournal before looking at the name when no
// clue has been collected.
func (inv *Investigation) Accuse(accused string) (verdict.Report, error) {
	if inv.closed {
		return verdict.Report{}, ErrClosed
	}
	if inv.journal.Empty() {
		return verdict.Report{}, ErrEmptyJournal
	}

	name, err := NormalizeAccusation(accused)
	if err != nil {
		return verdict.Report{}, err
	}

	matches := verdict.CountMatchesFor(inv.journal.All(), inv.index, name)
	report := verdict.Report{
		CaseID:   inv.ID,
		Accused:  name,
		Matches:  matches,
		Outcome:  verdict.Decide(matches),
		Clues:    inv.journal.List(),
		ClosedAt: time.Now().UTC(),
	}

	inv.logger.Info("verdict rendered",
		"accused", report.Accused,
		"matches", report.Matches,
		"outcome", report.Outcome,
		"rooms_visited", inv.controller.Visits())
	return report, nil
}

// Close releases the mansion, the journal and the index. Further moves and
// accusations fail with ErrClosed.
func (inv *Investigation) Close() {
	if inv.closed {
		return
	}
	inv.closed = true
	inv.mansion.Release()
	inv.journal.Release()
	inv.index.Release()
	inv.logger.Debug("investigation closed")
}
