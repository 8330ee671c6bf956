// Package console runs an investigation over a line-oriented terminal: one
// navigation key per line, then one line naming the accused.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/storage"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/investigation"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

// Session plays one investigation to completion.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	inv      *investigation.Investigation
	narrator *Narrator
	casebook storage.Casebook
	logger   *slog.Logger
}

type Option func(*Session)

// WithCasebook archives the verdict once rendered.
func WithCasebook(cb storage.Casebook) Option {
	return func(s *Session) {
		s.casebook = cb
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithWidth sets the wrap width of narration.
func WithWidth(width int) Option {
	return func(s *Session) {
		s.narrator.SetWidth(width)
	}
}

// NewSession reads player input from in and writes the story to out. The
// session takes ownership of inv and closes it when Run returns.
func NewSession(in io.Reader, out io.Writer, inv *investigation.Investigation, opts ...Option) *Session {
	s := &Session{
		in:       bufio.NewReader(in),
		out:      out,
		inv:      inv,
		narrator: NewNarrator(lipgloss.NewRenderer(out), DefaultWidth),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run explores until the player leaves, then holds the trial. It returns
// the verdict, or nil when no verdict was reached (no evidence or an
// unusable accusation). Errors are reserved for output failures and
// cancellation.
func (s *Session) Run(ctx context.Context) (*verdict.Report, error) {
	defer s.inv.Close()

	if err := s.print(s.narrator.Banner()); err != nil {
		return nil, err
	}
	if err := s.explore(ctx); err != nil {
		return nil, err
	}

	var report *verdict.Report
	if s.inv.HasEvidence() {
		var err error
		if report, err = s.trial(ctx); err != nil {
			return nil, err
		}
	} else {
		s.logger.Info("case closed without evidence")
		if err := s.print(s.narrator.ClosedBeforeTrial()); err != nil {
			return nil, err
		}
	}
	if err := s.print(s.narrator.Farewell()); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *Session) explore(ctx context.Context) error {
	if err := s.print(s.narrator.Event(s.inv.Start())); err != nil {
		return err
	}

	for s.inv.Exploring() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.print("\n" + NavigationPrompt + "\nChoice: "); err != nil {
			return err
		}

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			// Input ran out; treat it as leaving the mansion.
			s.logger.Debug("navigation input closed, leaving mansion")
			ev, err := s.inv.Move(explore.ActionExit)
			if err != nil {
				return err
			}
			return s.print("\n" + s.narrator.Event(ev))
		}
		if err != nil {
			return fmt.Errorf("failed to read navigation: %w", err)
		}

		action, err := explore.ParseAction(line)
		switch {
		case errors.Is(err, explore.ErrNoInput):
			continue
		case err != nil:
			s.logger.Debug("invalid navigation input", "input", strings.TrimSpace(line))
			if err := s.print(s.narrator.InvalidOption()); err != nil {
				return err
			}
			continue
		}

		ev, err := s.inv.Move(action)
		if err != nil {
			return err
		}
		if err := s.print(s.narrator.Event(ev)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) trial(ctx context.Context) (*verdict.Report, error) {
	if err := s.print(s.narrator.TrialHeader()); err != nil {
		return nil, err
	}
	if err := s.print(s.narrator.Journal(s.inv.Clues()) + "\n" + s.narrator.AccusationQuestion(s.inv.Suspects()) + "Accused: "); err != nil {
		return nil, err
	}

	line, err := s.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read accusation: %w", err)
	}

	report, err := s.inv.Accuse(line)
	switch {
	case errors.Is(err, investigation.ErrInvalidAccusation):
		return nil, s.print(s.narrator.InvalidInput())
	case errors.Is(err, investigation.ErrEmptyJournal):
		return nil, s.print(s.narrator.NoEvidence())
	case err != nil:
		return nil, err
	}

	if err := s.print(s.narrator.Verdict(report)); err != nil {
		return nil, err
	}
	s.archive(ctx, report)
	return &report, nil
}

func (s *Session) archive(ctx context.Context, report verdict.Report) {
	if s.casebook == nil {
		return
	}
	if err := s.casebook.Archive(ctx, report); err != nil {
		logger.WithError(s.logger, err).Warn("failed to archive verdict", "case_id", report.CaseID)
		_ = s.print(s.narrator.ArchiveFailed())
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; io.EOF only once nothing is left.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) print(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
