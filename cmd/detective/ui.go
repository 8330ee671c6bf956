package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/detective-quest/internal/console"
	"github.com/jwebster45206/detective-quest/internal/logger"
	"github.com/jwebster45206/detective-quest/internal/storage"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/investigation"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

type phase int

const (
	phaseExploring phase = iota
	phaseAccusing
	phaseClosed
)

// DetectiveUI is the BubbleTea model for the full-screen front-end.
// https://github.com/charmbracelet/bubbletea
type DetectiveUI struct {
	ctx      context.Context
	inv      *investigation.Investigation
	casebook storage.Casebook
	logger   *slog.Logger
	narrator *console.Narrator

	viewport   viewport.Model
	input      textinput.Model
	transcript *strings.Builder
	phase      phase
	report     *verdict.Report
	status     string
	ready      bool
	width      int
	height     int

	copyToClipboard func(string) error
}

type archivedMsg struct {
	err error
}

var (
	panelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(3).
			PaddingRight(3)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewDetectiveUI(ctx context.Context, inv *investigation.Investigation, cb storage.Casebook, logger *slog.Logger) DetectiveUI {
	ti := textinput.New()
	ti.Placeholder = "Name the culprit..."
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = investigation.MaxAccusedLen
	ti.Width = 50

	vp := viewport.New(60, 20)
	vp.MouseWheelEnabled = true

	m := DetectiveUI{
		ctx:             ctx,
		inv:             inv,
		casebook:        cb,
		logger:          logger,
		narrator:        console.NewNarrator(lipgloss.DefaultRenderer(), console.DefaultWidth),
		viewport:        vp,
		input:           ti,
		transcript:      &strings.Builder{},
		copyToClipboard: clipboard.WriteAll,
	}

	m.write(m.narrator.Banner())
	m.write(m.narrator.Event(inv.Start()))
	return m
}

func (m DetectiveUI) Init() tea.Cmd {
	return nil
}

func (m *DetectiveUI) write(text string) {
	m.transcript.WriteString(text)
	m.viewport.SetContent(m.transcript.String())
	m.viewport.GotoBottom()
}

func (m DetectiveUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 6
		m.viewport.Height = msg.Height - 7
		m.input.Width = msg.Width - 12
		m.narrator.SetWidth(m.viewport.Width)
		m.viewport.SetContent(m.transcript.String())
		m.viewport.GotoBottom()
		m.ready = true
		return m, nil

	case archivedMsg:
		if msg.err != nil {
			logger.WithError(m.logger, msg.err).Warn("failed to archive verdict")
			m.write(m.narrator.ArchiveFailed())
		} else {
			m.status = "Verdict filed in the casebook."
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.inv.Close()
			return m, tea.Quit
		}
		switch m.phase {
		case phaseExploring:
			return m.updateExploring(msg)
		case phaseAccusing:
			return m.updateAccusing(msg)
		case phaseClosed:
			return m.updateClosed(msg)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DetectiveUI) updateExploring(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyRunes:
	default:
		return m, nil
	}

	action, err := explore.ParseAction(msg.String())
	if err != nil {
		m.write(m.narrator.InvalidOption())
		return m, nil
	}

	ev, err := m.inv.Move(action)
	if err != nil {
		logger.WithError(m.logger, err).Error("move failed", "action", action)
		return m, nil
	}
	m.write(m.narrator.Event(ev))

	if ev.Kind == explore.EventExited {
		return m.openTrial()
	}
	return m, nil
}

func (m DetectiveUI) openTrial() (tea.Model, tea.Cmd) {
	if !m.inv.HasEvidence() {
		m.write(m.narrator.ClosedBeforeTrial())
		return m.closeCase()
	}
	m.write(m.narrator.TrialHeader())

	m.write(m.narrator.Journal(m.inv.Clues()) + "\n" + m.narrator.AccusationQuestion(m.inv.Suspects()))
	m.phase = phaseAccusing
	m.input.Focus()
	return m, textinput.Blink
}

func (m DetectiveUI) updateAccusing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	accused := m.input.Value()
	m.input.Reset()
	m.input.Blur()

	report, err := m.inv.Accuse(accused)
	if err != nil {
		logger.WithError(m.logger, err).Debug("accusation rejected")
		m.write(m.narrator.InvalidInput())
		return m.closeCase()
	}

	m.write("Accused: " + report.Accused + "\n")
	m.write(m.narrator.Verdict(report))
	m.report = &report

	model, _ := m.closeCase()
	return model, m.archive(report)
}

func (m DetectiveUI) closeCase() (tea.Model, tea.Cmd) {
	m.phase = phaseClosed
	m.inv.Close()
	return m, nil
}

func (m DetectiveUI) archive(report verdict.Report) tea.Cmd {
	if m.casebook == nil {
		return nil
	}
	cb, ctx := m.casebook, m.ctx
	return func() tea.Msg {
		return archivedMsg{err: cb.Archive(ctx, report)}
	}
}

func (m DetectiveUI) updateClosed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c", "C":
		if m.report == nil {
			return m, nil
		}
		if err := m.copyToClipboard(console.Report(*m.report)); err != nil {
			logger.WithError(m.logger, err).Warn("clipboard unavailable")
			m.status = "Could not copy the case report."
		} else {
			m.status = "Case report copied to the clipboard."
		}
		return m, nil
	case "q", "Q", "esc", "enter":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DetectiveUI) footer() string {
	switch m.phase {
	case phaseExploring:
		return promptStyle.Render("In the " + m.inv.Current().Name + " :: " + console.NavigationPrompt)
	case phaseAccusing:
		return m.input.View()
	default:
		hint := "Press q to quit"
		if m.report != nil {
			hint = "Press c to copy the case report, q to quit"
		}
		return promptStyle.Render(hint)
	}
}

func (m DetectiveUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("DETECTIVE QUEST"),
		m.viewport.View(),
		separatorStyle.Render(strings.Repeat("─", max(m.width-6, 10))),
		m.footer(),
		status,
	))
}
