package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

const DefaultWidth = 72

const NavigationPrompt = "Where to? (e) Left | (d) Right | (r) Return to the entrance | (s) Leave and accuse"

// Narrator turns game events into text.
type Narrator struct {
	width int
	upper cases.Caser

	title   lipgloss.Style
	room    lipgloss.Style
	clue    lipgloss.Style
	suspect lipgloss.Style
	warn    lipgloss.Style
	guilty  lipgloss.Style
	acquit  lipgloss.Style
	faint   lipgloss.Style
}

// NewNarrator styles text with r. A renderer bound to a non-terminal writer
// produces plain text.
func NewNarrator(r *lipgloss.Renderer, width int) *Narrator {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Narrator{
		width:   width,
		upper:   cases.Upper(language.English),
		title:   r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		room:    r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		clue:    r.NewStyle().Foreground(lipgloss.Color("86")),
		suspect: r.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		guilty:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		acquit:  r.NewStyle().Foreground(lipgloss.Color("240")).Bold(true),
		faint:   r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SetWidth changes the wrap width.
func (n *Narrator) SetWidth(width int) {
	if width > 0 {
		n.width = width
	}
}

func (n *Narrator) wrap(s string) string {
	return wordwrap.String(s, n.width)
}

func (n *Narrator) rule() string {
	return strings.Repeat("=", min(n.width, 50))
}

// Banner is printed once before exploring.
func (n *Narrator) Banner() string {
	var b strings.Builder
	b.WriteString(n.rule() + "\n")
	b.WriteString(n.title.Render(n.upper.String(casefile.Title)) + "\n")
	b.WriteString(n.rule() + "\n")
	b.WriteString(n.wrap("Welcome to the Enigma Mansion. Your goal: collect clues and accuse the culprit.") + "\n")
	b.WriteString(n.wrap(fmt.Sprintf("You need at least %d clues to back an accusation.", verdict.Threshold)) + "\n")
	return b.String()
}

// Event describes the result of a navigation step.
func (n *Narrator) Event(ev explore.Event) string {
	switch ev.Kind {
	case explore.EventEntered:
		return n.entered(ev)
	case explore.EventBlocked:
		side := "left"
		if ev.Action == explore.ActionRight {
			side = "right"
		}
		return n.warn.Render(fmt.Sprintf("Path blocked: there is no room to the %s.", side)) + "\n"
	case explore.EventAlreadyAtRoot:
		return n.warn.Render("You are already at the entrance.") + "\n"
	case explore.EventExited:
		return "\n" + n.title.Render("Leaving the mansion... time for the trial!") + "\n"
	}
	return ""
}

func (n *Narrator) entered(ev explore.Event) string {
	var b strings.Builder
	b.WriteString("\n--- You are in the " + n.room.Render(ev.Room.Name) + " ---\n")

	d := ev.Discovery
	if d == nil {
		b.WriteString(n.wrap("There seems to be nothing relevant in this room.") + "\n")
		return b.String()
	}

	b.WriteString(n.wrap("CLUE FOUND: "+n.clue.Render(fmt.Sprintf("%q", d.Clue))) + "\n")
	if d.New {
		b.WriteString("The clue was added to your investigation journal.\n")
	} else {
		b.WriteString(n.faint.Render("This clue is already in your journal.") + "\n")
	}
	if d.Linked {
		b.WriteString(n.wrap("Associated suspect: this clue points to "+n.suspect.Render(d.Suspect)+".") + "\n")
	} else {
		b.WriteString("This clue is not yet linked to any suspect.\n")
	}
	return b.String()
}

// InvalidOption answers an unrecognised navigation key.
func (n *Narrator) InvalidOption() string {
	return n.warn.Render("Invalid option. Try again.") + "\n"
}

// TrialHeader opens the verdict phase.
func (n *Narrator) TrialHeader() string {
	return "\n" + n.rule() + "\n" + n.title.Render("    FINAL TRIAL") + "\n" + n.rule() + "\n"
}

// NoEvidence is shown at the trial instead of the accusation prompt when the
// journal is empty.
func (n *Narrator) NoEvidence() string {
	return n.wrap("You collected no clues. The case is closed for lack of evidence.") + "\n"
}

// ClosedBeforeTrial replaces the whole trial when the player leaves the
// mansion without a single clue.
func (n *Narrator) ClosedBeforeTrial() string {
	return "\n" + n.wrap("The case was closed before it began, for lack of evidence.") + "\n"
}

// Journal lists the collected clues in order.
func (n *Narrator) Journal(clues []string) string {
	var b strings.Builder
	b.WriteString("\n" + n.title.Render("COLLECTED CLUES (investigation journal):") + "\n")
	for _, c := range clues {
		b.WriteString(n.wrap("- "+c) + "\n")
	}
	return b.String()
}

// AccusationQuestion asks for the culprit, naming the suspects.
func (n *Narrator) AccusationQuestion(suspects []string) string {
	if len(suspects) == 0 {
		return n.wrap("Who do you accuse of being the culprit?") + "\n"
	}
	return n.wrap("Who do you accuse of being the culprit? (e.g. "+strings.Join(suspects, ", ")+")") + "\n"
}

// InvalidInput answers an unusable accusation.
func (n *Narrator) InvalidInput() string {
	return n.warn.Render("Invalid input.") + "\n"
}

// Verdict explains the evidence count and the outcome.
func (n *Narrator) Verdict(r verdict.Report) string {
	var b strings.Builder
	b.WriteString("\n--- EVIDENCE ANALYSIS ---\n")
	b.WriteString(n.wrap(fmt.Sprintf("Found %d clue(s) pointing to %s.", r.Matches, n.suspect.Render(r.Accused))) + "\n\n")

	if r.Guilty() {
		b.WriteString(n.guilty.Render("VERDICT: "+n.upper.String("guilty")+"!") + "\n")
		b.WriteString(n.wrap(fmt.Sprintf("With %d solid clues, your accusation against %s is undeniable! The mystery is solved.",
			r.Matches, r.Accused)) + "\n")
	} else {
		b.WriteString(n.acquit.Render("VERDICT: "+n.upper.String("not proven")+"!") + "\n")
		b.WriteString(n.wrap(fmt.Sprintf("Only %d clue(s) is not enough. The law demands at least %d pieces of evidence to arrest %s. The culprit got away!",
			r.Matches, verdict.Threshold, r.Accused)) + "\n")
	}
	b.WriteString(n.rule() + "\n")
	return b.String()
}

// ArchiveFailed reports that the casebook could not store the verdict.
func (n *Narrator) ArchiveFailed() string {
	return n.faint.Render("(The verdict could not be filed in the casebook.)") + "\n"
}

// Farewell closes the run.
func (n *Narrator) Farewell() string {
	return "\nThe mansion, journal and suspect index were released. Game over.\n"
}

// Report renders a closed case as plain text for sharing.
func Report(r verdict.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Case %s\n", r.CaseID)
	fmt.Fprintf(&b, "Closed: %s\n", r.ClosedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Accused: %s\n", r.Accused)
	fmt.Fprintf(&b, "Matching clues: %d\n", r.Matches)
	fmt.Fprintf(&b, "Verdict: %s\n", outcomeLabel(r.Outcome))
	b.WriteString("Journal:\n")
	for _, c := range r.Clues {
		fmt.Fprintf(&b, "  - %s\n", c)
	}
	return b.String()
}

func outcomeLabel(o verdict.Outcome) string {
	switch o {
	case verdict.OutcomeGuilty:
		return "guilty"
	case verdict.OutcomeNotProven:
		return "not proven"
	}
	return string(o)
}
