package investigation

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/detective-quest/pkg/casefile"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
	"github.com/jwebster45206/detective-quest/pkg/verdict"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openCase(t *testing.T) *Investigation {
	t.Helper()
	inv, err := Open(testLogger())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, inv.ID)
	return inv
}

func moves(t *testing.T, inv *Investigation, actions ...explore.Action) {
	t.Helper()
	for _, a := range actions {
		_, err := inv.Move(a)
		require.NoError(t, err)
	}
}

func TestInvestigation_EntranceOnlyIsNotProven(t *testing.T) {
	inv := openCase(t)
	defer inv.Close()

	inv.Start()
	moves(t, inv, explore.ActionExit)

	report, err := inv.Accuse(casefile.SuspectGardener)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Matches)
	assert.Equal(t, verdict.OutcomeNotProven, report.Outcome)
	assert.Equal(t, []string{casefile.ClueWoolCoat}, report.Clues)
	assert.Equal(t, inv.ID, report.CaseID)
}

func TestInvestigation_PantryRouteConvictsGardener(t *testing.T) {
	inv := openCase(t)
	defer inv.Close()

	inv.Start()
	moves(t, inv,
		explore.ActionLeft,
		explore.ActionLeft,
		explore.ActionRoot,
		explore.ActionRight,
		explore.ActionLeft,
		explore.ActionExit,
	)
	assert.False(t, inv.Exploring())

	report, err := inv.Accuse(casefile.SuspectGardener)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Matches)
	assert.True(t, report.Guilty())

	report, err = inv.Accuse(casefile.SuspectCook)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Matches, "cigarette butts and chef knife")
	assert.True(t, report.Guilty())

	report, err = inv.Accuse(casefile.SuspectButler)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Matches)
	assert.False(t, report.Guilty())
}

func TestInvestigation_BlockedMoveAtLeaf(t *testing.T) {
	inv := openCase(t)
	defer inv.Close()

	inv.Start()
	moves(t, inv, explore.ActionLeft, explore.ActionLeft)
	require.Equal(t, casefile.RoomLibrary, inv.Current().Name)

	ev, err := inv.Move(explore.ActionLeft)
	require.NoError(t, err)
	assert.Equal(t, explore.EventBlocked, ev.Kind)
	assert.Equal(t, casefile.RoomLibrary, inv.Current().Name)
	assert.True(t, inv.Exploring())
}

func TestInvestigation_EmptyJournal(t *testing.T) {
	root, err := mansion.NewRoom("Vestibule", "")
	require.NoError(t, err)
	m, err := mansion.New(root)
	require.NoError(t, err)

	inv, err := New(m, suspects.New(), testLogger())
	require.NoError(t, err)
	defer inv.Close()

	inv.Start()
	moves(t, inv, explore.ActionExit)

	assert.False(t, inv.HasEvidence())
	_, err = inv.Accuse("Butler")
	assert.ErrorIs(t, err, ErrEmptyJournal)
}

func TestNormalizeAccusation(t *testing.T) {
	long := strings.Repeat("x", 60)

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "plain", input: "Butler", expected: "Butler"},
		{name: "trims", input: "  Cook \r\n", expected: "Cook"},
		{name: "truncates", input: long, expected: long[:MaxAccusedLen]},
		{name: "truncates runes", input: strings.Repeat("é", 50), expected: strings.Repeat("é", 49)},
		{name: "blank", input: "   ", err: ErrInvalidAccusation},
		{name: "empty", input: "", err: ErrInvalidAccusation},
		{name: "invalid utf8", input: "\xff\xfe", err: ErrInvalidAccusation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAccusation(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInvestigation_InvalidAccusation(t *testing.T) {
	inv := openCase(t)
	defer inv.Close()
	inv.Start()

	_, err := inv.Accuse("   ")
	assert.ErrorIs(t, err, ErrInvalidAccusation)
}

func TestInvestigation_Close(t *testing.T) {
	inv := openCase(t)
	inv.Start()
	inv.Close()
	inv.Close()

	_, err := inv.Move(explore.ActionLeft)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = inv.Accuse("Butler")
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, inv.Exploring())
	assert.False(t, inv.HasEvidence())
}

func TestInvestigation_LogsCarryCaseID(t *testing.T) {
	var logs bytes.Buffer
	inv, err := Open(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	require.NoError(t, err)
	defer inv.Close()

	inv.Start()
	moves(t, inv, explore.ActionLeft)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Contains(t, line, "case_id="+inv.ID.String())
	}
}

func TestInvestigation_SuspectsAreSorted(t *testing.T) {
	inv := openCase(t)
	defer inv.Close()

	assert.Equal(t, []string{casefile.SuspectButler, casefile.SuspectCook, casefile.SuspectGardener}, inv.Suspects())
}
