package journal

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_ReturnsNewRootForEmptyTree(t *testing.T) {
	root, added := Insert(nil, "muddy gloves")
	require.NotNil(t, root)
	assert.True(t, added)
	assert.Equal(t, "muddy gloves", root.Text)

	same, added := Insert(root, "muddy gloves")
	assert.Same(t, root, same)
	assert.False(t, added)
}

func TestInsert_KeepsSearchTreeShape(t *testing.T) {
	var root *Entry
	for _, text := range []string{"m", "c", "x", "a", "e"} {
		root, _ = Insert(root, text)
	}

	assert.Equal(t, "m", root.Text)
	assert.Equal(t, "c", root.Left.Text)
	assert.Equal(t, "x", root.Right.Text)
	assert.Equal(t, "a", root.Left.Left.Text)
	assert.Equal(t, "e", root.Left.Right.Text)
}

func TestJournal_AllIsSortedAndDeduplicated(t *testing.T) {
	tests := []struct {
		name     string
		inserts  []string
		expected []string
	}{
		{
			name:     "empty",
			inserts:  nil,
			expected: []string{},
		},
		{
			name:     "single clue",
			inserts:  []string{"wool coat"},
			expected: []string{"wool coat"},
		},
		{
			name:     "unordered with duplicates",
			inserts:  []string{"torn note", "love note", "torn note", "forgery book", "love note"},
			expected: []string{"forgery book", "love note", "torn note"},
		},
		{
			name:     "case sensitive byte ordering",
			inserts:  []string{"apple", "Banana", "banana", "Apple"},
			expected: []string{"Apple", "Banana", "apple", "banana"},
		},
		{
			name:     "empty text ignored",
			inserts:  []string{"", "knife", ""},
			expected: []string{"knife"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := New()
			for _, text := range tt.inserts {
				j.Add(text)
			}
			assert.Equal(t, tt.expected, j.List())
			assert.Equal(t, len(tt.expected), j.Len())
		})
	}
}

func TestJournal_RandomInsertionsStayStrictlyAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"coat", "butts", "knife", "book", "note", "gloves", "letter", "key", "ash", "rope"}

	for round := 0; round < 50; round++ {
		j := New()
		for i := 0; i < 30; i++ {
			j.Add(words[rng.Intn(len(words))])
		}

		got := j.List()
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Fatalf("round %d: not strictly ascending at %d: %q >= %q", round, i, got[i-1], got[i])
			}
		}
	}
}

func TestJournal_AddIsIdempotent(t *testing.T) {
	j := New()
	j.Add("wool coat")
	j.Add("muddy gloves")
	before := j.List()

	assert.False(t, j.Add("wool coat"))
	assert.Equal(t, before, j.List())
	assert.Equal(t, 2, j.Len())
}

func TestJournal_AllIsRestartable(t *testing.T) {
	j := New()
	for _, text := range []string{"b", "a", "c"} {
		j.Add(text)
	}

	first := slices.Collect(j.All())
	second := slices.Collect(j.All())
	assert.Equal(t, first, second)

	// Stopping early must not break later iterations.
	for text := range j.All() {
		if text == "a" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(j.All()))
}

func TestJournal_CaseSensitive(t *testing.T) {
	j := New()
	assert.True(t, j.Add("love note"))
	assert.True(t, j.Add("Love note"))
	assert.False(t, j.Add("love note"))

	assert.Equal(t, []string{"Love note", "love note"}, j.List())
}

func TestJournal_Release(t *testing.T) {
	j := New()
	j.Add("b")
	j.Add("a")
	require.False(t, j.Empty())

	j.Release()
	assert.True(t, j.Empty())
	assert.Equal(t, 0, j.Len())
	assert.Empty(t, j.List())
}
