// Package journal keeps the clues a detective has collected, ordered and
// deduplicated in a binary search tree keyed by the full clue text.
package journal

import "iter"

// Entry is a node of the journal tree. Everything under Left sorts before
// Text and everything under Right sorts after it.
type Entry struct {
	Text  string
	Left  *Entry
	Right *Entry
}

// Insert adds text below e and returns the root of that subtree, which is a
// fresh node when e is nil. Callers must store the result back on the parent
// edge. Comparison is plain byte-wise string ordering; an equal text is a
// no-op and reports added=false.
func Insert(e *Entry, text string) (root *Entry, added bool) {
	if e == nil {
		return &Entry{Text: text}, true
	}

	switch {
	case text < e.Text:
		e.Left, added = Insert(e.Left, text)
	case text > e.Text:
		e.Right, added = Insert(e.Right, text)
	}
	return e, added
}

// Journal is the clue diary for one investigation.
type Journal struct {
	root *Entry
	size int
}

func New() *Journal {
	return &Journal{}
}

// Add records a clue. Empty text is ignored. Reports whether the clue was new.
func (j *Journal) Add(text string) bool {
	if text == "" {
		return false
	}
	var added bool
	j.root, added = Insert(j.root, text)
	if added {
		j.size++
	}
	return added
}

func (j *Journal) Len() int {
	return j.size
}

func (j *Journal) Empty() bool {
	return j.root == nil
}

// All yields clue texts in ascending order. The sequence can be ranged over
// any number of times.
func (j *Journal) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inorder(j.root, yield)
	}
}

// List returns the clues in ascending order.
func (j *Journal) List() []string {
	clues := make([]string, 0, j.size)
	for text := range j.All() {
		clues = append(clues, text)
	}
	return clues
}

// Release drops every entry, children before parents.
func (j *Journal) Release() {
	release(j.root)
	j.root = nil
	j.size = 0
}

func inorder(e *Entry, yield func(string) bool) bool {
	if e == nil {
		return true
	}
	return inorder(e.Left, yield) && yield(e.Text) && inorder(e.Right, yield)
}

func release(e *Entry) {
	if e == nil {
		return
	}
	release(e.Left)
	release(e.Right)
	e.Left = nil
	e.Right = nil
}
