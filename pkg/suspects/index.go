// Package suspects maps clue text to the suspect it incriminates using a
// small chained hash table.
package suspects

// BucketCount is the fixed number of chains in an Index.
const BucketCount = 10

// Association links a clue to a suspect. Entries sharing a bucket are chained
// through Next.
type Association struct {
	Clue    string
	Suspect string
	Next    *Association
}

// Index is a chained hash table from clue text to suspect name.
type Index struct {
	buckets [BucketCount]*Association
	size    int
}

func New() *Index {
	return &Index{}
}

// Hash sums the bytes of key and reduces the total modulo BucketCount.
func Hash(key string) int {
	var sum uint
	for i := 0; i < len(key); i++ {
		sum += uint(key[i])
	}
	return int(sum % BucketCount)
}

// Insert pushes a new association onto the head of the key's chain. A key
// inserted twice keeps both entries and the newer one shadows the older.
func (ix *Index) Insert(clue, suspect string) {
	b := Hash(clue)
	ix.buckets[b] = &Association{
		Clue:    clue,
		Suspect: suspect,
		Next:    ix.buckets[b],
	}
	ix.size++
}

// Lookup scans the key's chain from the head and returns the first exact match.
func (ix *Index) Lookup(clue string) (string, bool) {
	for a := ix.buckets[Hash(clue)]; a != nil; a = a.Next {
		if a.Clue == clue {
			return a.Suspect, true
		}
	}
	return "", false
}

// Len counts stored associations, shadowed duplicates included.
func (ix *Index) Len() int {
	return ix.size
}

// chain returns the associations in bucket b, head first.
func (ix *Index) chain(b int) []Association {
	if b < 0 || b >= BucketCount {
		return nil
	}
	var chain []Association
	for a := ix.buckets[b]; a != nil; a = a.Next {
		chain = append(chain, Association{Clue: a.Clue, Suspect: a.Suspect})
	}
	return chain
}

// Suspects lists every distinct suspect name, in bucket order.
func (ix *Index) Suspects() []string {
	seen := make(map[string]bool)
	var names []string
	for _, head := range ix.buckets {
		for a := head; a != nil; a = a.Next {
			if !seen[a.Suspect] {
				seen[a.Suspect] = true
				names = append(names, a.Suspect)
			}
		}
	}
	return names
}

// Release unlinks every chain.
func (ix *Index) Release() {
	for i, a := range ix.buckets {
		for a != nil {
			next := a.Next
			a.Next = nil
			a = next
		}
		ix.buckets[i] = nil
	}
	ix.size = 0
}
