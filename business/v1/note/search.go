package note

import (
	"iter"
	"strings"
)

// Search yields, in collection order, the notes whose title or content contains term ignoring case.
// An empty term yields every note. The sequence can be ranged over any number of times, each run
// sees the collection as it was when the run started.
func (s *Store) Search(term string) iter.Seq[Note] {
	term = strings.ToLower(term)
	return func(yield func(Note) bool) {
		for _, n := range s.All() {
			if !matches(n, term) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// matches expects term already lower cased
func matches(n Note, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), term) ||
		strings.Contains(strings.ToLower(n.Content), term)
}
