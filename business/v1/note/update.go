package note

import (
	"context"
	"strings"
)

// Update replaces content, title and updatedAt of an existing note, keeping its id, createdAt and
// position. Blank content or an unknown id changes nothing
func (s *Store) Update(ctx context.Context, id int64, content string) (Note, bool) {
	if strings.TrimSpace(content) == "" {
		return Note{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}

	n := &s.notes[i]
	n.Title = Title(content)
	n.Content = content
	n.UpdatedAt = s.now().Format(TimeLayout)
	if n.UpdatedAt < n.CreatedAt {
		n.UpdatedAt = n.CreatedAt
	}

	s.persist(ctx)
	return *n, true
}
