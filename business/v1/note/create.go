package note

import (
	"context"
	"strings"
)

// Create prepends a note built from content. Blank content creates nothing
func (s *Store) Create(ctx context.Context, content string) (Note, bool) {
	if strings.TrimSpace(content) == "" {
		return Note{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stamp := now.Format(TimeLayout)
	n := Note{
		Id:        s.nextId(now.UnixMilli()),
		Title:     Title(content),
		Content:   content,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}

	s.notes = append([]Note{n}, s.notes...)
	s.persist(ctx)
	return n, true
}

// nextId keeps ids unique when the clock repeats or goes backwards
func (s *Store) nextId(candidate int64) int64 {
	var newest int64
	for _, n := range s.notes {
		if n.Id > newest {
			newest = n.Id
		}
	}
	if candidate <= newest {
		return newest + 1
	}
	return candidate
}
