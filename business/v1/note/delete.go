package note

import "context"

// Delete removes the note with id, reporting whether there was one
func (s *Store) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)
	s.persist(ctx)
	return true
}
