package note

func (s *Store) Find(id int64) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}
