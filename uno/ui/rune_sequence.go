package ui

const initialRune = 'A'

// runeSequence hands out card labels A, B, C and so on.
type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() string {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	currentRune := s.currentRune
	s.currentRune++
	return string(currentRune)
}
