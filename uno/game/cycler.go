package game

// NextTurn returns the index after current in the given direction, wrapping
// at both ends. direction is +1 or -1 and total must be positive.
func NextTurn(current, total, direction int) int {
	return (current + direction + total) % total
}
