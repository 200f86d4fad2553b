package game

import "sort"

// NoPlayer marks the absence of a player index.
const NoPlayer = -1

// PlayerSet is a set of player indexes. With and Without return copies.
type PlayerSet map[int]bool

func (s PlayerSet) Has(player int) bool {
	return s[player]
}

func (s PlayerSet) With(player int) PlayerSet {
	set := s.clone()
	set[player] = true
	return set
}

func (s PlayerSet) Without(player int) PlayerSet {
	set := s.clone()
	delete(set, player)
	return set
}

// Players returns the members in ascending order.
func (s PlayerSet) Players() []int {
	players := make([]int, 0, len(s))
	for player, ok := range s {
		if ok {
			players = append(players, player)
		}
	}
	sort.Ints(players)
	return players
}

func (s PlayerSet) clone() PlayerSet {
	set := make(PlayerSet, len(s)+1)
	for player, ok := range s {
		if ok {
			set[player] = true
		}
	}
	return set
}
