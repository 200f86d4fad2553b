package game

import (
	"fmt"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

// GenerateTurnSummary describes a play and its consequence. Players are
// numbered from 1 and direction is the one in force after the play.
func GenerateTurnSummary(turn, numPlayers, direction int, playedCard card.Card, currentColor color.Color) string {
	next := NextTurn(turn, numPlayers, direction)
	base := fmt.Sprintf("Player %d played %s", turn+1, playedCard.Value())

	switch playedCard.Kind {
	case card.DrawTwo:
		return fmt.Sprintf("%s - Player %d drew 2 cards", base, next+1)
	case card.WildDrawFour:
		return fmt.Sprintf("%s - Player %d drew 4 cards, new color: %s", base, next+1, currentColor.Name())
	case card.Reverse:
		return base + " - Direction reversed"
	case card.Skip:
		after := NextTurn(next, numPlayers, direction)
		return fmt.Sprintf("%s - Player %d skipped - Player %d's Turn", base, next+1, after+1)
	default:
		return base
	}
}
