package game

import (
	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

// IsValidPlay reports whether candidateCard may be played on lastPlayedCard.
// Numbers only match numbers, and a special only matches the same special.
func IsValidPlay(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.Kind == card.WildDrawFour {
		return true
	}
	if candidateCard.Color != color.None && candidateCard.Color == lastPlayedCard.Color {
		return true
	}

	switch candidateCard.Kind {
	case card.Number:
		return lastPlayedCard.Kind == card.Number && lastPlayedCard.Number == candidateCard.Number
	default:
		return lastPlayedCard.Kind == candidateCard.Kind
	}
}
