package card

import (
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/ratel-online/core/util/rand"
)

// Percent thresholds over a roll in [0, 100). Anything at or above
// skipThreshold is a plain number.
const (
	drawTwoThreshold      = 10
	wildDrawFourThreshold = 15
	reverseThreshold      = 20
	skipThreshold         = 25
)

// Generate draws one card from the fixed distribution: +2 10%, +4 5%,
// Reverse 5%, Skip 5%, plain 1-9 otherwise. Colors are uniform.
func Generate() Card {
	return GenerateWith(rand.Intn)
}

// GenerateWith draws a card using intn as the source of randomness, where
// intn(n) returns a value in [0, n).
func GenerateWith(intn func(int) int) Card {
	c := color.All[intn(len(color.All))]
	roll := intn(100)
	switch {
	case roll < drawTwoThreshold:
		return NewDrawTwoCard(c)
	case roll < wildDrawFourThreshold:
		return NewWildDrawFourCard()
	case roll < reverseThreshold:
		return NewReverseCard(c)
	case roll < skipThreshold:
		return NewSkipCard(c)
	}
	return NewNumberCard(c, intn(9)+1)
}

// GenerateStarting keeps drawing until it gets a plain number card, so the
// opening discard is never special.
func GenerateStarting() Card {
	return GenerateStartingWith(rand.Intn)
}

func GenerateStartingWith(intn func(int) int) Card {
	for {
		if c := GenerateWith(intn); c.Kind == Number {
			return c
		}
	}
}
