package game_test

import (
	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/HarryWarriner/UNO/uno/game"
)

func stateWith(currentCard card.Card, hands ...game.Hand) game.State {
	return game.State{
		CurrentCard: currentCard,
		Hands:       hands,
		Turn:        0,
		Direction:   consts.Clockwise,
		Protected:   game.PlayerSet{},
		LastSkipped: game.NoPlayer,
	}
}

func filler(size int) game.Hand {
	hand := game.NewHand()
	for i := 0; i < size; i++ {
		hand = hand.With(card.NewNumberCard(color.Yellow, 9))
	}
	return hand
}
