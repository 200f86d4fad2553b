package event

import "github.com/HarryWarriner/UNO/uno/card"

var CardPlayed = newEmitter(CardPlayedListener.OnCardPlayed)

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	// Summary describes the play and its consequence for the table.
	Summary string
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}
