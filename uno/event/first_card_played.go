package event

import "github.com/HarryWarriner/UNO/uno/card"

var FirstCardPlayed = newEmitter(FirstCardPlayedListener.OnFirstCardPlayed)

type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}
