package event

var CardsDrawn = newEmitter(CardsDrawnListener.OnCardsDrawn)

// CardsDrawnPayload reports how many cards a player took and why. The cards
// themselves stay private to the player.
type CardsDrawnPayload struct {
	PlayerName string
	Amount     int
	Penalty    bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}
