package event

var GameWon = newEmitter(GameWonListener.OnGameWon)

type GameWonPayload struct {
	PlayerName string
}

type GameWonListener interface {
	OnGameWon(GameWonPayload)
}
