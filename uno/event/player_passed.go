package event

var PlayerPassed = newEmitter(PlayerPassedListener.OnPlayerPassed)

type PlayerPassedPayload struct {
	PlayerName string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}
