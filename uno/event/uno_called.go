package event

var UnoCalled = newEmitter(UnoCalledListener.OnUnoCalled)

type UnoCalledPayload struct {
	CallerName      string
	PunishedPlayers []string
	FalseCall       bool
}

type UnoCalledListener interface {
	OnUnoCalled(UnoCalledPayload)
}
