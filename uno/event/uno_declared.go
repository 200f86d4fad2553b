package event

var UnoDeclared = newEmitter(UnoDeclaredListener.OnUnoDeclared)

type UnoDeclaredPayload struct {
	PlayerName string
}

type UnoDeclaredListener interface {
	OnUnoDeclared(UnoDeclaredPayload)
}
