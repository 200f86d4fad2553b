package event

// DummyListener records every payload it receives, in order.
type DummyListener struct {
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

// Listen registers the listener with every emitter.
func (l *DummyListener) Listen() *DummyListener {
	FirstCardPlayed.AddListener(l)
	CardPlayed.AddListener(l)
	ColorPicked.AddListener(l)
	PlayerPassed.AddListener(l)
	CardsDrawn.AddListener(l)
	UnoDeclared.AddListener(l)
	UnoCalled.AddListener(l)
	GameWon.AddListener(l)
	return l
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	return l.receivedPayloads
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnUnoDeclared(payload UnoDeclaredPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnUnoCalled(payload UnoCalledPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnGameWon(payload GameWonPayload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
