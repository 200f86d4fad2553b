package event

// emitter delivers payloads to its listeners in registration order.
// notify is the listener's callback, usually a method expression such as
// CardPlayedListener.OnCardPlayed.
type emitter[L any, P any] struct {
	listeners []L
	notify    func(L, P)
}

func newEmitter[L any, P any](notify func(L, P)) *emitter[L, P] {
	return &emitter[L, P]{notify: notify}
}

func (e *emitter[L, P]) AddListener(listener L) {
	e.listeners = append(e.listeners, listener)
}

func (e *emitter[L, P]) Emit(payload P) {
	for _, listener := range e.listeners {
		e.notify(listener, payload)
	}
}
