package action

// Action is an effect a card applies once its play is accepted.
type Action interface {
	action()
}

// DrawCards makes the next player in turn order draw Amount cards.
type DrawCards struct {
	Amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCards{Amount: amount}
}

// ReverseTurns flips the direction of play.
type ReverseTurns struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurns{}
}

// SkipTurn bypasses the next player on the following advance.
type SkipTurn struct{}

func NewSkipTurnAction() Action {
	return SkipTurn{}
}

// PickColor suspends the turn until the player names the new color.
type PickColor struct{}

func NewPickColorAction() Action {
	return PickColor{}
}

func (DrawCards) action()    {}
func (ReverseTurns) action() {}
func (SkipTurn) action()     {}
func (PickColor) action()    {}
