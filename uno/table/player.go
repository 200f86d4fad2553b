package table

import (
	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/HarryWarriner/UNO/uno/game"
)

type Action int

const (
	ActionPlay Action = iota
	ActionDraw
	ActionPass
	ActionUno
)

// Move is what a seated player chose to do. CardIndex is only read for ActionPlay.
type Move struct {
	Action    Action
	CardIndex int
}

var (
	DrawMove = Move{Action: ActionDraw}
	PassMove = Move{Action: ActionPass}
	UnoMove  = Move{Action: ActionUno}
)

func PlayMove(cardIndex int) Move {
	return Move{Action: ActionPlay, CardIndex: cardIndex}
}

// Player is a person at the table. The table asks for one decision at a time
// and never calls a Player concurrently. An error from Play or PickColor
// means the player left and ends the game.
type Player interface {
	Play(state game.State, playableCards []int) (Move, error)
	PickColor(state game.State) (color.Color, error)
	// SayUno is asked right after a play leaves the player with one card.
	SayUno(state game.State) bool
	NotifyCardsDrawn(drawnCards []card.Card)
	NotifyInvalidMove(err error)
}

// Seat is a named place at the table. A seat without a Player is played by
// the computer.
type Seat struct {
	Name   string
	Player Player
}

func (s Seat) automated() bool {
	return s.Player == nil
}
