package ui

import (
	"strings"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/HarryWarriner/UNO/uno/game"
	"github.com/HarryWarriner/UNO/uno/msg"
	"github.com/HarryWarriner/UNO/uno/table"
)

// Console is a seat played from the terminal.
type Console struct {
	name string
	// reveal is a seat whose hand is printed next to the player's own, or
	// game.NoPlayer.
	reveal int
}

func NewConsole(name string, reveal int) *Console {
	return &Console{name: name, reveal: reveal}
}

func (c *Console) Play(state game.State, playableCards []int) (table.Move, error) {
	Print(msg.Message.HumanPlayerTurnStarted(c.name))
	Println(state)
	if c.reveal != game.NoPlayer && c.reveal != state.Turn {
		Printfln("Hand of player %d: %s", c.reveal+1, state.Hands[c.reveal])
	}
	hand := state.Hands[state.Turn]
	Printfln("Your hand is %s", hand)
	if len(playableCards) == 0 {
		Print(msg.Message.HumanPlayerHasNoMatchingCardsInHand(c.name, state.CurrentCard))
	}
	return PromptMove(hand, playableCards)
}

func (c *Console) PickColor(state game.State) (color.Color, error) {
	return PromptColor()
}

func (c *Console) SayUno(state game.State) bool {
	input, err := PromptString("One card left! Enter UNO to say it, anything else to stay quiet")
	return err == nil && strings.EqualFold(input, unoCommand)
}

func (c *Console) NotifyCardsDrawn(drawnCards []card.Card) {
	if len(drawnCards) > 0 {
		Print(msg.Message.HumanPlayerDrewCards(drawnCards))
	}
}

func (c *Console) NotifyInvalidMove(err error) {
	Println(err)
}
