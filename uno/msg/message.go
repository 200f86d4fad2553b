package msg

import (
	"fmt"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return sprintfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card) string {
	return sprintfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return sprintfln("%s drew a card!", playerName)
	}
	return sprintfln("%s drew %d cards!", playerName, amount)
}

// PlayerPlayedCard announces a play along with its turn summary.
func (m MessageWriter) PlayerPlayedCard(playerName string, playedCard card.Card, summary string) string {
	return sprintfln("%s played %s! (%s)", playerName, playedCard, summary)
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) string {
	return sprintfln("%s picked color %s!", playerName, picked.Paint(picked.Name()))
}

func (m MessageWriter) PlayerDeclaredUno(playerName string) string {
	return sprintfln("%s says UNO!", playerName)
}

func (m MessageWriter) PlayerCaught(playerName string) string {
	return sprintfln("%s forgot to say UNO!", playerName)
}

func (m MessageWriter) PlayerDrewPenaltyCards(playerName string, amount int) string {
	return sprintfln("%s picked up %d penalty cards!", playerName, amount)
}

func (m MessageWriter) FalseUnoCall(playerName string) string {
	return sprintfln("False UNO by %s! Nobody was caught.", playerName)
}

func (m MessageWriter) Welcome() string {
	return sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return sprintfln("%s wins! Well done!", playerName)
}

// sprintfln formats a whole line, trailing newline included.
func sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}
