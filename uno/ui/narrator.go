package ui

import (
	"github.com/HarryWarriner/UNO/uno/event"
	"github.com/HarryWarriner/UNO/uno/msg"
)

// Narrator prints what happens at the table for everybody watching.
type Narrator struct{}

func NewNarrator() *Narrator {
	return &Narrator{}
}

func (n *Narrator) Listen() *Narrator {
	event.FirstCardPlayed.AddListener(n)
	event.CardPlayed.AddListener(n)
	event.ColorPicked.AddListener(n)
	event.PlayerPassed.AddListener(n)
	event.CardsDrawn.AddListener(n)
	event.UnoDeclared.AddListener(n)
	event.UnoCalled.AddListener(n)
	event.GameWon.AddListener(n)
	return n
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card, payload.Summary))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Penalty {
		Print(msg.Message.PlayerDrewPenaltyCards(payload.PlayerName, payload.Amount))
		return
	}
	Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Amount))
}

func (n *Narrator) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	Print(msg.Message.PlayerDeclaredUno(payload.PlayerName))
}

func (n *Narrator) OnUnoCalled(payload event.UnoCalledPayload) {
	if payload.FalseCall {
		Print(msg.Message.FalseUnoCall(payload.CallerName))
		return
	}
	for _, playerName := range payload.PunishedPlayers {
		Print(msg.Message.PlayerCaught(playerName))
	}
}

func (n *Narrator) OnGameWon(payload event.GameWonPayload) {
	Print(msg.Message.WinnerFound(payload.PlayerName))
}
