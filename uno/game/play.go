package game

import (
	"fmt"

	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card/action"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

// Play puts the card at cardIndex of the player's hand on the pile and applies
// its effects. A Wild Draw Four leaves the game waiting for ChooseColor.
func (s State) Play(player, cardIndex int) (State, error) {
	if err := s.checkActing(player); err != nil {
		return s, err
	}
	hand := s.Hands[player]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return s, fmt.Errorf("%w(index %d of %d)", consts.ErrorsCardInvalid, cardIndex, len(hand))
	}
	playedCard := hand[cardIndex]
	if !IsValidPlay(playedCard, s.CurrentCard) {
		return s, consts.ErrorsInvalidPlay
	}

	next := s.clone()
	next.Hands[player] = hand.Without(cardIndex)
	next.CurrentCard = playedCard
	return next.perform(playedCard.Actions()), nil
}

// ChooseColor resolves a pending Wild Draw Four and applies the rest of its effects.
func (s State) ChooseColor(chosenColor color.Color) (State, error) {
	if !s.PendingColorChange {
		return s, consts.ErrorsNoColorPending
	}
	if !chosenColor.Valid() {
		return s, consts.ErrorsColorInvalid
	}

	next := s.clone()
	next.CurrentCard = next.CurrentCard.Colored(chosenColor)
	next.PendingColorChange = false
	return next.perform(afterPickColor(next.CurrentCard.Actions())), nil
}

// Draw gives the current player one card without ending the turn.
func (s State) Draw(player int) (State, error) {
	if err := s.checkActing(player); err != nil {
		return s, err
	}
	next := s.clone()
	next.Hands[player] = DrawCard(next.Hands[player])
	return next, nil
}

// AdvanceTurn moves play to the next player, twice over when a skip is
// pending. The new current player loses any UNO protection.
func (s State) AdvanceTurn() (State, error) {
	if s.PendingColorChange {
		return s, consts.ErrorsColorPending
	}
	if _, over := s.Winner(); over {
		return s, consts.ErrorsGameOver
	}

	next := s.clone()
	turn := NextTurn(s.Turn, s.NumPlayers(), s.Direction)
	if s.SkipNext {
		turn = NextTurn(turn, s.NumPlayers(), s.Direction)
	}
	next.Turn = turn
	next.SkipNext = false
	if next.LastSkipped != turn {
		next.LastSkipped = NoPlayer
	}
	next.Protected = next.Protected.Without(turn)
	return next, nil
}

// perform applies actions in order on a State the caller already owns.
// It stops at an unresolved PickColor.
func (s State) perform(actions []action.Action) State {
	target := s.Next()
	for _, cardAction := range actions {
		switch cardAction := cardAction.(type) {
		case action.DrawCards:
			s.Hands[target] = DrawCards(s.Hands[target], cardAction.Amount)
		case action.ReverseTurns:
			s.Direction = -s.Direction
		case action.SkipTurn:
			s.SkipNext = true
			s.LastSkipped = target
		case action.PickColor:
			if s.CurrentCard.Color == color.None {
				s.PendingColorChange = true
				return s
			}
		}
	}
	return s
}

func afterPickColor(actions []action.Action) []action.Action {
	for i, cardAction := range actions {
		if _, ok := cardAction.(action.PickColor); ok {
			return actions[i+1:]
		}
	}
	return actions
}
