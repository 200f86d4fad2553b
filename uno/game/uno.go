package game

import (
	"fmt"

	"github.com/HarryWarriner/UNO/consts"
)

// CallResult describes an UNO call. Hands already include the penalty cards.
type CallResult struct {
	Caught          bool
	PunishedPlayers []int
	FalseCall       bool
	Hands           []Hand
}

// DeclareUno protects player from being caught if they hold exactly one
// card. Any other hand size is an invalid declaration with no effect.
func DeclareUno(player int, hands []Hand, protected PlayerSet) (PlayerSet, bool, error) {
	if player < 0 || player >= len(hands) {
		return protected, false, fmt.Errorf("%w(player %d of %d)", consts.ErrorsPlayerInvalid, player, len(hands))
	}
	if hands[player].Size() != 1 {
		return protected, false, nil
	}
	return protected.With(player), true, nil
}

// CallUno catches every other player holding one card without protection.
// Each caught player draws the penalty. The caller is never caught.
func CallUno(caller int, hands []Hand, protected PlayerSet) (CallResult, error) {
	if caller < 0 || caller >= len(hands) {
		return CallResult{}, fmt.Errorf("%w(player %d of %d)", consts.ErrorsPlayerInvalid, caller, len(hands))
	}

	punished := make([]int, 0)
	updated := cloneHands(hands)
	for player, hand := range hands {
		if player == caller || hand.Size() != 1 || protected.Has(player) {
			continue
		}
		punished = append(punished, player)
		updated[player] = DrawCards(updated[player], consts.UnoPenalty)
	}

	return CallResult{
		Caught:          len(punished) > 0,
		PunishedPlayers: punished,
		FalseCall:       len(punished) == 0,
		Hands:           updated,
	}, nil
}

func (s State) DeclareUno(player int) (State, error) {
	protected, accepted, err := DeclareUno(player, s.Hands, s.Protected)
	if err != nil {
		return s, err
	}
	if !accepted {
		return s, consts.ErrorsInvalidDeclaration
	}
	next := s.clone()
	next.Protected = protected
	return next, nil
}

// CallUno applies an UNO call by caller. A false call changes nothing here;
// penalising the caller is left to the table.
func (s State) CallUno(caller int) (State, CallResult, error) {
	if _, over := s.Winner(); over {
		return s, CallResult{}, consts.ErrorsGameOver
	}
	result, err := CallUno(caller, s.Hands, s.Protected)
	if err != nil {
		return s, result, err
	}
	next := s.clone()
	next.Hands = result.Hands
	return next, result, nil
}

// Penalize makes player draw amount cards.
func (s State) Penalize(player, amount int) (State, error) {
	if err := s.checkPlayer(player); err != nil {
		return s, err
	}
	next := s.clone()
	next.Hands[player] = DrawCards(next.Hands[player], amount)
	return next, nil
}
