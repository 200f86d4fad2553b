package game

import (
	"fmt"
	"strings"

	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card"
)

// State is the whole game at one point in time. Methods that change the game
// return a new State and leave the receiver untouched; on error they return
// the receiver as is.
type State struct {
	// CurrentCard is the top of the discard pile. Its color is only None
	// while PendingColorChange is set.
	CurrentCard card.Card
	Hands       []Hand
	Turn        int
	// Direction is consts.Clockwise or consts.CounterClockwise.
	Direction int
	SkipNext  bool
	// Protected players declared UNO and cannot be caught until their next turn starts.
	Protected          PlayerSet
	LastSkipped        int
	PendingColorChange bool
}

// New deals a fresh game: seven cards each and a plain number on the pile.
func New(numPlayers int) (State, error) {
	if numPlayers < consts.MinPlayers || numPlayers > consts.MaxPlayers {
		return State{}, fmt.Errorf("%w(%d players)", consts.ErrorsGamePlayersInvalid, numPlayers)
	}
	return State{
		CurrentCard: card.GenerateStarting(),
		Hands:       DealHands(numPlayers),
		Turn:        0,
		Direction:   consts.Clockwise,
		Protected:   PlayerSet{},
		LastSkipped: NoPlayer,
	}, nil
}

func (s State) NumPlayers() int {
	return len(s.Hands)
}

// Next is the player who would act after the current one with no skip pending.
func (s State) Next() int {
	return NextTurn(s.Turn, s.NumPlayers(), s.Direction)
}

// Winner returns the first player whose hand is empty.
func (s State) Winner() (int, bool) {
	for player, hand := range s.Hands {
		if hand.Empty() {
			return player, true
		}
	}
	return NoPlayer, false
}

// Playable returns the indexes of the player's cards that match the current card.
func (s State) Playable(player int) []int {
	if s.checkPlayer(player) != nil {
		return nil
	}
	return s.Hands[player].PlayableCards(s.CurrentCard)
}

func (s State) clone() State {
	s.Hands = cloneHands(s.Hands)
	s.Protected = s.Protected.clone()
	return s
}

func (s State) checkPlayer(player int) error {
	if player < 0 || player >= len(s.Hands) {
		return fmt.Errorf("%w(player %d of %d)", consts.ErrorsPlayerInvalid, player, len(s.Hands))
	}
	return nil
}

// checkActing validates that player may take an action now.
func (s State) checkActing(player int) error {
	if err := s.checkPlayer(player); err != nil {
		return err
	}
	if _, over := s.Winner(); over {
		return consts.ErrorsGameOver
	}
	if s.PendingColorChange {
		return consts.ErrorsColorPending
	}
	if s.Turn != player {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.CurrentCard))

	var playerStatuses []string
	for player, hand := range s.Hands {
		playerStatus := fmt.Sprintf("Player %d (%d card(s))", player+1, hand.Size())
		if s.Protected.Has(player) {
			playerStatus += " UNO"
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	direction := "clockwise"
	if s.Direction == consts.CounterClockwise {
		direction = "counter-clockwise"
	}
	lines = append(lines, fmt.Sprintf("Direction: %s", direction))

	return strings.Join(lines, "\n")
}
