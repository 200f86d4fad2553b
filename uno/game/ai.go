package game

import (
	"fmt"

	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

// AIResult is everything an AI turn changed.
type AIResult struct {
	UpdatedHands []Hand
	NewCard      card.Card
	Direction    int
	SkipNext     bool
	Played       bool
}

// Lower ranks are played first.
var aiPriorities = map[card.Kind]int{
	card.WildDrawFour: 0,
	card.DrawTwo:      1,
	card.Reverse:      2,
	card.Skip:         3,
	card.Number:       4,
}

// MostFrequentColor returns the color held most often in hand, the earliest
// in canonical order on a tie, and the first color for a hand without colors.
func MostFrequentColor(hand Hand) color.Color {
	counts := make(map[color.Color]int)
	for _, c := range hand {
		counts[c.Color]++
	}
	best := color.All[0]
	for _, c := range color.All {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// PerformAITurn plays the AI's best legal card, or draws one card when none
// matches. The inputs are not modified.
func PerformAITurn(aiIndex int, hands []Hand, currentCard card.Card, direction int, numPlayers int) (AIResult, error) {
	if numPlayers != len(hands) {
		return AIResult{}, fmt.Errorf("%w(%d players, %d hands)", consts.ErrorsGamePlayersInvalid, numPlayers, len(hands))
	}
	if aiIndex < 0 || aiIndex >= numPlayers {
		return AIResult{}, fmt.Errorf("%w(player %d of %d)", consts.ErrorsPlayerInvalid, aiIndex, numPlayers)
	}
	if direction != consts.Clockwise && direction != consts.CounterClockwise {
		return AIResult{}, fmt.Errorf("%w(direction %d)", consts.ErrorsInputInvalid, direction)
	}

	hand := hands[aiIndex]
	updated := cloneHands(hands)
	result := AIResult{
		UpdatedHands: updated,
		NewCard:      currentCard,
		Direction:    direction,
	}

	chosen := chooseCard(hand, currentCard)
	if chosen < 0 {
		updated[aiIndex] = DrawCard(hand)
		return result, nil
	}

	playedCard := hand[chosen]
	updated[aiIndex] = hand.Without(chosen)
	result.Played = true

	target := NextTurn(aiIndex, numPlayers, direction)
	switch playedCard.Kind {
	case card.WildDrawFour:
		playedCard = playedCard.Colored(MostFrequentColor(hand))
		updated[target] = DrawCards(updated[target], consts.WildDrawFourAmount)
	case card.DrawTwo:
		updated[target] = DrawCards(updated[target], consts.DrawTwoAmount)
	case card.Reverse:
		result.Direction = -direction
	case card.Skip:
		result.SkipNext = true
	}
	result.NewCard = playedCard
	return result, nil
}

// chooseCard returns the index of the card to play, or -1. Cards in the most
// frequent color win over other cards of the same rank; earlier cards win ties.
func chooseCard(hand Hand, currentCard card.Card) int {
	commonColor := MostFrequentColor(hand)
	chosen, bestScore := -1, 0
	for _, index := range hand.PlayableCards(currentCard) {
		candidate := hand[index]
		score := aiPriorities[candidate.Kind] * 2
		if candidate.Color == commonColor {
			score--
		}
		if chosen < 0 || score < bestScore {
			chosen, bestScore = index, score
		}
	}
	return chosen
}

// AITurn runs PerformAITurn for the current player and folds the result in.
func (s State) AITurn() (State, AIResult, error) {
	if err := s.checkActing(s.Turn); err != nil {
		return s, AIResult{}, err
	}
	result, err := PerformAITurn(s.Turn, s.Hands, s.CurrentCard, s.Direction, s.NumPlayers())
	if err != nil {
		return s, result, err
	}

	next := s.clone()
	next.Hands = result.UpdatedHands
	next.CurrentCard = result.NewCard
	next.Direction = result.Direction
	if result.SkipNext {
		next.SkipNext = true
		next.LastSkipped = next.Next()
	}
	return next, result, nil
}
