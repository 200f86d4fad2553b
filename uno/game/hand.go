package game

import (
	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card"
)

// Hand is the ordered cards of one player. Its methods never modify the
// receiver's backing array.
type Hand []card.Card

func NewHand() Hand {
	return make(Hand, 0, consts.HandSize)
}

func (h Hand) Clone() Hand {
	cards := make(Hand, len(h))
	copy(cards, h)
	return cards
}

// With returns a copy of the hand with cards appended.
func (h Hand) With(cards ...card.Card) Hand {
	hand := make(Hand, 0, len(h)+len(cards))
	hand = append(hand, h...)
	return append(hand, cards...)
}

// Without returns a copy of the hand with the card at index removed,
// keeping the order of the rest.
func (h Hand) Without(index int) Hand {
	hand := make(Hand, 0, len(h))
	hand = append(hand, h[:index]...)
	return append(hand, h[index+1:]...)
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

func (h Hand) Size() int {
	return len(h)
}

// PlayableCards returns the indexes of cards that may be played on lastPlayedCard.
func (h Hand) PlayableCards(lastPlayedCard card.Card) []int {
	var playable []int
	for index, candidateCard := range h {
		if IsValidPlay(candidateCard, lastPlayedCard) {
			playable = append(playable, index)
		}
	}
	return playable
}

// DealHands returns numPlayers hands of seven generated cards each.
func DealHands(numPlayers int) []Hand {
	hands := CreateEmptyHands(numPlayers)
	for i := range hands {
		hands[i] = DrawCards(hands[i], consts.HandSize)
	}
	return hands
}

// CreateEmptyHands returns numPlayers empty hands.
func CreateEmptyHands(numPlayers int) []Hand {
	if numPlayers < 0 {
		numPlayers = 0
	}
	hands := make([]Hand, numPlayers)
	for i := range hands {
		hands[i] = NewHand()
	}
	return hands
}

// DrawCard returns hand plus one freshly generated card.
func DrawCard(hand Hand) Hand {
	return hand.With(card.Generate())
}

func DrawCards(hand Hand, amount int) Hand {
	for i := 0; i < amount; i++ {
		hand = DrawCard(hand)
	}
	return hand
}

func cloneHands(hands []Hand) []Hand {
	cloned := make([]Hand, len(hands))
	for i, hand := range hands {
		cloned[i] = hand.Clone()
	}
	return cloned
}
