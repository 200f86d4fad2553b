package game_test

import (
	"testing"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/HarryWarriner/UNO/uno/game"
	"github.com/stretchr/testify/require"
)

func TestDealHands(t *testing.T) {
	for numPlayers := 0; numPlayers <= 4; numPlayers++ {
		hands := game.DealHands(numPlayers)
		require.Len(t, hands, numPlayers)
		for _, hand := range hands {
			require.Len(t, hand, 7)
			for _, dealt := range hand {
				require.True(t, dealt.Valid())
			}
		}
	}
}

func TestCreateEmptyHands(t *testing.T) {
	hands := game.CreateEmptyHands(4)
	require.Len(t, hands, 4)
	for _, hand := range hands {
		require.NotNil(t, hand)
		require.Empty(t, hand)
	}
	require.Empty(t, game.CreateEmptyHands(0))
}

func TestDrawCard(t *testing.T) {
	hand := game.Hand{card.NewNumberCard(color.Blue, 7)}
	drawn := game.DrawCard(hand)
	require.Len(t, drawn, 2)
	require.Len(t, hand, 1)
	require.Equal(t, card.NewNumberCard(color.Blue, 7), drawn[0])

	require.Len(t, game.DrawCard(nil), 1)
	require.Len(t, game.DrawCards(hand, 4), 5)
}

func TestPlayableCards(t *testing.T) {
	hand := game.Hand{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildDrawFourCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	}
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []int{0, 2, 3, 5}, hand.PlayableCards(lastPlayedCard))
}

func TestWithout(t *testing.T) {
	t.Run("removes_the_card_at_index", func(t *testing.T) {
		hand := game.Hand{
			card.NewWildDrawFourCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		}
		require.Equal(t, game.Hand{
			card.NewWildDrawFourCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Without(1))
	})

	t.Run("leaves_the_original_untouched", func(t *testing.T) {
		hand := game.Hand{
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
			card.NewSkipCard(color.Green),
		}
		_ = hand.Without(0)
		require.Equal(t, game.Hand{
			card.NewNumberCard(color.Red, 6),
			card.NewNumberCard(color.Red, 6),
			card.NewSkipCard(color.Green),
		}, hand)
	})
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	require.True(t, hand.Empty())
	hand = hand.With(
		card.NewNumberCard(color.Green, 7),
		card.NewWildDrawFourCard(),
		card.NewReverseCard(color.Yellow),
	)
	require.Equal(t, 3, hand.Size())
	require.False(t, hand.Empty())
}
