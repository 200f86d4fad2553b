package card_test

import (
	"testing"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/action"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns an intn that replays values in order.
func scripted(values ...int) func(int) int {
	return func(n int) int {
		value := values[0]
		values = values[1:]
		if value >= n {
			panic("scripted value out of range")
		}
		return value
	}
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 2000; i++ {
		generated := card.Generate()
		require.True(t, generated.Valid(), "malformed card %#v", generated)
		if generated.Kind == card.WildDrawFour {
			require.Equal(t, color.None, generated.Color)
		}
		if generated.Kind == card.Number {
			require.GreaterOrEqual(t, generated.Number, 1)
			require.LessOrEqual(t, generated.Number, 9)
		} else {
			require.Zero(t, generated.Number)
		}
	}
}

func TestGenerateWith(t *testing.T) {
	scenarios := []struct {
		description  string
		rolls        []int
		expectedCard card.Card
	}{
		{
			description:  "lowest_roll_is_draw_two",
			rolls:        []int{0, 0},
			expectedCard: card.NewDrawTwoCard(color.Red),
		},
		{
			description:  "draw_two_upper_bound",
			rolls:        []int{3, 9},
			expectedCard: card.NewDrawTwoCard(color.Yellow),
		},
		{
			description:  "wild_draw_four_drops_color",
			rolls:        []int{2, 10},
			expectedCard: card.NewWildDrawFourCard(),
		},
		{
			description:  "reverse",
			rolls:        []int{1, 15},
			expectedCard: card.NewReverseCard(color.Green),
		},
		{
			description:  "skip",
			rolls:        []int{2, 24},
			expectedCard: card.NewSkipCard(color.Blue),
		},
		{
			description:  "plain_number_low",
			rolls:        []int{0, 25, 0},
			expectedCard: card.NewNumberCard(color.Red, 1),
		},
		{
			description:  "plain_number_high",
			rolls:        []int{3, 99, 8},
			expectedCard: card.NewNumberCard(color.Yellow, 9),
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := card.GenerateWith(scripted(scenario.rolls...))
			require.Equal(t, scenario.expectedCard, result)
		})
	}
}

func TestGenerateStarting(t *testing.T) {
	t.Run("skips_special_cards", func(t *testing.T) {
		result := card.GenerateStartingWith(scripted(0, 0, 1, 12, 2, 30, 4))
		require.Equal(t, card.NewNumberCard(color.Blue, 5), result)
	})

	t.Run("always_plain_number", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			require.Equal(t, card.Number, card.GenerateStarting().Kind)
		}
	})
}

func TestValid(t *testing.T) {
	assert.True(t, card.NewNumberCard(color.Green, 4).Valid())
	assert.True(t, card.NewWildDrawFourCard().Valid())
	assert.True(t, card.NewWildDrawFourCard().Colored(color.Blue).Valid())
	assert.False(t, card.NewNumberCard(color.Green, 0).Valid())
	assert.False(t, card.NewNumberCard(color.None, 4).Valid())
	assert.False(t, card.Card{Kind: card.Skip, Color: color.Red, Number: 3}.Valid())
	assert.False(t, card.Card{Kind: card.Kind(42), Color: color.Red}.Valid())
}

func TestValue(t *testing.T) {
	assert.Equal(t, "7", card.NewNumberCard(color.Red, 7).Value())
	assert.Equal(t, "+2", card.NewDrawTwoCard(color.Red).Value())
	assert.Equal(t, "+4", card.NewWildDrawFourCard().Value())
	assert.Equal(t, "Skip", card.NewSkipCard(color.Red).Value())
	assert.Equal(t, "Reverse", card.NewReverseCard(color.Red).Value())
}

func TestActions(t *testing.T) {
	assert.Empty(t, card.NewNumberCard(color.Red, 3).Actions())
	assert.Equal(t, []action.Action{
		action.NewDrawCardsAction(2),
	}, card.NewDrawTwoCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWildDrawFourCard().Actions())
	assert.Equal(t, []action.Action{
		action.NewSkipTurnAction(),
	}, card.NewSkipCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewReverseTurnsAction(),
	}, card.NewReverseCard(color.Red).Actions())
}

func TestGetStyle(t *testing.T) {
	scenarios := []struct {
		description   string
		card          card.Card
		expectedStyle card.Style
	}{
		{
			description:   "wild_draw_four",
			card:          card.NewWildDrawFourCard(),
			expectedStyle: card.Style{BackgroundColor: "wild", Label: "+4"},
		},
		{
			description:   "resolved_wild_draw_four_stays_neutral",
			card:          card.NewWildDrawFourCard().Colored(color.Green),
			expectedStyle: card.Style{BackgroundColor: "wild", Label: "+4"},
		},
		{
			description:   "draw_two",
			card:          card.NewDrawTwoCard(color.Blue),
			expectedStyle: card.Style{BackgroundColor: "blue", Label: "+2"},
		},
		{
			description:   "skip",
			card:          card.NewSkipCard(color.Yellow),
			expectedStyle: card.Style{BackgroundColor: "yellow", Label: "⏩"},
		},
		{
			description:   "reverse",
			card:          card.NewReverseCard(color.Red),
			expectedStyle: card.Style{BackgroundColor: "red", Label: "🔄"},
		},
		{
			description:   "plain_number",
			card:          card.NewNumberCard(color.Green, 8),
			expectedStyle: card.Style{BackgroundColor: "green", Label: "8"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedStyle, card.GetStyle(scenario.card))
		})
	}
}
