package card

import (
	"fmt"
	"strconv"

	"github.com/HarryWarriner/UNO/uno/card/action"
	"github.com/HarryWarriner/UNO/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	DrawTwo
	WildDrawFour
	Skip
	Reverse
)

var kindNames = map[Kind]string{
	Number:       "Number",
	DrawTwo:      "DrawTwo",
	WildDrawFour: "WildDrawFour",
	Skip:         "Skip",
	Reverse:      "Reverse",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is either a colored plain number (1-9) or one of the special kinds.
// Number is zero for every special kind, and a Wild Draw Four has no color
// until one is picked.
type Card struct {
	Kind   Kind
	Color  color.Color
	Number int
}

func NewNumberCard(c color.Color, number int) Card {
	return Card{Kind: Number, Color: c, Number: number}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{Kind: DrawTwo, Color: c}
}

func NewSkipCard(c color.Color) Card {
	return Card{Kind: Skip, Color: c}
}

func NewReverseCard(c color.Color) Card {
	return Card{Kind: Reverse, Color: c}
}

func NewWildDrawFourCard() Card {
	return Card{Kind: WildDrawFour}
}

// Colored returns the card with its color replaced, used to resolve a
// Wild Draw Four once a color is picked.
func (c Card) Colored(newColor color.Color) Card {
	c.Color = newColor
	return c
}

// Valid reports whether the card has a well-formed shape. A resolved Wild
// Draw Four is valid with or without a color.
func (c Card) Valid() bool {
	switch c.Kind {
	case Number:
		return c.Color.Valid() && c.Number >= 1 && c.Number <= 9
	case DrawTwo, Skip, Reverse:
		return c.Color.Valid() && c.Number == 0
	case WildDrawFour:
		return c.Number == 0 && (c.Color == color.None || c.Color.Valid())
	default:
		return false
	}
}

func (c Card) Actions() []action.Action {
	switch c.Kind {
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
		}
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	default:
		return []action.Action{}
	}
}

// Value is the face of the card as players read it: "1".."9", "+2", "+4",
// "Skip" or "Reverse".
func (c Card) Value() string {
	switch c.Kind {
	case DrawTwo:
		return "+2"
	case WildDrawFour:
		return "+4"
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	default:
		return strconv.Itoa(c.Number)
	}
}

func (c Card) String() string {
	switch c.Kind {
	case WildDrawFour:
		if c.Color == color.None {
			return "+4!"
		}
		return c.Color.Paint("+4!")
	case DrawTwo:
		return c.Color.Paint("+2!")
	case Skip:
		return c.Color.Paint("(/)")
	case Reverse:
		return c.Color.Paint("<=>")
	default:
		return c.Color.Paintf("[%d]", c.Number)
	}
}
