package card

import "strings"

const wildBackground = "wild"

// Style is the presentation-only view of a card.
type Style struct {
	BackgroundColor string
	Label           string
}

var specialLabels = map[Kind]string{
	DrawTwo:      "+2",
	WildDrawFour: "+4",
	Skip:         "⏩",
	Reverse:      "🔄",
}

func GetStyle(c Card) Style {
	background := wildBackground
	if c.Kind != WildDrawFour {
		background = strings.ToLower(c.Color.Name())
	}
	label, ok := specialLabels[c.Kind]
	if !ok {
		label = c.Value()
	}
	return Style{
		BackgroundColor: background,
		Label:           label,
	}
}
