package event

import "github.com/HarryWarriner/UNO/uno/card/color"

var ColorPicked = newEmitter(ColorPickedListener.OnColorPicked)

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}
