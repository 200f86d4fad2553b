package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color of a card. The zero value is None, carried only by a Wild Draw Four
// whose color has not been picked yet.
type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

// All lists the playable colors in canonical order. Ties between colors are
// broken by this order.
var All = []Color{Red, Green, Blue, Yellow}

var names = map[Color]string{
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
}

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

func (c Color) Valid() bool {
	_, ok := names[c]
	return ok
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "Wild"
}

// Paint renders text in the terminal color, followed by the color name for
// terminals without color support.
func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...) + fmt.Sprintf("(%s)", c.Name())
}

func (c Color) String() string {
	return c.Name()
}

func ByName(name string) (Color, error) {
	for _, c := range All {
		if strings.EqualFold(names[c], name) || strings.EqualFold(names[c][:1], name) {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
