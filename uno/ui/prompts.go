package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/card/color"
	"github.com/HarryWarriner/UNO/uno/table"
)

var Stdin io.Reader = os.Stdin

const (
	drawCommand = "DRAW"
	passCommand = "PASS"
	unoCommand  = "UNO"
)

// PromptString asks until a single word is entered. It fails only once input is exhausted.
func PromptString(message string) (string, error) {
	for {
		Println(message)
		var input string
		_, err := fmt.Fscanln(Stdin, &input)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", err
		}
		if err != nil {
			Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func promptUppercaseString(message string) (string, error) {
	input, err := PromptString(message)
	return strings.ToUpper(input), err
}

// PromptMove lists the playable cards under letter labels and reads either a
// label or one of the DRAW, PASS and UNO commands.
func PromptMove(hand []card.Card, playableCards []int) (table.Move, error) {
	labels := runeSequence{}
	cardOptions := make(map[string]int)
	lines := []string{"Select a card to play:"}
	for _, index := range playableCards {
		label := labels.next()
		cardOptions[label] = index
		lines = append(lines, fmt.Sprintf("%s (enter %s)", hand[index], label))
	}
	lines = append(lines, fmt.Sprintf("or enter %s, %s or %s", drawCommand, passCommand, unoCommand))
	message := strings.Join(lines, "\n")

	for {
		input, err := promptUppercaseString(message)
		if err != nil {
			return table.Move{}, err
		}
		switch input {
		case drawCommand:
			return table.DrawMove, nil
		case passCommand:
			return table.PassMove, nil
		case unoCommand:
			return table.UnoMove, nil
		}
		if index, found := cardOptions[input]; found {
			return table.PlayMove(index), nil
		}
		Printfln("No card assigned to '%s'", input)
	}
}

func PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint(color.Red.Name()),
		color.Yellow.Paint(color.Yellow.Name()),
		color.Green.Paint(color.Green.Name()),
		color.Blue.Paint(color.Blue.Name()),
	)
	for {
		colorName, err := PromptString(colorMessage)
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}
