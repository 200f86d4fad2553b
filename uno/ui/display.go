package ui

import (
	"fmt"
	"time"

	"github.com/HarryWarriner/UNO/uno/card/color"
)

// Delay is slept after every printed message.
var Delay = time.Second

// Print writes text that already carries its line breaks, such as msg sentences.
func Print(text string) {
	fmt.Fprint(color.Stdout, text)
	time.Sleep(Delay)
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}
