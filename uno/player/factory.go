package player

import (
	"fmt"

	"github.com/HarryWarriner/UNO/config"
	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/game"
	"github.com/HarryWarriner/UNO/uno/table"
	"github.com/HarryWarriner/UNO/uno/ui"
)

const aiName = "AI"

// CreateSeats seats c.Players players, taking consts.AIPlayer for the
// computer when c.VsAI is set and giving everyone else the terminal.
func CreateSeats(c config.Config) []table.Seat {
	reveal := game.NoPlayer
	if c.VsAI && c.ShowAIHand {
		reveal = consts.AIPlayer
	}

	seats := make([]table.Seat, 0, c.Players)
	for i := 0; i < c.Players; i++ {
		if c.VsAI && i == consts.AIPlayer {
			seats = append(seats, table.Seat{Name: aiName})
			continue
		}
		name := fmt.Sprintf("Player %d", i+1)
		seats = append(seats, table.Seat{Name: name, Player: ui.NewConsole(name, reveal)})
	}
	return seats
}
