package main

import (
	"fmt"

	"github.com/HarryWarriner/UNO/config"
	"github.com/HarryWarriner/UNO/uno/msg"
	"github.com/HarryWarriner/UNO/uno/player"
	"github.com/HarryWarriner/UNO/uno/table"
	"github.com/HarryWarriner/UNO/uno/ui"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	c, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}

	ui.Print(msg.Message.Welcome())
	ui.NewNarrator().Listen()

	t, err := table.New(player.CreateSeats(c), table.Options{
		AIDeclareChance:  c.AIDeclareChance,
		FalseCallPenalty: c.FalseCallPenalty,
	})
	if err != nil {
		log.Error(err)
		return
	}
	if _, err := t.Run(); err != nil {
		log.Error(err)
	}
}
