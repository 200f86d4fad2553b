package table

import (
	"errors"
	"fmt"

	"github.com/HarryWarriner/UNO/consts"
	"github.com/HarryWarriner/UNO/uno/card"
	"github.com/HarryWarriner/UNO/uno/event"
	"github.com/HarryWarriner/UNO/uno/game"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/rand"
)

type Options struct {
	// AIDeclareChance is the percent chance the computer says UNO in time.
	AIDeclareChance  int
	FalseCallPenalty int
}

func DefaultOptions() Options {
	return Options{
		AIDeclareChance:  consts.AIDeclareChance,
		FalseCallPenalty: consts.FalseCallPenalty,
	}
}

// Table runs one game. It owns the only copy of the game state and lets
// exactly one seat act at a time.
type Table struct {
	ID      uuid.UUID
	seats   []Seat
	state   game.State
	options Options
}

func New(seats []Seat, options Options) (*Table, error) {
	state, err := game.New(len(seats))
	if err != nil {
		return nil, err
	}
	return NewWithState(seats, options, state)
}

// NewWithState seats players around an existing game.
func NewWithState(seats []Seat, options Options, state game.State) (*Table, error) {
	if len(seats) != state.NumPlayers() {
		return nil, fmt.Errorf("%w(%d seats, %d hands)", consts.ErrorsGamePlayersInvalid, len(seats), state.NumPlayers())
	}
	return &Table{
		ID:      uuid.New(),
		seats:   seats,
		state:   state,
		options: options,
	}, nil
}

func (t *Table) State() game.State {
	return t.state
}

// Run plays turns until somebody empties their hand and returns the winner.
func (t *Table) Run() (int, error) {
	log.Infof("game %s started with %d players, first card %s\n", t.ID, len(t.seats), t.state.CurrentCard)
	event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: t.state.CurrentCard,
	})
	for {
		over, err := t.Step()
		if err != nil {
			log.Infof("game %s aborted: %v\n", t.ID, err)
			return game.NoPlayer, err
		}
		if over {
			winner, _ := t.state.Winner()
			return winner, nil
		}
	}
}

// Step plays the current seat's turn and advances to the next seat. It
// reports whether the game is over.
func (t *Table) Step() (bool, error) {
	seat := t.seats[t.state.Turn]
	var err error
	if seat.automated() {
		err = t.automatedTurn()
	} else {
		err = t.playerTurn(seat.Player)
	}
	if err != nil {
		return false, err
	}

	if winner, over := t.state.Winner(); over {
		log.Infof("game %s won by %s\n", t.ID, t.seats[winner].Name)
		event.GameWon.Emit(event.GameWonPayload{
			PlayerName: t.seats[winner].Name,
		})
		return true, nil
	}

	next, err := t.state.AdvanceTurn()
	if err != nil {
		return false, err
	}
	t.state = next
	return false, nil
}

func (t *Table) playerTurn(player Player) error {
	turn := t.state.Turn
	drew := false
	for {
		move, err := player.Play(t.state, t.state.Playable(turn))
		if err != nil {
			return err
		}
		switch move.Action {
		case ActionUno:
			err = t.uno(turn)
		case ActionDraw:
			if drew {
				err = consts.ErrorsAlreadyDrew
				break
			}
			if err = t.draw(turn); err == nil {
				drew = true
			}
		case ActionPass:
			if !drew {
				err = fmt.Errorf("%wDraw a card before passing. ", consts.ErrorsInputInvalid)
				break
			}
			log.Infof("game %s: %s passed\n", t.ID, t.seats[turn].Name)
			event.PlayerPassed.Emit(event.PlayerPassedPayload{
				PlayerName: t.seats[turn].Name,
			})
			return nil
		case ActionPlay:
			if err = t.play(turn, move.CardIndex, player); err == nil {
				return nil
			}
		default:
			err = consts.ErrorsInputInvalid
		}

		if err != nil {
			if fatal(err) {
				return err
			}
			player.NotifyInvalidMove(err)
		}
	}
}

func (t *Table) play(turn, cardIndex int, player Player) error {
	next, err := t.state.Play(turn, cardIndex)
	if err != nil {
		return err
	}
	t.state = next

	for t.state.PendingColorChange {
		picked, err := player.PickColor(t.state)
		if err != nil {
			return err
		}
		next, err := t.state.ChooseColor(picked)
		if err != nil {
			player.NotifyInvalidMove(err)
			continue
		}
		t.state = next
		event.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: t.seats[turn].Name,
			Color:      picked,
		})
	}
	t.played(turn)

	if t.state.Hands[turn].Size() == 1 && player.SayUno(t.state) {
		return t.declare(turn)
	}
	return nil
}

func (t *Table) draw(turn int) error {
	next, err := t.state.Draw(turn)
	if err != nil {
		return err
	}
	t.state = next
	hand := t.state.Hands[turn]
	t.notifyDrawn(turn, hand[len(hand)-1:], false)
	return nil
}

func (t *Table) automatedTurn() error {
	turn := t.state.Turn
	next, result, err := t.state.AITurn()
	if err != nil {
		return err
	}
	t.state = next

	if !result.Played {
		t.notifyDrawn(turn, nil, false)
		event.PlayerPassed.Emit(event.PlayerPassedPayload{
			PlayerName: t.seats[turn].Name,
		})
		return nil
	}
	if result.NewCard.Kind == card.WildDrawFour {
		event.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: t.seats[turn].Name,
			Color:      result.NewCard.Color,
		})
	}
	t.played(turn)

	if t.state.Hands[turn].Size() == 1 && rand.Intn(100) < t.options.AIDeclareChance {
		return t.declare(turn)
	}
	return nil
}

// played announces the card now on the pile as turn's play.
func (t *Table) played(turn int) {
	summary := game.GenerateTurnSummary(
		turn,
		t.state.NumPlayers(),
		t.state.Direction,
		t.state.CurrentCard,
		t.state.CurrentCard.Color,
	)
	log.Infof("game %s: %s\n", t.ID, summary)
	event.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: t.seats[turn].Name,
		Card:       t.state.CurrentCard,
		Summary:    summary,
	})
}

// uno declares for the seat when it holds one card and calls UNO on the
// others otherwise. A false call costs the caller FalseCallPenalty cards.
func (t *Table) uno(seat int) error {
	err := t.declare(seat)
	if !errors.Is(err, consts.ErrorsInvalidDeclaration) {
		return err
	}

	next, result, err := t.state.CallUno(seat)
	if err != nil {
		return err
	}
	t.state = next

	punished := make([]string, 0, len(result.PunishedPlayers))
	for _, player := range result.PunishedPlayers {
		punished = append(punished, t.seats[player].Name)
	}
	log.Infof("game %s: %s called UNO, caught %v\n", t.ID, t.seats[seat].Name, punished)
	event.UnoCalled.Emit(event.UnoCalledPayload{
		CallerName:      t.seats[seat].Name,
		PunishedPlayers: punished,
		FalseCall:       result.FalseCall,
	})

	for _, player := range result.PunishedPlayers {
		hand := t.state.Hands[player]
		t.notifyDrawn(player, hand[len(hand)-consts.UnoPenalty:], true)
	}
	if result.FalseCall && t.options.FalseCallPenalty > 0 {
		next, err := t.state.Penalize(seat, t.options.FalseCallPenalty)
		if err != nil {
			return err
		}
		t.state = next
		hand := t.state.Hands[seat]
		t.notifyDrawn(seat, hand[len(hand)-t.options.FalseCallPenalty:], true)
	}
	return nil
}

func (t *Table) declare(seat int) error {
	next, err := t.state.DeclareUno(seat)
	if err != nil {
		return err
	}
	t.state = next
	log.Infof("game %s: %s declared UNO\n", t.ID, t.seats[seat].Name)
	event.UnoDeclared.Emit(event.UnoDeclaredPayload{
		PlayerName: t.seats[seat].Name,
	})
	return nil
}

// notifyDrawn tells the seat which cards it drew and everybody how many.
// Automated seats draw unseen, so cards may be nil for them.
func (t *Table) notifyDrawn(seat int, cards []card.Card, penalty bool) {
	amount := len(cards)
	if amount == 0 {
		amount = 1
	}
	if player := t.seats[seat].Player; player != nil {
		player.NotifyCardsDrawn(cards)
	}
	event.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: t.seats[seat].Name,
		Amount:     amount,
		Penalty:    penalty,
	})
}

// fatal reports whether err ends the game rather than asking for another move.
func fatal(err error) bool {
	var gameErr consts.Error
	if errors.As(err, &gameErr) {
		return gameErr.Exit
	}
	return true
}
