package main

import (
	"context"
	"sync/atomic"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"

	"cardtable/pkg/games/slapjack"
)

func (t *table) playSlapjack(ctx context.Context) {
	pterm.DefaultSection.Println("Slapjack")

	window := t.chooseSlapWindow()
	game := slapjack.NewGame(window)
	runner := slapjack.NewRunner(game, t.cfg.FlipInterval)

	pterm.Info.Println("Game started! Watch for Jacks and press any key to SLAP! (Esc quits)")
	pterm.Info.Printfln("Current suit: %s", game.CurrentSuit())

	slaps := make(chan struct{}, 1)
	quit := make(chan struct{}, 1)
	listenerDone := make(chan struct{})
	var finished atomic.Bool
	go func() {
		defer close(listenerDone)
		keyboard.Listen(func(key keys.Key) (bool, error) {
			switch key.Code {
			case keys.Escape, keys.CtrlC:
				select {
				case quit <- struct{}{}:
				default:
				}
				return true, nil
			default:
				if finished.Load() {
					return true, nil
				}
				select {
				case slaps <- struct{}{}:
				default:
				}
				return false, nil
			}
		})
	}()

	events := runner.Start()

play:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break play
			}
			if ev.Flip != nil {
				flip := ev.Flip
				switch {
				case flip.SuitChanged:
					pterm.Info.Printfln("Moving to %s suit!", flip.NextSuit)
				case flip.GameOver:
					pterm.Warning.Println("All suits completed! Game Over!")
				case flip.Jack:
					pterm.Warning.Printfln("Card flipped: %s", flip.Card)
					pterm.Warning.Println("JACK! SLAP NOW!")
				default:
					pterm.Info.Printfln("Card flipped: %s", flip.Card)
				}
			}
			if ev.Timeout != nil {
				pterm.Error.Println("Too slow! You missed the Jack!")
			}

		case <-slaps:
			result := runner.Slap()
			switch {
			case result.Hit:
				pterm.Success.Println("Great slap! +1 point")
			case result.Penalty:
				pterm.Warning.Println("No Jack to slap! -1 point penalty")
			}

		case <-quit:
			break play

		case <-ctx.Done():
			break play
		}
	}

	runner.Stop()

	// The listener blocks on a terminal read until the next keypress, so
	// prompt for one unless Escape already shut it down.
	finished.Store(true)
	select {
	case <-listenerDone:
	default:
		pterm.Info.Println("Press any key to continue...")
		<-listenerDone
	}

	pterm.DefaultSection.Println("Final Score")
	pterm.Info.Printfln("Your score: %d points", game.Score())
	pterm.Info.Printfln("Cards collected: %d", game.Player.Hand.Size())

	if result := game.Result(); result != nil {
		t.saveResult(ctx, result)
	}
}

// chooseSlapWindow offers the fixed slap-timer menu, defaulting to the
// configured window.
func (t *table) chooseSlapWindow() time.Duration {
	options := make([]string, len(slapjack.ReactionWindowOptions))
	defaultOption := formatWindow(t.cfg.SlapWindow)
	for i, d := range slapjack.ReactionWindowOptions {
		options[i] = formatWindow(d)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultOption).
		Show("Slap Timer")
	if err != nil {
		return t.cfg.SlapWindow
	}

	for i, option := range options {
		if option == choice {
			return slapjack.ReactionWindowOptions[i]
		}
	}
	return t.cfg.SlapWindow
}
