package main

import (
	"context"

	"github.com/pterm/pterm"

	"cardtable/pkg/games/highcard"
)

// High Card actions
const (
	actionDrawPlayer = "Draw for Player"
	actionDrawDealer = "Draw for Dealer"
)

func (t *table) playHighCard(ctx context.Context) {
	game := highcard.NewGame()

	pterm.DefaultSection.Println("High Card")

	for {
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{actionDrawPlayer, actionDrawDealer, actionBack}).
			Show("Your move")
		if err != nil {
			return
		}

		switch choice {
		case actionDrawPlayer:
			card, err := game.DrawForPlayer()
			if err != nil {
				pterm.Error.Println(gameErrorMessage(err))
				continue
			}
			pterm.Info.Printfln("Player's card: %s", card)

		case actionDrawDealer:
			result, err := game.DrawForDealer()
			if err != nil {
				pterm.Error.Println(gameErrorMessage(err))
				continue
			}
			pterm.Info.Printfln("Dealer's card: %s", result.DealerCard)
			pterm.Info.Println(result.Message)
			t.saveResult(ctx, game.Result())

			again, err := pterm.DefaultInteractiveConfirm.Show("Would you like to play again?")
			if err != nil || !again {
				return
			}
			game.NewRound()

		case actionBack:
			return
		}
	}
}
