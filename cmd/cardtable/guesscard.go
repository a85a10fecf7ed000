package main

import (
	"context"

	"github.com/pterm/pterm"

	"cardtable/pkg/games/guesscard"
)

func (t *table) playGuessCard(ctx context.Context) {
	pterm.DefaultSection.Println("Guess the Card")

	for {
		game := guesscard.NewGame()

		// Re-prompt while the guess is blank; the round stays open.
		var result *guesscard.GuessResult
		for {
			guess, err := pterm.DefaultInteractiveTextInput.
				Show("Guess the rank of the card (e.g., Ace, 2, King)")
			if err != nil {
				return
			}

			result, err = game.SubmitGuess(guess)
			if err != nil {
				pterm.Error.Println(gameErrorMessage(err))
				continue
			}
			break
		}

		if result.Correct {
			pterm.Success.Println(result.Message)
		} else {
			pterm.Warning.Println(result.Message)
		}
		t.saveResult(ctx, game.Result(t.cfg.PlayerName, result))

		again, err := pterm.DefaultInteractiveConfirm.Show("Would you like to play again?")
		if err != nil || !again {
			return
		}
	}
}
