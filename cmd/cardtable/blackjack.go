package main

import (
	"context"

	"github.com/pterm/pterm"

	"cardtable/pkg/games/blackjack"
)

// Blackjack actions
const (
	actionDeal      = "Deal"
	actionHit       = "Hit"
	actionStand     = "Stand"
	actionShuffle   = "Shuffle Deck"
	actionResetDeck = "Reset Deck"
	actionBack      = "Back to Menu"
)

func (t *table) playBlackjack(ctx context.Context) {
	game := blackjack.NewGame()
	game.Shuffle()

	pterm.DefaultSection.Println("Blackjack")

	for {
		var options []string
		if game.State == blackjack.StatePlayerTurn {
			options = []string{actionHit, actionStand, actionShuffle, actionResetDeck}
		} else {
			options = []string{actionDeal, actionShuffle, actionResetDeck, actionBack}
		}

		choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Your move")
		if err != nil {
			return
		}

		switch choice {
		case actionDeal:
			if err := game.Deal(); err != nil {
				pterm.Error.Println(gameErrorMessage(err))
				continue
			}
			t.renderBlackjackHands(game)

		case actionHit:
			card := game.Hit()
			if card != nil {
				pterm.Info.Printfln("You drew: %s", card)
			}
			t.renderBlackjackHands(game)
			if game.State == blackjack.StateRoundOver {
				pterm.Warning.Println(string(game.Outcome))
				t.saveResult(ctx, game.Result())
			}

		case actionStand:
			outcome := game.Stand()
			t.renderBlackjackHands(game)
			pterm.Info.Println(string(outcome))
			t.saveResult(ctx, game.Result())

		case actionShuffle:
			game.Shuffle()
			pterm.Info.Println("Deck shuffled!")

		case actionResetDeck:
			game.ResetDeck()
			pterm.Info.Println("Deck reset to full 52 cards.")

		case actionBack:
			return
		}
	}
}

func (t *table) renderBlackjackHands(game *blackjack.Game) {
	pterm.DefaultBox.WithTitle(pterm.Sprintf("Player 1 Hand (%d)", game.PlayerScore())).
		Println(game.Player.Hand)
	pterm.DefaultBox.WithTitle(pterm.Sprintf("Dealer Hand (%d)", game.DealerScore())).
		Println(game.Dealer.Hand)
}
