package highcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/internal/types"
	"cardtable/pkg/entities"
)

func stackedGame(cards ...*entities.Card) *Game {
	deck := entities.NewDeck()
	deck.Reset(cards)
	return NewGameWithDeck(deck)
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		name string
		rank entities.Rank
		want int
	}{
		{"ace is highest", entities.Ace, 14},
		{"king", entities.King, 13},
		{"queen", entities.Queen, 12},
		{"jack", entities.Jack, 11},
		{"ten", entities.Ten, 10},
		{"two is lowest", entities.Two, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardValue(entities.NewCard(entities.Hearts, tt.rank)))
		})
	}
}

func TestPlayerWinsRound(t *testing.T) {
	game := stackedGame(
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Spades, entities.Queen),
	)

	playerCard, err := game.DrawForPlayer()
	require.NoError(t, err)
	assert.Equal(t, entities.King, playerCard.Rank)
	assert.Equal(t, StatePlayerDrawn, game.State)

	result, err := game.DrawForDealer()
	require.NoError(t, err)
	assert.Equal(t, StateRoundOver, game.State)
	assert.Equal(t, entities.StringResultWin, result.Result)
	assert.Equal(t, "Player wins with King of Hearts vs Queen of Spades!", result.Message)
}

func TestDealerWinsRound(t *testing.T) {
	game := stackedGame(
		entities.NewCard(entities.Hearts, entities.Two),
		entities.NewCard(entities.Spades, entities.Ace),
	)

	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	result, err := game.DrawForDealer()
	require.NoError(t, err)

	assert.Equal(t, entities.StringResultLose, result.Result)
	assert.Equal(t, "Dealer wins with Ace of Spades vs 2 of Hearts!", result.Message)
}

func TestTieRound(t *testing.T) {
	game := stackedGame(
		entities.NewCard(entities.Hearts, entities.Nine),
		entities.NewCard(entities.Clubs, entities.Nine),
	)

	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	result, err := game.DrawForDealer()
	require.NoError(t, err)

	assert.Equal(t, entities.StringResultTie, result.Result, "Equal ranks never resolve to either side")
	assert.Equal(t, "It's a tie! Both have 9!", result.Message)
}

func TestDoubleDrawRefused(t *testing.T) {
	game := NewGame()
	_, err := game.DrawForPlayer()
	require.NoError(t, err)

	_, err = game.DrawForPlayer()

	require.Error(t, err)
	var gameErr *types.GameError
	require.True(t, types.As(err, &gameErr))
	assert.Equal(t, types.ErrAlreadyDrew, gameErr.Code)
	assert.Equal(t, "Player already drew a card!", gameErr.Message)
	assert.Equal(t, 1, game.Player.Hand.Size(), "Refused draw must not add a card")
}

func TestDealerCannotDrawFirst(t *testing.T) {
	game := NewGame()

	_, err := game.DrawForDealer()

	require.Error(t, err)
	var gameErr *types.GameError
	require.True(t, types.As(err, &gameErr))
	assert.Equal(t, types.ErrDrawOrder, gameErr.Code)
	assert.Equal(t, "Player must draw first!", gameErr.Message)
}

func TestPlayerDrawAfterRoundStartsFresh(t *testing.T) {
	game := NewGame()
	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	_, err = game.DrawForDealer()
	require.NoError(t, err)

	_, err = game.DrawForPlayer()

	require.NoError(t, err, "A finished round allows the next player draw directly")
	assert.Equal(t, StatePlayerDrawn, game.State)
	assert.Equal(t, 1, game.Player.Hand.Size(), "Old cards are cleared before the new draw")
	assert.True(t, game.Dealer.Hand.IsEmpty())
}

func TestDeckRecyclesWhenExhausted(t *testing.T) {
	game := stackedGame(entities.NewCard(entities.Hearts, entities.Ace))

	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	require.True(t, game.Deck.IsEmpty())

	result, err := game.DrawForDealer()

	require.NoError(t, err)
	require.NotNil(t, result.DealerCard, "Dealer draws from a recycled deck")
	assert.Equal(t, 51, game.Deck.Size(), "Recycle swaps in a fresh 52-card deck")
}

func TestNewRound(t *testing.T) {
	game := NewGame()
	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	_, err = game.DrawForDealer()
	require.NoError(t, err)

	game.NewRound()

	assert.Equal(t, StateIdle, game.State)
	assert.True(t, game.Player.Hand.IsEmpty())
	assert.True(t, game.Dealer.Hand.IsEmpty())
}

func TestResult(t *testing.T) {
	game := stackedGame(
		entities.NewCard(entities.Hearts, entities.King),
		entities.NewCard(entities.Spades, entities.Queen),
	)
	require.Nil(t, game.Result(), "No result before the round settles")

	_, err := game.DrawForPlayer()
	require.NoError(t, err)
	_, err = game.DrawForDealer()
	require.NoError(t, err)

	result := game.Result()

	require.NotNil(t, result)
	assert.Equal(t, entities.GameHighCard, result.GameType)
	require.Len(t, result.PlayerResults, 1)
	assert.Equal(t, entities.StringResultWin, result.PlayerResults[0].Result)
	assert.Equal(t, 13, result.PlayerResults[0].Score, "Score is the drawn card's value")
}
