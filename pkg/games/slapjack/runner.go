package slapjack

import (
	"sync"
	"time"
)

// Event is what the runner reports to the presentation layer after each
// clock tick. Exactly one field is set.
type Event struct {
	Flip    *FlipResult
	Timeout *TimeoutResult
}

// Runner drives a Game's two clocks with wall time. Every transition runs on
// a single dispatch goroutine, so a slap and an expiring window can never
// interleave: a successful slap disarms the window in the same dispatch turn,
// and a stale expiry that still gets through finds the jack no longer live.
type Runner struct {
	game         *Game
	flipInterval time.Duration

	events   chan Event
	slaps    chan chan SlapResult
	windows  chan time.Duration
	quit     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewRunner wraps a game with wall-clock cadences. flipInterval is how often
// the next card is revealed.
func NewRunner(game *Game, flipInterval time.Duration) *Runner {
	return &Runner{
		game:         game,
		flipInterval: flipInterval,
		events:       make(chan Event, 16),
		slaps:        make(chan chan SlapResult),
		windows:      make(chan time.Duration),
		quit:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

// Start begins flipping cards. The returned channel delivers one event per
// tick and is closed when the game ends or the runner is stopped.
func (r *Runner) Start() <-chan Event {
	go r.loop()
	return r.events
}

// Slap applies a slap on the dispatch goroutine and returns its effect. A
// slap after the runner stopped scores nothing.
func (r *Runner) Slap() SlapResult {
	reply := make(chan SlapResult, 1)
	select {
	case r.slaps <- reply:
		return <-reply
	case <-r.stopped:
		return SlapResult{Score: r.game.Score()}
	}
}

// SetReactionWindow changes the slap window used from the next jack on. A
// window already counting down keeps its remaining time.
func (r *Runner) SetReactionWindow(window time.Duration) {
	select {
	case r.windows <- window:
	case <-r.stopped:
	}
}

// Stop halts both cadences
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
	<-r.stopped
}

func (r *Runner) loop() {
	defer close(r.stopped)
	defer close(r.events)

	flip := time.NewTicker(r.flipInterval)
	defer flip.Stop()

	var reaction *time.Timer
	var reactionC <-chan time.Time
	disarm := func() {
		if reaction != nil {
			reaction.Stop()
			reaction = nil
			reactionC = nil
		}
	}
	defer disarm()

	for {
		select {
		case <-flip.C:
			result := r.game.AdvanceFlipClock()
			if result.Jack {
				disarm()
				reaction = time.NewTimer(result.Window)
				reactionC = reaction.C
			}
			r.events <- Event{Flip: &result}
			if result.GameOver {
				return
			}

		case <-reactionC:
			disarm()
			result := r.game.AdvanceReactionClock()
			if result.Missed {
				r.events <- Event{Timeout: &result}
				return
			}

		case reply := <-r.slaps:
			result := r.game.Slap()
			if result.Hit {
				// Cancel synchronously so a stale expiry cannot
				// fire after the slap already succeeded.
				disarm()
			}
			reply <- result

		case window := <-r.windows:
			r.game.SetReactionWindow(window)

		case <-r.quit:
			return
		}
	}
}
