package agent

import (
	"fmt"

	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Hyperparameter defaults for TD agents.
const (
	DefaultExploreRate = 0.1
	DefaultAlpha       = 0.5
	DefaultDecay       = 0.99999
)

type Option func(*TD)

// WithExploreRate sets the probability of playing a uniformly random
// legal move instead of the greedy one.
func WithExploreRate(rate float64) Option {
	return func(a *TD) {
		a.exploreRate = rate
	}
}

// WithAlpha sets the initial learning rate. Zero freezes the table,
// which turns a trained agent into a pure evaluator.
func WithAlpha(alpha float64) Option {
	return func(a *TD) {
		a.alpha = alpha
	}
}

// WithDecay sets the multiplicative shrinkage applied to the learning
// rate after every backup.
func WithDecay(decay float64) Option {
	return func(a *TD) {
		a.decay = decay
	}
}

// TD learns board values by temporal-difference backups during play.
//
// The agent owns its table reference: construct two agents with the
// same ValueTable to train a single shared policy by self-play. Updates
// then interleave in move order, which is safe because the engine runs
// agents strictly sequentially.
type TD struct {
	table       game.ValueTable
	rng         *rand.Rand
	exploreRate float64
	alpha       float64 // current learning rate; decays across the agent's lifetime
	decay       float64
	lastMove    *game.Board // nil until the first decision of an episode
}

// NewTD builds a learning agent over table, drawing all randomness from
// rng so a fixed seed reproduces a training run exactly.
func NewTD(table game.ValueTable, rng *rand.Rand, options ...Option) *TD {
	a := &TD{
		table:       table,
		rng:         rng,
		exploreRate: DefaultExploreRate,
		alpha:       DefaultAlpha,
		decay:       DefaultDecay,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// NewGame clears the pending move. The learning rate is not reset: it
// keeps decaying across episodes so early games carry more weight.
func (a *TD) NewGame() {
	a.lastMove = nil
}

// Move chooses among children. With probability exploreRate it plays a
// uniformly random child and performs no backup: exploratory moves are
// kept out of the value function on purpose, even though that drops the
// pending signal for the previous greedy move. Otherwise it plays the
// highest-valued child for the side to move, breaking ties uniformly at
// random, and first backs up the previous move toward the chosen
// child's current value.
func (a *TD) Move(board game.Board, children []game.Board) game.Board {
	if a.rng.Float64() < a.exploreRate {
		choice := children[a.rng.Intn(len(children))]
		a.lastMove = &choice
		return choice
	}

	mark := mover(board)

	// Shuffle a copy before the linear scan so ties don't fall to the
	// generator's insertion order.
	candidates := append([]game.Board(nil), children...)
	a.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	best := candidates[0]
	bestValue := a.table[best].For(mark)
	for _, child := range candidates[1:] {
		if value := a.table[child].For(mark); value > bestValue {
			best, bestValue = child, value
		}
	}

	// TD(0) bootstrap: the chosen child's value, read before any
	// update, is the backup target for the previous move.
	if a.lastMove != nil {
		a.backup(mark, bestValue)
	}
	a.lastMove = &best
	return best
}

// EndGame backs up the final move toward the literal outcome, 1 for a
// win and 0 otherwise. An agent that never moved has nothing to update.
func (a *TD) EndGame(mark game.Cell, outcome float64) {
	if a.lastMove == nil {
		return
	}
	a.backup(mark, outcome)
}

func (a *TD) backup(mark game.Cell, target float64) {
	values := a.table[*a.lastMove]
	current := values.For(mark)
	values.Set(mark, current+a.alpha*(target-current))
	a.alpha *= a.decay
}

// Alpha returns the current learning rate.
func (a *TD) Alpha() float64 {
	return a.alpha
}

func mover(board game.Board) game.Cell {
	switch state := game.Classify(board); state {
	case game.XToMove:
		return game.X
	case game.OToMove:
		return game.O
	default:
		panic(fmt.Sprintf("asked to move on a %s board:\n%s", state, board))
	}
}
