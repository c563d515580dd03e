package agent

import (
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move and never learns. It is
// the baseline training opponent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (a *Random) NewGame() {}

func (a *Random) Move(_ game.Board, children []game.Board) game.Board {
	return children[a.rng.Intn(len(children))]
}

func (a *Random) EndGame(game.Cell, float64) {}
