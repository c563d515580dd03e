package engine

import (
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// Agent plays one side of a game. Any implementation of the triad may
// act as a player.
//
// Move must return one of the offered children. The engine does not
// verify this: an agent that fabricates a board off the legal successor
// list produces an illegal trajectory, which is the caller's bug rather
// than a condition the engine recovers from.
type Agent interface {
	// NewGame announces the start of an episode.
	NewGame()
	// Move asks for the agent's choice among the legal successors of
	// board. The agent always moves as the player the board says is to
	// move.
	Move(board game.Board, children []game.Board) game.Board
	// EndGame delivers the episode's outcome for the given mark: 1 for
	// a win, 0 for a loss or draw.
	EndGame(mark game.Cell, outcome float64)
}

// Engine runs a single game between two agents.
type Engine struct {
	X, O Agent
}

func New(x, o Agent) *Engine {
	return &Engine{X: x, O: o}
}

// Run plays from the empty board until a terminal classification and
// returns it together with the final board. Agents are called strictly
// in turn; a game always ends within nine plies.
func (e *Engine) Run() (game.StateCategory, game.Board) {
	board := game.Board{}
	state := game.Classify(board)

	for state == game.XToMove || state == game.OToMove {
		children := game.Children(board)
		if state == game.XToMove {
			board = e.X.Move(board, children)
		} else {
			board = e.O.Move(board, children)
		}
		log.Trace().Msgf("ply %d:\n%s", board.Marks(), board)
		state = game.Classify(board)
	}

	log.Debug().Msgf("game over after %d plies: %s", board.Marks(), state)
	return state, board
}
