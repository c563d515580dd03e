package tournament

import (
	"fmt"

	"tictactoe/engine"
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// Side labels used in stats and records. Agent 1 is the first argument
// to Run and plays X in the first episode.
const (
	Agent1 = "agent1"
	Agent2 = "agent2"
)

// Stats aggregates results across a run, per agent and per mark.
type Stats struct {
	Episodes int
	Wins1    int
	Wins2    int
	WinsX    int
	WinsO    int
	Draws    int
	Plies    []float64 // final ply count per episode
}

// GameRecord is one episode's line in the games CSV.
type GameRecord struct {
	Episode int
	XPlayer string // which agent held the X mark
	Result  string
	Plies   int
}

// Result is everything a run produces.
type Result struct {
	Stats   Stats
	Records []GameRecord
}

// Run plays the given number of episodes between two agents,
// alternating which one holds the X mark each episode. Every episode
// both agents receive NewGame before play and EndGame with their mark
// and binary outcome after it: the winner gets 1, the loser 0, and a
// draw scores 0 for both.
func Run(agent1, agent2 engine.Agent, episodes int) Result {
	stats := Stats{Plies: make([]float64, 0, episodes)}
	records := make([]GameRecord, 0, episodes)

	x, o := agent1, agent2
	for i := 0; i < episodes; i++ {
		x.NewGame()
		o.NewGame()

		outcome, final := engine.New(x, o).Run()

		xLabel := Agent1
		if x == agent2 {
			xLabel = Agent2
		}

		switch outcome {
		case game.Draw:
			x.EndGame(game.X, 0)
			o.EndGame(game.O, 0)
			stats.Draws++
		case game.XWins:
			x.EndGame(game.X, 1)
			o.EndGame(game.O, 0)
			stats.WinsX++
			if x == agent1 {
				stats.Wins1++
			} else {
				stats.Wins2++
			}
		case game.OWins:
			x.EndGame(game.X, 0)
			o.EndGame(game.O, 1)
			stats.WinsO++
			if o == agent1 {
				stats.Wins1++
			} else {
				stats.Wins2++
			}
		default:
			// Only the engine or classifier being broken gets here.
			panic(fmt.Sprintf("episode %d ended in impossible state %s", i+1, outcome))
		}

		stats.Episodes++
		stats.Plies = append(stats.Plies, float64(final.Marks()))
		records = append(records, GameRecord{
			Episode: i + 1,
			XPlayer: xLabel,
			Result:  outcome.String(),
			Plies:   final.Marks(),
		})

		if (i+1)%1000 == 0 {
			log.Info().Msgf("completed episode %d of %d: agent1=%d agent2=%d draws=%d",
				i+1, episodes, stats.Wins1, stats.Wins2, stats.Draws)
		}

		// Switch sides for the next episode
		x, o = o, x
	}

	log.Info().Msgf("completed %d episodes: agent1=%d agent2=%d x=%d o=%d draws=%d",
		stats.Episodes, stats.Wins1, stats.Wins2, stats.WinsX, stats.WinsO, stats.Draws)
	return Result{Stats: stats, Records: records}
}
