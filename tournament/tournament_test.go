package tournament

import (
	"os"
	"testing"

	"tictactoe/agent"
	"tictactoe/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func TestRun(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	result := Run(agent.NewRandom(rng), agent.NewRandom(rng), 200)
	stats := result.Stats

	t.Run("accounts for every episode", func(t *testing.T) {
		require.Equal(t, 200, stats.Episodes)
		require.Equal(t, 200, stats.Wins1+stats.Wins2+stats.Draws)
		require.Equal(t, 200, stats.WinsX+stats.WinsO+stats.Draws)
		require.Len(t, stats.Plies, 200)
		require.Len(t, result.Records, 200)
	})

	t.Run("alternates marks between episodes", func(t *testing.T) {
		require.Equal(t, Agent1, result.Records[0].XPlayer)
		require.Equal(t, Agent2, result.Records[1].XPlayer)
		require.Equal(t, Agent1, result.Records[2].XPlayer)
	})

	t.Run("records stay within game bounds", func(t *testing.T) {
		for _, record := range result.Records {
			require.GreaterOrEqual(t, record.Plies, 5)
			require.LessOrEqual(t, record.Plies, 9)
			require.Contains(t, []string{"xwin", "owin", "draw"}, record.Result)
		}
	})
}

func TestSummary(t *testing.T) {
	t.Run("rates sum to one", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		result := Run(agent.NewRandom(rng), agent.NewRandom(rng), 100)
		summary := result.Stats.Summary()

		require.Equal(t, 100, summary.Episodes)
		require.InDelta(t, 1.0, summary.WinRate1+summary.WinRate2+summary.DrawRate, 1e-12)
		require.GreaterOrEqual(t, summary.MeanPlies, 5.0)
		require.LessOrEqual(t, summary.MeanPlies, 9.0)
		require.GreaterOrEqual(t, summary.MaxPlies, summary.MinPlies)
	})

	t.Run("empty run yields the zero summary", func(t *testing.T) {
		require.Equal(t, Summary{}, Stats{}.Summary())
	})
}

// Training on a shared table by self-play must converge to the
// optimal-play result: greedy agents on the trained table always draw.
func TestTrainedSelfPlayDraws(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training run in short mode")
	}

	rng := rand.New(rand.NewSource(17))
	table := game.BuildValueTable()

	learnOptions := []agent.Option{
		agent.WithExploreRate(0.2),
		agent.WithAlpha(0.5),
		agent.WithDecay(0.999995),
	}
	learner := agent.NewTD(table, rng, learnOptions...)
	mirror := agent.NewTD(table, rng, learnOptions...)
	Run(learner, mirror, 200000)

	greedy1 := agent.NewTD(table, rng, agent.WithExploreRate(0), agent.WithAlpha(0))
	greedy2 := agent.NewTD(table, rng, agent.WithExploreRate(0), agent.WithAlpha(0))
	result := Run(greedy1, greedy2, 100)

	require.Equal(t, 100, result.Stats.Draws,
		"greedy self-play on a trained table must always draw")
}
