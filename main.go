package main

import (
	"flag"
	"os"

	"tictactoe/agent"
	"tictactoe/game"
	"tictactoe/tournament"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the run config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	table := game.BuildValueTable()
	log.Info().Msgf("total states: %d", len(table))

	learnOptions := []agent.Option{
		agent.WithExploreRate(cfg.ExploreRate),
		agent.WithAlpha(cfg.Alpha),
		agent.WithDecay(cfg.Decay),
	}

	// Phase 1: learn against the uniform-random baseline.
	learner := agent.NewTD(table, rng, learnOptions...)
	log.Info().Msgf("training %d episodes vs. random...", cfg.TrainEpisodes)
	tournament.Run(learner, agent.NewRandom(rng), cfg.TrainEpisodes)

	// Phase 2: self-play on the shared table; both sides improve one
	// policy.
	log.Info().Msgf("training %d self-play episodes...", cfg.SelfEpisodes)
	mirror := agent.NewTD(table, rng, learnOptions...)
	tournament.Run(learner, mirror, cfg.SelfEpisodes)

	// Evaluation: greedy and frozen (alpha zero disables backups).
	frozen := []agent.Option{agent.WithExploreRate(0), agent.WithAlpha(0)}

	log.Info().Msgf("evaluating %d episodes greedy vs. random...", cfg.EvalEpisodes)
	vsRandom := tournament.Run(agent.NewTD(table, rng, frozen...), agent.NewRandom(rng), cfg.EvalEpisodes)
	logSummary("greedy-vs-random", vsRandom.Stats.Summary())

	log.Info().Msgf("evaluating %d episodes greedy vs. greedy...", cfg.EvalEpisodes)
	vsSelf := tournament.Run(agent.NewTD(table, rng, frozen...), agent.NewTD(table, rng, frozen...), cfg.EvalEpisodes)
	logSummary("greedy-vs-greedy", vsSelf.Stats.Summary())

	if cfg.OutDir != "" {
		writeRecords(cfg.OutDir, vsRandom)
	}
}

func logSummary(name string, s tournament.Summary) {
	log.Info().
		Str("matchup", name).
		Float64("win_rate_1", s.WinRate1).
		Float64("win_rate_2", s.WinRate2).
		Float64("draw_rate", s.DrawRate).
		Float64("mean_plies", s.MeanPlies).
		Msg("evaluation summary")
}

func writeRecords(dir string, result tournament.Result) {
	writer, err := tournament.NewWriter(dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err := writer.WriteGames(result.Records); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteSummary(result.Stats.Summary()); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}
	log.Info().Msgf("wrote results to %s", writer.BaseDir())
}
