package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GameSearch/internal/arena"
)

func newArenaCommand(flags *rootFlags) *cobra.Command {
	var (
		games        int
		concurrency  int
		openingMoves int
		moveTime     time.Duration
		nodes        int64
	)
	var cmd = &cobra.Command{
		Use:   "arena",
		Short: "Play the search options against the arena opponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg, logger, err = flags.setup(cmd)
			if err != nil {
				return err
			}
			var changed = cmd.Flags().Changed
			if changed("games") {
				cfg.Arena.Games = games
			}
			if changed("concurrency") {
				cfg.Arena.Concurrency = concurrency
			}
			if changed("movetime") {
				cfg.Arena.MoveTime = moveTime
			}
			if changed("nodes") {
				cfg.Arena.Nodes = nodes
			}
			rules, err := cfg.Rules()
			if err != nil {
				return err
			}
			weights, err := cfg.WeightsFor(rules)
			if err != nil {
				return err
			}
			a, err := arena.New(arena.Config{
				Games:        cfg.Arena.Games,
				Concurrency:  cfg.Arena.Concurrency,
				OpeningMoves: openingMoves,
				TimeControl: arena.TimeControl{
					MoveTime: cfg.Arena.MoveTime,
					Nodes:    cfg.Arena.Nodes,
				},
				EngineA: cfg.Search,
				EngineB: cfg.Arena.Opponent,
			}, rules, weights, logger)
			if err != nil {
				return err
			}
			stat, err := a.Run(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "Score: %v - %v - %v  [%.3f]\n", stat.Wins, stat.Losses, stat.Draws, stat.WinningFraction)
			printf(cmd, "Elo difference: %.1f, LOS: %.1f %%\n", stat.EloDifference, stat.LOS*100)
			return nil
		},
	}
	var f = cmd.Flags()
	f.IntVar(&games, "games", 0, "number of games")
	f.IntVar(&concurrency, "concurrency", 0, "games played at once")
	f.IntVar(&openingMoves, "opening-moves", 1, "random moves before the engines play")
	f.DurationVar(&moveTime, "movetime", 0, "time per move")
	f.Int64Var(&nodes, "nodes", 0, "moves considered per search")
	return cmd
}
