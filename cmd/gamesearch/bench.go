package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
)

type benchResult struct {
	strategy engine.StrategyType
	info     engine.SearchInfo
}

func newBenchCommand(flags *rootFlags) *cobra.Command {
	var (
		moves    string
		moveTime time.Duration
		nodes    int64
	)
	var cmd = &cobra.Command{
		Use:   "bench",
		Short: "Search one position with every strategy and compare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg, logger, err = flags.setup(cmd)
			if err != nil {
				return err
			}
			locations, err := parseMoves(moves)
			if err != nil {
				return err
			}
			s, weights, err := newGame(cfg, locations)
			if err != nil {
				return err
			}
			var limits = engine.Limits{MoveTime: moveTime, Nodes: nodes}
			results, err := runBench(cmd.Context(), s, weights, cfg.Search, limits, logger)
			printBench(cmd.OutOrStdout(), results)
			return err
		},
	}
	var f = cmd.Flags()
	f.StringVar(&moves, "moves", "", `moves played before the search, e.g. "1 1,0 0"`)
	f.DurationVar(&moveTime, "movetime", 0, "time limit per strategy")
	f.Int64Var(&nodes, "nodes", 0, "node limit per strategy")
	return cmd
}

// runBench searches copies of s with every strategy at once.
// The exact strategies must agree on the score unless a limit cut them short.
func runBench(ctx context.Context, s *game.Searchable, weights common.Weights,
	options engine.SearchOptions, limits engine.Limits, logger zerolog.Logger) ([]benchResult, error) {

	var results = make([]benchResult, len(engine.StrategyTypes))
	g, ctx := errgroup.WithContext(ctx)
	for i, strategy := range engine.StrategyTypes {
		var i, strategy = i, strategy
		var options = options
		options.Strategy = strategy
		var searchable = s.Copy().(*game.Searchable)
		g.Go(func() error {
			var eng = engine.NewEngine(options, logger)
			var info = eng.Search(ctx, engine.SearchParams{
				Searchable: searchable,
				LastMove:   searchable.LastMove(),
				Weights:    weights,
				Limits:     limits,
			})
			if info.Move == nil {
				return errors.Errorf("%v found no move", strategy)
			}
			results[i] = benchResult{strategy: strategy, info: info}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if options.BestMoves.PercentageBestMoves < 100 {
		return results, nil
	}
	var exact = lo.Filter(results, func(r benchResult, _ int) bool {
		return r.strategy != engine.UCT && !r.info.Aborted
	})
	var scores = lo.Uniq(lo.Map(exact, func(r benchResult, _ int) int {
		return r.info.Score
	}))
	if len(exact) == len(engine.StrategyTypes)-1 && len(scores) > 1 {
		return results, errors.Errorf("exact strategies disagree: %v", scores)
	}
	return results, nil
}

func printBench(w io.Writer, results []benchResult) {
	var tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tmove\tscore\tmoves\ttime\taborted")
	for _, r := range results {
		fmt.Fprintf(tw, "%v\t%v\t%d\t%d\t%v\t%v\n",
			r.strategy, r.info.Move, r.info.Score, r.info.MovesConsidered,
			r.info.Time.Round(time.Microsecond), r.info.Aborted)
	}
	tw.Flush()
}
