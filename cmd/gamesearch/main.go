package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ChizhovVadim/GameSearch/internal/config"
	"github.com/ChizhovVadim/GameSearch/internal/logging"
	"github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

type rootFlags struct {
	configPath string
	game       string
	size       int
	logLevel   string
	pretty     bool
}

func main() {
	var ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags = &rootFlags{}
	var root = &cobra.Command{
		Use:          "gamesearch",
		Short:        "Two player game search engine",
		SilenceUsage: true,
	}
	var pf = root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "yaml config file")
	pf.StringVar(&flags.game, "game", "", "game to play (tictactoe, pente)")
	pf.IntVar(&flags.size, "size", 0, "board size for games that support it")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.BoolVar(&flags.pretty, "pretty", false, "human readable log output")

	root.AddCommand(
		newPlayCommand(flags),
		newArenaCommand(flags),
		newBenchCommand(flags),
	)
	return root
}

// setup loads the config file and applies the command line overrides.
func (f *rootFlags) setup(cmd *cobra.Command) (config.Config, zerolog.Logger, error) {
	var cfg, err = config.Load(f.configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	var changed = cmd.Flags().Changed
	if changed("game") {
		cfg.Game = f.game
	}
	if changed("size") {
		cfg.Size = f.size
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("pretty") {
		cfg.Log.Pretty = f.pretty
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	logger.Info().
		Str("versionName", versionName).
		Str("buildDate", buildDate).
		Str("gitRevision", gitRevision).
		Str("runtimeVersion", runtime.Version()).
		Int("numCPU", runtime.NumCPU()).
		Str("command", cmd.Name()).
		Msg("gamesearch")
	return cfg, logger, nil
}

// newGame builds the configured game with moves already played.
func newGame(cfg config.Config, moves []common.Location) (*game.Searchable, common.Weights, error) {
	var rules, err = cfg.Rules()
	if err != nil {
		return nil, nil, err
	}
	weights, err := cfg.WeightsFor(rules)
	if err != nil {
		return nil, nil, err
	}
	var s = game.NewSearchable(rules)
	for _, loc := range moves {
		var m, err = s.NewMove(loc)
		if err != nil {
			return nil, nil, err
		}
		s.Play(m, weights)
	}
	return s, weights, nil
}

// parseMoves reads moves written as "row col" pairs separated by commas.
func parseMoves(s string) ([]common.Location, error) {
	var result []common.Location
	for _, item := range strings.Split(s, ",") {
		var fields = strings.Fields(item)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.Errorf("bad move %q", item)
		}
		var row, err1 = strconv.Atoi(fields[0])
		var col, err2 = strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, errors.Errorf("bad move %q", item)
		}
		result = append(result, common.Location{Row: row, Col: col})
	}
	return result, nil
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
