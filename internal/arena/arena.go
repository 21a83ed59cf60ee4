// Package arena plays engine configurations against each other.
package arena

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
)

type TimeControl struct {
	MoveTime time.Duration
	Nodes    int64
}

type Config struct {
	Games       int
	Concurrency int
	// OpeningMoves random moves are played before the engines take over.
	// Both games of a pair share the opening with colours swapped.
	OpeningMoves int
	TimeControl  TimeControl
	EngineA      engine.SearchOptions
	EngineB      engine.SearchOptions
}

type Arena struct {
	config  Config
	rules   game.Rules
	weights Weights
	logger  zerolog.Logger
}

func New(config Config, rules game.Rules, weights Weights, logger zerolog.Logger) (*Arena, error) {
	if config.Concurrency < 1 {
		return nil, errors.Errorf("arena concurrency %d", config.Concurrency)
	}
	if config.TimeControl.MoveTime == 0 && config.TimeControl.Nodes == 0 {
		return nil, errors.New("arena needs a move time or a node limit")
	}
	if err := config.EngineA.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine A")
	}
	if err := config.EngineB.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine B")
	}
	return &Arena{
		config:  config,
		rules:   rules,
		weights: weights,
		logger:  logger,
	}, nil
}

// Run plays all games and returns the score of engine A against engine B.
func (a *Arena) Run(ctx context.Context) (Statistics, error) {
	a.logger.Info().
		Int("numCPU", runtime.NumCPU()).
		Int("concurrency", a.config.Concurrency).
		Int("games", a.config.Games).
		Str("game", a.rules.Name()).
		Str("engineA", a.config.EngineA.Strategy.String()).
		Str("engineB", a.config.EngineB.Strategy.String()).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stat Statistics

	g.Go(func() error {
		defer close(gameInfos)
		return a.generateOpenings(ctx, gameInfos)
	})

	g.Go(func() error {
		var err error
		stat, err = a.showResults(ctx, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	a.logger.Info().Err(err).Msg("arena finished")
	return stat, err
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = engine.NewEngine(a.config.EngineA, a.logger.With().Str("engine", "A").Logger())
	var engineB = engine.NewEngine(a.config.EngineB, a.logger.With().Str("engine", "B").Logger())
	for gameInfo := range gameInfos {
		var res, err = a.playGame(ctx, engineA, engineB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
