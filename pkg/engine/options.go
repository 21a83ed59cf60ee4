package engine

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

type StrategyType int

const (
	MiniMax StrategyType = iota
	NegaMax
	NegaMaxMemory
	NegaScout
	NegaScoutMemory
	MTD
	UCT
)

var strategyNames = [...]string{
	"minimax",
	"negamax",
	"negamax_w_memory",
	"negascout",
	"negascout_w_memory",
	"mtd",
	"uct",
}

var StrategyTypes = []StrategyType{MiniMax, NegaMax, NegaMaxMemory, NegaScout, NegaScoutMemory, MTD, UCT}

func (t StrategyType) String() string {
	if t < 0 || int(t) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[t]
}

func ParseStrategyType(s string) (StrategyType, error) {
	for i, name := range strategyNames {
		if strings.EqualFold(name, s) {
			return StrategyType(i), nil
		}
	}
	return 0, errors.Errorf("unknown search strategy %q", s)
}

// Memory reports whether the strategy uses a transposition table.
func (t StrategyType) Memory() bool {
	return t == NegaMaxMemory || t == NegaScoutMemory || t == MTD
}

func (t StrategyType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *StrategyType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	var v, err = ParseStrategyType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type BruteSearchOptions struct {
	LookAhead         int  `yaml:"look_ahead"`
	AlphaBeta         bool `yaml:"alpha_beta"`
	Quiescence        bool `yaml:"quiescence"`
	MaxQuiescentDepth int  `yaml:"max_quiescent_depth"`
}

type BestMovesOptions struct {
	PercentageBestMoves int `yaml:"percentage_best_moves"`
	MinBestMoves        int `yaml:"min_best_moves"`
}

type MonteCarloOptions struct {
	MaxSimulations            int     `yaml:"max_simulations"`
	ExploreExploitRatio       float64 `yaml:"explore_exploit_ratio"`
	RandomLookAhead           int     `yaml:"random_look_ahead"`
	PercentLessThanBestThresh int     `yaml:"percent_less_than_best_thresh"`
}

// SearchOptions are fixed for the duration of a search and shared read-only.
type SearchOptions struct {
	Strategy         StrategyType       `yaml:"strategy"`
	Brute            BruteSearchOptions `yaml:"brute"`
	BestMoves        BestMovesOptions   `yaml:"best_moves"`
	MonteCarlo       MonteCarloOptions  `yaml:"monte_carlo"`
	MtdInner         StrategyType       `yaml:"mtd_inner"`
	TransTableBits   int                `yaml:"trans_table_bits"`
	ProgressInterval time.Duration      `yaml:"progress_interval"`
}

func NewOptions() SearchOptions {
	return SearchOptions{
		Strategy: NegaScoutMemory,
		Brute: BruteSearchOptions{
			LookAhead:         4,
			AlphaBeta:         true,
			Quiescence:        false,
			MaxQuiescentDepth: MaxQuiescentDepth,
		},
		BestMoves: BestMovesOptions{
			PercentageBestMoves: 100,
			MinBestMoves:        10,
		},
		MonteCarlo: MonteCarloOptions{
			MaxSimulations:            10000,
			ExploreExploitRatio:       1.0,
			RandomLookAhead:           20,
			PercentLessThanBestThresh: 0,
		},
		MtdInner:         NegaScoutMemory,
		TransTableBits:   20,
		ProgressInterval: 100 * time.Millisecond,
	}
}

func (o *SearchOptions) Validate() error {
	if o.Strategy < MiniMax || o.Strategy > UCT {
		return errors.Errorf("bad strategy %d", o.Strategy)
	}
	if o.Brute.LookAhead < 1 || o.Brute.LookAhead > 64 {
		return errors.Errorf("look ahead %d out of range [1, 64]", o.Brute.LookAhead)
	}
	if o.Brute.MaxQuiescentDepth < 0 || o.Brute.MaxQuiescentDepth > 64 {
		return errors.Errorf("max quiescent depth %d out of range [0, 64]", o.Brute.MaxQuiescentDepth)
	}
	if o.BestMoves.PercentageBestMoves < 1 || o.BestMoves.PercentageBestMoves > 100 {
		return errors.Errorf("percentage of best moves %d out of range [1, 100]", o.BestMoves.PercentageBestMoves)
	}
	if o.BestMoves.MinBestMoves < 0 {
		return errors.New("min best moves must not be negative")
	}
	if o.MtdInner != NegaScoutMemory && o.MtdInner != NegaMaxMemory {
		return errors.Errorf("mtd needs a memory strategy, got %v", o.MtdInner)
	}
	if o.MonteCarlo.MaxSimulations < 1 {
		return errors.New("max simulations must be positive")
	}
	if o.MonteCarlo.ExploreExploitRatio < 0 {
		return errors.New("explore exploit ratio must not be negative")
	}
	if o.MonteCarlo.PercentLessThanBestThresh < 0 || o.MonteCarlo.PercentLessThanBestThresh > 100 {
		return errors.Errorf("percent less than best %d out of range [0, 100]", o.MonteCarlo.PercentLessThanBestThresh)
	}
	if o.TransTableBits < 4 || o.TransTableBits > 30 {
		return errors.Errorf("transposition table bits %d out of range [4, 30]", o.TransTableBits)
	}
	return nil
}
