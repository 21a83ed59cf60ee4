package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ChizhovVadim/GameSearch/pkg/engine"
)

// Option binds a protocol option name to a SearchOptions field.
type Option interface {
	Name() string
	Describe(o *engine.SearchOptions) string
	Set(o *engine.SearchOptions, s string) error
}

type BoolOption struct {
	name  string
	field func(*engine.SearchOptions) *bool
}

func (opt *BoolOption) Name() string {
	return opt.name
}

func (opt *BoolOption) Describe(o *engine.SearchOptions) string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.name, "check", *opt.field(o))
}

func (opt *BoolOption) Set(o *engine.SearchOptions, s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Wrapf(err, "option %v", opt.name)
	}
	*opt.field(o) = v
	return nil
}

type IntOption struct {
	name  string
	min   int
	max   int
	field func(*engine.SearchOptions) *int
}

func (opt *IntOption) Name() string {
	return opt.name
}

func (opt *IntOption) Describe(o *engine.SearchOptions) string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.name, "spin", *opt.field(o), opt.min, opt.max)
}

func (opt *IntOption) Set(o *engine.SearchOptions, s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "option %v", opt.name)
	}
	if v < opt.min || v > opt.max {
		return errors.Errorf("option %v: %d out of range [%d, %d]", opt.name, v, opt.min, opt.max)
	}
	*opt.field(o) = v
	return nil
}

type FloatOption struct {
	name  string
	field func(*engine.SearchOptions) *float64
}

func (opt *FloatOption) Name() string {
	return opt.name
}

func (opt *FloatOption) Describe(o *engine.SearchOptions) string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.name, "string", *opt.field(o))
}

func (opt *FloatOption) Set(o *engine.SearchOptions, s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Wrapf(err, "option %v", opt.name)
	}
	*opt.field(o) = v
	return nil
}

type StrategyOption struct {
	name  string
	field func(*engine.SearchOptions) *engine.StrategyType
}

func (opt *StrategyOption) Name() string {
	return opt.name
}

func (opt *StrategyOption) Describe(o *engine.SearchOptions) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v default %v", opt.name, "combo", *opt.field(o))
	for _, t := range engine.StrategyTypes {
		sb.WriteString(" var ")
		sb.WriteString(t.String())
	}
	return sb.String()
}

func (opt *StrategyOption) Set(o *engine.SearchOptions, s string) error {
	var t, err = engine.ParseStrategyType(s)
	if err != nil {
		return err
	}
	*opt.field(o) = t
	return nil
}

// DefaultOptions exposes every search option.
func DefaultOptions() []Option {
	return []Option{
		&StrategyOption{"Strategy", func(o *engine.SearchOptions) *engine.StrategyType { return &o.Strategy }},
		&StrategyOption{"MtdInner", func(o *engine.SearchOptions) *engine.StrategyType { return &o.MtdInner }},
		&IntOption{"LookAhead", 1, 64, func(o *engine.SearchOptions) *int { return &o.Brute.LookAhead }},
		&BoolOption{"AlphaBeta", func(o *engine.SearchOptions) *bool { return &o.Brute.AlphaBeta }},
		&BoolOption{"Quiescence", func(o *engine.SearchOptions) *bool { return &o.Brute.Quiescence }},
		&IntOption{"MaxQuiescentDepth", 0, 64, func(o *engine.SearchOptions) *int { return &o.Brute.MaxQuiescentDepth }},
		&IntOption{"PercentageBestMoves", 1, 100, func(o *engine.SearchOptions) *int { return &o.BestMoves.PercentageBestMoves }},
		&IntOption{"MinBestMoves", 0, 1000, func(o *engine.SearchOptions) *int { return &o.BestMoves.MinBestMoves }},
		&IntOption{"MaxSimulations", 1, 10000000, func(o *engine.SearchOptions) *int { return &o.MonteCarlo.MaxSimulations }},
		&FloatOption{"ExploreExploitRatio", func(o *engine.SearchOptions) *float64 { return &o.MonteCarlo.ExploreExploitRatio }},
		&IntOption{"RandomLookAhead", 0, 1000, func(o *engine.SearchOptions) *int { return &o.MonteCarlo.RandomLookAhead }},
		&IntOption{"PercentLessThanBestThresh", 0, 100, func(o *engine.SearchOptions) *int { return &o.MonteCarlo.PercentLessThanBestThresh }},
		&IntOption{"TransTableBits", 4, 30, func(o *engine.SearchOptions) *int { return &o.TransTableBits }},
	}
}
