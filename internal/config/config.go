// Package config loads the YAML configuration shared by the commands.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
	"github.com/ChizhovVadim/GameSearch/pkg/games"
)

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Arena struct {
	Games       int           `yaml:"games"`
	Concurrency int           `yaml:"concurrency"`
	MoveTime    time.Duration `yaml:"move_time"`
	Nodes       int64         `yaml:"nodes"`
	// Opponent is engine B; engine A uses Search.
	Opponent engine.SearchOptions `yaml:"opponent"`
}

type Config struct {
	Game    string               `yaml:"game"`
	Size    int                  `yaml:"size"`
	Weights []float64            `yaml:"weights"`
	Search  engine.SearchOptions `yaml:"search"`
	Arena   Arena                `yaml:"arena"`
	Log     Log                  `yaml:"log"`
}

func Default() Config {
	var opponent = engine.NewOptions()
	opponent.Strategy = engine.NegaMaxMemory
	return Config{
		Game:   "tictactoe",
		Search: engine.NewOptions(),
		Arena: Arena{
			Games:       20,
			Concurrency: 4,
			Nodes:       20000,
			Opponent:    opponent,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path gives the defaults.
func Load(path string) (Config, error) {
	var config = Default()
	if path == "" {
		return config, nil
	}
	var data, err = os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	if err = yaml.UnmarshalStrict(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %v", path)
	}
	if err = config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %v", path)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return errors.Wrap(err, "search")
	}
	if err := c.Arena.Opponent.Validate(); err != nil {
		return errors.Wrap(err, "arena opponent")
	}
	if c.Arena.Games < 0 || c.Arena.Concurrency < 1 {
		return errors.Errorf("arena games %d concurrency %d", c.Arena.Games, c.Arena.Concurrency)
	}
	var rules, err = c.Rules()
	if err != nil {
		return err
	}
	_, err = c.WeightsFor(rules)
	return err
}

func (c *Config) Rules() (game.Rules, error) {
	return games.New(c.Game, c.Size)
}

// WeightsFor applies the configured weight values to the defaults of rules.
func (c *Config) WeightsFor(rules game.Rules) (common.Weights, error) {
	var weights = rules.DefaultWeights()
	if len(c.Weights) == 0 {
		return weights, nil
	}
	return weights.WithValues(c.Weights)
}
