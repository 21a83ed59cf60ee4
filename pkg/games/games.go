// Package games looks up the built in rule sets by name.
package games

import (
	"github.com/pkg/errors"

	"github.com/ChizhovVadim/GameSearch/pkg/game"
	"github.com/ChizhovVadim/GameSearch/pkg/games/pente"
	"github.com/ChizhovVadim/GameSearch/pkg/games/tictactoe"
)

var Names = []string{tictactoe.Name, pente.Name}

// New returns the rules for name. Size is ignored by fixed size games
// and zero selects the default size.
func New(name string, size int) (game.Rules, error) {
	switch name {
	case tictactoe.Name:
		return tictactoe.Rules{}, nil
	case pente.Name:
		if size == 0 {
			size = pente.DefaultSize
		}
		var rules, err = pente.New(size)
		if err != nil {
			return nil, err
		}
		return rules, nil
	}
	return nil, errors.Errorf("unknown game %q", name)
}
