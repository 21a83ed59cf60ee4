package arena

import (
	"context"

	"github.com/google/uuid"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
)

const maxOpeningAttempts = 100

type gameInfo struct {
	id               uuid.UUID
	opening          []Location
	engineAIsPlayer1 bool
	gameNumber       int
}

func (a *Arena) generateOpenings(
	ctx context.Context,
	gameInfos chan<- gameInfo,
) error {

	for i := 0; 2*i < a.config.Games; i++ {
		var opening = a.randomOpening()
		for j, engineAIsPlayer1 := range []bool{true, false} {
			var gameNumber = 1 + 2*i + j
			if gameNumber > a.config.Games {
				break
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- gameInfo{
				id:               uuid.New(),
				opening:          opening,
				engineAIsPlayer1: engineAIsPlayer1,
				gameNumber:       gameNumber,
			}:
			}
		}
	}

	return nil
}

// randomOpening plays random candidate moves that do not end the game.
func (a *Arena) randomOpening() []Location {
	for attempt := 0; attempt < maxOpeningAttempts; attempt++ {
		var s = game.NewSearchable(a.rules)
		var opening []Location
		var lastMove *Move
		for len(opening) < a.config.OpeningMoves {
			var m = s.GenerateMoves(lastMove, a.weights).RandomMove()
			if m == nil {
				break
			}
			if s.Play(m, a.weights) {
				break
			}
			opening = append(opening, m.To)
			lastMove = m
		}
		if len(opening) == a.config.OpeningMoves {
			return opening
		}
	}
	return nil
}
