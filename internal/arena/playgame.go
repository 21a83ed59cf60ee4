package arena

import (
	"context"

	"github.com/pkg/errors"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
)

const (
	gameResultDraw = iota
	gameResultPlayer1Wins
	gameResultPlayer2Wins
)

type gameResult struct {
	gameInfo gameInfo
	moves    MoveList
	comment  string
	result   int
}

func (a *Arena) playGame(
	ctx context.Context,
	engineA, engineB *engine.Engine,
	info gameInfo,
) (gameResult, error) {

	var logger = a.logger.With().Str("gameID", info.id.String()).Logger()
	logger.Debug().Int("game", info.gameNumber).Msg("started game")

	var s = game.NewSearchable(a.rules)
	for _, loc := range info.opening {
		var m, err = s.NewMove(loc)
		if err != nil {
			return gameResult{}, errors.Wrapf(err, "game %d opening", info.gameNumber)
		}
		s.Play(m, a.weights)
	}

	for {
		var lastMove = s.LastMove()
		if s.Done(lastMove, true) {
			return a.finishGame(s, info), nil
		}
		var player1 = s.PlayerToMove(lastMove)
		var eng = engineB
		if player1 == info.engineAIsPlayer1 {
			eng = engineA
		}
		var searchResult = eng.Search(ctx, engine.SearchParams{
			ID:         info.id,
			Searchable: s,
			LastMove:   lastMove,
			Weights:    a.weights,
			Limits: engine.Limits{
				MoveTime: a.config.TimeControl.MoveTime,
				Nodes:    a.config.TimeControl.Nodes,
			},
		})
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var bestMove = searchResult.Move
		if bestMove == nil {
			return gameResult{}, errors.Errorf("game %d: no move at ply %d", info.gameNumber, s.NumMoves())
		}
		if _, err := s.NewMove(bestMove.To); err != nil || bestMove.Player1 != player1 {
			return gameResult{}, errors.Errorf("game %d: bad move %v", info.gameNumber, bestMove)
		}
		s.Play(bestMove, a.weights)
	}
}

func (a *Arena) finishGame(s *game.Searchable, info gameInfo) gameResult {
	var res = gameResult{
		gameInfo: info,
		moves:    s.Board().Moves().Copy(),
	}
	if player1, ok := s.Winner(); ok {
		res.comment = "win"
		if player1 {
			res.result = gameResultPlayer1Wins
		} else {
			res.result = gameResultPlayer2Wins
		}
	} else {
		res.comment = "board full"
		res.result = gameResultDraw
	}
	return res
}
