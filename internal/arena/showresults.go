package arena

import (
	"context"
	"math"
)

type Statistics struct {
	Wins            int
	Losses          int
	Draws           int
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

func (a *Arena) showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
) (Statistics, error) {
	var games = 0
	var wins, losses, draws int
	var stat Statistics
	for gameResult := range gameResults {
		games++
		a.logger.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("gameID", gameResult.gameInfo.id.String()).
			Str("result", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("moves", len(gameResult.moves)).
			Msg("finished game")
		if gameResult.result == gameResultDraw {
			draws++
		} else if gameResult.result == gameResultPlayer1Wins && gameResult.gameInfo.engineAIsPlayer1 ||
			gameResult.result == gameResultPlayer2Wins && !gameResult.gameInfo.engineAIsPlayer1 {
			wins++
		} else {
			losses++
		}
		stat = computeStat(wins, losses, draws)
		a.logger.Info().
			Int("wins", wins).
			Int("losses", losses).
			Int("draws", draws).
			Float64("score", stat.WinningFraction).
			Float64("elo", stat.EloDifference).
			Float64("los", stat.LOS*100).
			Msg("score")
	}
	return stat, ctx.Err()
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) Statistics {
	var stat = Statistics{Wins: wins, Losses: losses, Draws: draws, LOS: 0.5}
	var games = wins + losses + draws
	if games == 0 {
		return stat
	}
	stat.WinningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	stat.EloDifference = -math.Log(1/stat.WinningFraction-1) * 400 / math.Ln10
	if wins+losses != 0 {
		stat.LOS = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return stat
}

func gameResultString(v int) string {
	switch v {
	case gameResultPlayer1Wins:
		return "1-0"
	case gameResultPlayer2Wins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
