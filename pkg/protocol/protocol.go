// Package protocol drives an engine with line oriented text commands.
package protocol

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
	"github.com/ChizhovVadim/GameSearch/pkg/engine"
	"github.com/ChizhovVadim/GameSearch/pkg/game"
	"github.com/ChizhovVadim/GameSearch/pkg/games"
)

var (
	errThinking       = errors.New("search still run")
	errUnknownCommand = errors.New("command not found")
	errNothingToUndo  = errors.New("nothing to undo")
)

type Protocol struct {
	engine     *engine.Engine
	options    []Option
	searchable *game.Searchable
	weights    Weights
	configured map[string]Weights
	out        io.Writer
	logger     zerolog.Logger
	handle     *engine.Handle
}

func New(eng *engine.Engine, rules game.Rules, out io.Writer, logger zerolog.Logger) *Protocol {
	return &Protocol{
		engine:     eng,
		options:    DefaultOptions(),
		searchable: game.NewSearchable(rules),
		weights:    rules.DefaultWeights(),
		configured: make(map[string]Weights),
		out:        out,
		logger:     logger,
	}
}

// SetWeights replaces the evaluation weights of the current game.
// They are restored whenever the game command selects that game again.
func (p *Protocol) SetWeights(weights Weights) {
	p.weights = weights
	p.configured[p.searchable.Rules().Name()] = weights
}

func (p *Protocol) Searchable() *game.Searchable {
	return p.searchable
}

// Run processes commands from in until quit, end of input or ctx is done.
// A search still running at that point is stopped and its result reported.
func (p *Protocol) Run(ctx context.Context, in io.Reader) error {
	var commands = make(chan string)

	go func() {
		defer close(commands)
		readCommands(ctx, in, commands)
	}()

	for {
		var progress <-chan engine.SearchInfo
		if p.handle != nil {
			progress = p.handle.Progress()
		}
		select {
		case <-ctx.Done():
			p.stop()
			return nil
		case si, ok := <-progress:
			if ok {
				fmt.Fprintln(p.out, searchInfoString(si))
			} else {
				p.finishSearch()
			}
		case commandLine, ok := <-commands:
			if !ok {
				p.stop()
				return nil
			}
			if err := p.Handle(commandLine); err != nil {
				p.logger.Warn().Err(err).Str("command", commandLine).Msg("command failed")
				fmt.Fprintln(p.out, "error", err)
			}
		}
	}
}

func readCommands(ctx context.Context, in io.Reader, commands chan<- string) {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "quit" {
			return
		}
		if commandLine == "" {
			continue
		}
		select {
		case commands <- commandLine:
		case <-ctx.Done():
			return
		}
	}
}

// Handle executes one command. Only stop is accepted while a search runs.
func (p *Protocol) Handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if p.handle != nil {
		if commandName == "stop" {
			p.handle.Cancel()
			return nil
		}
		return errThinking
	}

	var h func(fields []string) error

	switch commandName {
	case "game":
		h = p.gameCommand
	case "newgame":
		h = p.newGameCommand
	case "move":
		h = p.moveCommand
	case "undo":
		h = p.undoCommand
	case "go":
		h = p.goCommand
	case "stop":
		h = func([]string) error { return nil }
	case "isready":
		h = p.isReadyCommand
	case "setoption":
		h = p.setOptionCommand
	case "options":
		h = p.optionsCommand
	case "show":
		h = p.showCommand
	}

	if h == nil {
		return errors.Wrap(errUnknownCommand, commandName)
	}

	return h(fields)
}

func (p *Protocol) gameCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("usage: game <name> [size]")
	}
	var size int
	if len(fields) > 1 {
		var err error
		if size, err = strconv.Atoi(fields[1]); err != nil {
			return errors.Wrap(err, "board size")
		}
	}
	var rules, err = games.New(fields[0], size)
	if err != nil {
		return err
	}
	p.searchable = game.NewSearchable(rules)
	if weights, ok := p.configured[rules.Name()]; ok {
		p.weights = weights
	} else {
		p.weights = rules.DefaultWeights()
	}
	return nil
}

func (p *Protocol) newGameCommand(fields []string) error {
	p.searchable = game.NewSearchable(p.searchable.Rules())
	return nil
}

func (p *Protocol) moveCommand(fields []string) error {
	if len(fields) != 2 {
		return errors.New("usage: move <row> <col>")
	}
	var row, err1 = strconv.Atoi(fields[0])
	var col, err2 = strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return errors.Errorf("bad move %v %v", fields[0], fields[1])
	}
	var m, err = p.searchable.NewMove(Location{Row: row, Col: col})
	if err != nil {
		return err
	}
	p.play(m)
	return nil
}

func (p *Protocol) undoCommand(fields []string) error {
	var m = p.searchable.LastMove()
	if m == nil {
		return errNothingToUndo
	}
	p.searchable.UndoInternalMove(m)
	return nil
}

func (p *Protocol) goCommand(fields []string) error {
	var limits, err = parseLimits(fields)
	if err != nil {
		return err
	}
	if p.searchable.Done(p.searchable.LastMove(), false) {
		return errors.New("game is over")
	}
	p.handle = p.engine.Start(context.Background(), engine.SearchParams{
		Searchable: p.searchable,
		LastMove:   p.searchable.LastMove(),
		Weights:    p.weights,
		Limits:     limits,
	})
	return nil
}

func (p *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(p.out, "readyok")
	return nil
}

func (p *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 || fields[0] != "name" || fields[2] != "value" {
		return errors.New("usage: setoption name <name> value <value>")
	}
	var name, value = fields[1], fields[3]
	for _, option := range p.options {
		if strings.EqualFold(option.Name(), name) {
			return p.engine.UpdateOptions(func(o *engine.SearchOptions) error {
				return option.Set(o, value)
			})
		}
	}
	return errors.Errorf("unhandled option %v", name)
}

func (p *Protocol) optionsCommand(fields []string) error {
	var options = p.engine.Options()
	for _, option := range p.options {
		fmt.Fprintln(p.out, option.Describe(&options))
	}
	return nil
}

func (p *Protocol) showCommand(fields []string) error {
	var b = p.searchable.Board()
	fmt.Fprint(p.out, b.String())
	fmt.Fprintf(p.out, "game %v moves %d key %016x\n",
		p.searchable.Rules().Name(), b.NumMoves(), uint64(b.Key()))
	if winner, ok := p.searchable.Winner(); ok {
		fmt.Fprintln(p.out, "winner", playerName(winner))
	} else {
		fmt.Fprintln(p.out, "to move", playerName(p.searchable.PlayerToMove(b.LastMove())))
	}
	return nil
}

// play makes m on the game board and reports the result when the game ends.
func (p *Protocol) play(m *Move) {
	if !p.searchable.Play(m, p.weights) {
		return
	}
	if winner, ok := p.searchable.Winner(); ok {
		fmt.Fprintln(p.out, "result", playerName(winner), "wins")
	} else {
		fmt.Fprintln(p.out, "result draw")
	}
}

func (p *Protocol) stop() {
	if p.handle == nil {
		return
	}
	p.handle.Cancel()
	for range p.handle.Progress() {
	}
	p.finishSearch()
}

// finishSearch reports the engine move and plays it.
func (p *Protocol) finishSearch() {
	var si = p.handle.Wait()
	p.handle = nil
	if si.Move == nil {
		fmt.Fprintln(p.out, "bestmove none")
		return
	}
	fmt.Fprintf(p.out, "bestmove %d %d\n", si.Move.To.Row, si.Move.To.Col)
	fmt.Fprintf(p.out, "score %d\n", si.Score)
	p.play(si.Move)
}

func searchInfoString(si engine.SearchInfo) string {
	return fmt.Sprintf("info strategy %v percent %d moves %d time %d",
		si.Strategy, si.PercentDone, si.MovesConsidered, si.Time.Milliseconds())
}

func parseLimits(args []string) (result engine.Limits, err error) {
	for i := 0; i+1 < len(args); i += 2 {
		var v int
		if v, err = strconv.Atoi(args[i+1]); err != nil {
			return result, errors.Wrapf(err, "go %v", args[i])
		}
		switch args[i] {
		case "movetime":
			result.MoveTime = time.Duration(v) * time.Millisecond
		case "nodes":
			result.Nodes = int64(v)
		default:
			return result, errors.Errorf("unknown limit %v", args[i])
		}
	}
	return result, nil
}

func playerName(player1 bool) string {
	if player1 {
		return "player1"
	}
	return "player2"
}
