package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	. "github.com/ChizhovVadim/GameSearch/pkg/common"
)

type SearchParams struct {
	// ID names the search session; a new one is generated when empty.
	ID         uuid.UUID
	Searchable Searchable
	LastMove   *Move
	Weights    Weights
	Limits     Limits
	// Tree receives the explored nodes when not nil.
	Tree     *TreeNode
	Progress func(SearchInfo)
}

type SearchInfo struct {
	ID              uuid.UUID
	Strategy        StrategyType
	Move            *Move
	Score           int
	MovesConsidered int64
	PercentDone     int
	Time            time.Duration
	Aborted         bool
}

// Engine runs one strategy per search on a caller owned Searchable.
// Searches on separate Searchable copies may run concurrently.
type Engine struct {
	logger  zerolog.Logger
	mu      sync.Mutex
	options SearchOptions
}

func NewEngine(options SearchOptions, logger zerolog.Logger) *Engine {
	return &Engine{
		options: options,
		logger:  logger,
	}
}

func (e *Engine) Options() SearchOptions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.options
}

func (e *Engine) SetOptions(options SearchOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options = options
	return nil
}

// UpdateOptions applies fn to a copy of the options and keeps the result if it is valid.
func (e *Engine) UpdateOptions(fn func(*SearchOptions) error) error {
	var options = e.Options()
	if err := fn(&options); err != nil {
		return err
	}
	return e.SetOptions(options)
}

// Search blocks until the strategy finishes, the limits are hit or ctx is done.
// Cancellation is not an error: the best move found so far is returned.
func (e *Engine) Search(ctx context.Context, params SearchParams) SearchInfo {
	var start = time.Now()
	var options = e.Options()
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}
	var logger = e.logger.With().Str("search", params.ID.String()).Logger()

	var strategy, err = NewStrategy(params.Searchable, params.Weights, &options, logger)
	if err != nil {
		logger.Error().Err(err).Msg("create strategy")
		return SearchInfo{ID: params.ID, Strategy: options.Strategy}
	}
	if limiter, ok := strategy.(nodeLimiter); ok {
		limiter.setMaxNodes(params.Limits.Nodes)
	}

	ctx, tm := newSimpleTimeManager(ctx, start, params.Limits)
	defer tm.Close()

	logger.Debug().
		Str("strategy", options.Strategy.String()).
		Int("lookAhead", options.Brute.LookAhead).
		Str("lastMove", params.LastMove.String()).
		Msg("search started")

	var info = func() SearchInfo {
		return SearchInfo{
			ID:              params.ID,
			Strategy:        options.Strategy,
			MovesConsidered: strategy.NumMovesConsidered(),
			PercentDone:     strategy.PercentDone(),
			Time:            tm.Elapsed(),
		}
	}

	var finished = make(chan struct{})
	var aborted bool
	var wg = &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		var ticker = time.NewTicker(progressInterval(options))
		defer ticker.Stop()
		for {
			select {
			case <-finished:
				return
			case <-ctx.Done():
				aborted = true
				strategy.Abort()
				<-finished
				return
			case <-ticker.C:
				if params.Progress != nil {
					params.Progress(info())
				}
			}
		}
	}()

	var move = strategy.Search(params.LastMove, FullWindow(), params.Tree)
	close(finished)
	wg.Wait()

	var result = info()
	result.Move = move
	result.Aborted = aborted
	if move != nil {
		result.Score = move.InheritedValue
	}
	logger.Debug().
		Str("move", move.String()).
		Int("score", result.Score).
		Int64("moves", result.MovesConsidered).
		Dur("time", result.Time).
		Bool("aborted", aborted).
		Msg("search finished")
	return result
}

func progressInterval(options SearchOptions) time.Duration {
	if options.ProgressInterval <= 0 {
		return 100 * time.Millisecond
	}
	return options.ProgressInterval
}

// Handle is a running search started by Engine.Start.
type Handle struct {
	ID       uuid.UUID
	progress chan SearchInfo
	done     chan struct{}
	result   SearchInfo
	cancel   context.CancelFunc
}

// Start runs the search in its own goroutine.
// Progress is pushed to Handle.Progress without blocking the search.
func (e *Engine) Start(ctx context.Context, params SearchParams) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}
	var h = &Handle{
		ID:       params.ID,
		progress: make(chan SearchInfo, 3),
		done:     make(chan struct{}),
		cancel:   cancel,
	}
	var progress = params.Progress
	params.Progress = func(si SearchInfo) {
		if progress != nil {
			progress(si)
		}
		select {
		case h.progress <- si:
		default:
		}
	}
	go func() {
		defer cancel()
		h.result = e.Search(ctx, params)
		close(h.progress)
		close(h.done)
	}()
	return h
}

// Progress is closed when the search finishes.
func (h *Handle) Progress() <-chan SearchInfo { return h.progress }

func (h *Handle) Done() <-chan struct{} { return h.done }

func (h *Handle) Cancel() { h.cancel() }

func (h *Handle) Wait() SearchInfo {
	<-h.done
	return h.result
}
