package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"marketflow/internal/domain"
)

// ExchangeDetailEngine joins the two independent fetches a detail view
// needs: the exchange metadata and its asset list. A single Loaded
// transition carries both; if either fetch fails the whole operation fails.
type ExchangeDetailEngine struct {
	repo ExchangeRepository
	log  *zap.Logger

	mu   sync.Mutex
	subs []func(DetailState)
}

func NewExchangeDetailEngine(repo ExchangeRepository, log *zap.Logger) *ExchangeDetailEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExchangeDetailEngine{repo: repo, log: log}
}

// Subscribe registers a listener for state transitions. Nothing is emitted
// before Start.
func (e *ExchangeDetailEngine) Subscribe(fn func(DetailState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Start emits Loading, issues both fetches concurrently and emits exactly
// one terminal transition once both have completed. Completion order of the
// underlying requests is irrelevant; only the join matters.
func (e *ExchangeDetailEngine) Start(ctx context.Context, id int) {
	e.mu.Lock()
	e.emitLocked(DetailState{Phase: PhaseLoading})
	e.mu.Unlock()

	go func() {
		var (
			detail domain.ExchangeDetail
			assets []domain.Asset
			derr   error
			aerr   error
			wg     sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			detail, derr = e.repo.FetchExchangeDetails(ctx, id)
		}()
		go func() {
			defer wg.Done()
			assets, aerr = e.repo.FetchExchangeAssets(ctx, id)
		}()
		wg.Wait()

		e.mu.Lock()
		defer e.mu.Unlock()
		if derr != nil {
			e.log.Warn("detail fetch failed", zap.Int("exchange_id", id), zap.Error(derr))
			e.emitLocked(DetailState{Phase: PhaseError, Err: derr.Error()})
			return
		}
		if aerr != nil {
			e.log.Warn("assets fetch failed", zap.Int("exchange_id", id), zap.Error(aerr))
			e.emitLocked(DetailState{Phase: PhaseError, Err: aerr.Error()})
			return
		}
		e.emitLocked(DetailState{Phase: PhaseLoaded, Detail: detail, Assets: assets})
	}()
}

func (e *ExchangeDetailEngine) emitLocked(st DetailState) {
	for _, fn := range e.subs {
		fn(st)
	}
}
