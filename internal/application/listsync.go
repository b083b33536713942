package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"marketflow/internal/domain"
)

const (
	firstPageStart  = 1
	defaultPageSize = 50
)

// ExchangeListEngine orchestrates cache-first display, background refresh
// and page-by-page pagination of the exchange list.
//
// All state transitions happen under one mutex and are delivered to
// subscribers synchronously, in emission order, while the lock is held.
// That is the serialization guarantee that keeps the state machine
// race-free even though page fetches run on their own goroutines.
type ExchangeListEngine struct {
	repo     ExchangeRepository
	log      *zap.Logger
	pageSize int
	onSelect func(domain.Exchange)

	mu        sync.Mutex
	subs      []func(SyncState)
	exchanges []domain.Exchange
	cursor    int
	hasMore   bool
	fetching  bool
}

type ListOption func(*ExchangeListEngine)

func WithPageSize(n int) ListOption {
	return func(e *ExchangeListEngine) { e.pageSize = n }
}

// WithSelectHandler installs the callback invoked when a subscriber reports
// an exchange selection. The engine never owns navigation itself.
func WithSelectHandler(fn func(domain.Exchange)) ListOption {
	return func(e *ExchangeListEngine) { e.onSelect = fn }
}

func NewExchangeListEngine(repo ExchangeRepository, log *zap.Logger, opts ...ListOption) *ExchangeListEngine {
	e := &ExchangeListEngine{
		repo:     repo,
		log:      log,
		pageSize: defaultPageSize,
		cursor:   firstPageStart,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

// Subscribe registers a listener for state transitions. Nothing is emitted
// until Start is called; subscribers never observe a default value.
func (e *ExchangeListEngine) Subscribe(fn func(SyncState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Exchanges returns a copy of the currently displayed list.
func (e *ExchangeListEngine) Exchanges() []domain.Exchange {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Exchange, len(e.exchanges))
	copy(out, e.exchanges)
	return out
}

func (e *ExchangeListEngine) HasMore() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasMore
}

// Start begins a sync cycle: a non-empty cache is adopted and shown
// immediately, then the first page is refreshed from the network in the
// background. Calling Start again acts as a retry from scratch.
func (e *ExchangeListEngine) Start(ctx context.Context) {
	e.mu.Lock()
	if cached, ok := e.repo.LoadCachedExchanges(); ok && len(cached) > 0 {
		e.exchanges = cached
		e.emitLocked(SyncState{Phase: PhaseLoaded})
	} else {
		e.emitLocked(SyncState{Phase: PhaseLoading})
	}
	e.cursor = firstPageStart
	e.hasMore = true
	e.fetching = false
	e.mu.Unlock()

	go e.refresh(ctx)
}

func (e *ExchangeListEngine) refresh(ctx context.Context) {
	fresh, err := e.repo.FetchExchanges(ctx, firstPageStart, e.pageSize)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		if len(e.exchanges) == 0 {
			e.emitLocked(SyncState{Phase: PhaseError, Err: err.Error()})
			return
		}
		// Stale-but-present data wins over an error screen.
		e.log.Warn("list refresh failed, keeping cached data", zap.Error(err))
		return
	}
	e.exchanges = fresh
	e.repo.SaveExchangesToCache(fresh)
	e.hasMore = len(fresh) == e.pageSize
	e.emitLocked(SyncState{Phase: PhaseLoaded})
}

// LoadMore requests the next page. It is a no-op while a page request is in
// flight or once the remote collection is exhausted. Pagination failures are
// silent: a partial list is still useful.
func (e *ExchangeListEngine) LoadMore(ctx context.Context) {
	e.mu.Lock()
	if e.fetching || !e.hasMore {
		e.mu.Unlock()
		return
	}
	e.fetching = true
	e.cursor += e.pageSize
	offset := e.cursor
	e.mu.Unlock()

	go func() {
		batch, err := e.repo.FetchExchanges(ctx, offset, e.pageSize)

		e.mu.Lock()
		defer e.mu.Unlock()
		e.fetching = false
		if err != nil {
			e.log.Warn("pagination fetch failed", zap.Int("start", offset), zap.Error(err))
			e.emitLocked(SyncState{Phase: PhaseLoaded})
			return
		}
		if len(batch) == 0 {
			e.hasMore = false
			e.emitLocked(SyncState{Phase: PhaseLoaded})
			return
		}
		e.exchanges = append(e.exchanges, batch...)
		e.repo.SaveExchangesToCache(e.exchanges)
		if len(batch) < e.pageSize {
			e.hasMore = false
		}
		e.emitLocked(SyncState{Phase: PhaseLoaded})
	}()
}

// SelectExchange reports a selection outward through the installed handler.
func (e *ExchangeListEngine) SelectExchange(id int) {
	e.mu.Lock()
	var selected *domain.Exchange
	for i := range e.exchanges {
		if e.exchanges[i].ID == id {
			ex := e.exchanges[i]
			selected = &ex
			break
		}
	}
	fn := e.onSelect
	e.mu.Unlock()

	if selected != nil && fn != nil {
		fn(*selected)
	}
}

func (e *ExchangeListEngine) emitLocked(st SyncState) {
	for _, fn := range e.subs {
		fn(st)
	}
}
