package application

import (
	"context"
	"sync"

	"marketflow/internal/domain"
)

// fakeRepo scripts repository behavior per test. Pages are keyed by start
// offset; errByStart injects a failure for a specific page request.
type fakeRepo struct {
	mu         sync.Mutex
	cached     []domain.Exchange
	saved      [][]domain.Exchange
	pages      map[int][]domain.Exchange
	errByStart map[int]error
	fetchCalls int
	block      chan struct{}

	detail    domain.ExchangeDetail
	detailErr error
	assets    []domain.Asset
	assetsErr error
}

func (f *fakeRepo) LoadCachedExchanges() ([]domain.Exchange, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cached == nil {
		return nil, false
	}
	out := make([]domain.Exchange, len(f.cached))
	copy(out, f.cached)
	return out, true
}

func (f *fakeRepo) SaveExchangesToCache(exchanges []domain.Exchange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]domain.Exchange, len(exchanges))
	copy(cp, exchanges)
	f.saved = append(f.saved, cp)
}

func (f *fakeRepo) FetchExchanges(_ context.Context, start, _ int) ([]domain.Exchange, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if err := f.errByStart[start]; err != nil {
		return nil, err
	}
	return f.pages[start], nil
}

func (f *fakeRepo) FetchExchangeDetails(context.Context, int) (domain.ExchangeDetail, error) {
	if f.detailErr != nil {
		return domain.ExchangeDetail{}, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeRepo) FetchExchangeAssets(context.Context, int) ([]domain.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	return f.assets, nil
}

func (f *fakeRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func (f *fakeRepo) lastSaved() []domain.Exchange {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saved) == 0 {
		return nil
	}
	return f.saved[len(f.saved)-1]
}

// syncRecorder collects list-engine transitions in delivery order.
type syncRecorder struct {
	mu     sync.Mutex
	states []SyncState
}

func (r *syncRecorder) record(st SyncState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
}

func (r *syncRecorder) snapshot() []SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SyncState, len(r.states))
	copy(out, r.states)
	return out
}

func (r *syncRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

type detailRecorder struct {
	mu     sync.Mutex
	states []DetailState
}

func (r *detailRecorder) record(st DetailState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, st)
}

func (r *detailRecorder) snapshot() []DetailState {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]DetailState, len(r.states))
	copy(out, r.states)
	return out
}

func (r *detailRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

// fakeGateway and fakeStore back the repository delegation tests.
type fakeGateway struct {
	exchanges []domain.Exchange
	detail    domain.ExchangeDetail
	assets    []domain.Asset
	coins     []domain.Coin
	err       error

	lastStart, lastLimit, lastID int
}

func (g *fakeGateway) FetchExchanges(_ context.Context, start, limit int) ([]domain.Exchange, error) {
	g.lastStart, g.lastLimit = start, limit
	return g.exchanges, g.err
}

func (g *fakeGateway) FetchExchangeDetails(_ context.Context, id int) (domain.ExchangeDetail, error) {
	g.lastID = id
	return g.detail, g.err
}

func (g *fakeGateway) FetchExchangeAssets(_ context.Context, id int) ([]domain.Asset, error) {
	g.lastID = id
	return g.assets, g.err
}

func (g *fakeGateway) FetchCoins(_ context.Context, limit int) ([]domain.Coin, error) {
	g.lastLimit = limit
	return g.coins, g.err
}

type fakeStore struct {
	exchanges []domain.Exchange
	saves     int
	clears    int
}

func (s *fakeStore) Save(exchanges []domain.Exchange) {
	s.exchanges = exchanges
	s.saves++
}

func (s *fakeStore) Load() ([]domain.Exchange, bool) {
	if s.exchanges == nil {
		return nil, false
	}
	return s.exchanges, true
}

func (s *fakeStore) Clear() {
	s.exchanges = nil
	s.clears++
}
