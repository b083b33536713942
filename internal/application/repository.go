package application

import (
	"context"

	"marketflow/internal/domain"
)

// ExchangeRepo unifies the remote gateway and the local snapshot store
// behind the ExchangeRepository contract. It owns no state of its own; the
// only decision it embodies is which source backs which operation.
type ExchangeRepo struct {
	gateway MarketDataGateway
	store   SnapshotStore
}

var _ ExchangeRepository = (*ExchangeRepo)(nil)

func NewExchangeRepo(gateway MarketDataGateway, store SnapshotStore) *ExchangeRepo {
	return &ExchangeRepo{gateway: gateway, store: store}
}

func (r *ExchangeRepo) LoadCachedExchanges() ([]domain.Exchange, bool) {
	return r.store.Load()
}

func (r *ExchangeRepo) SaveExchangesToCache(exchanges []domain.Exchange) {
	r.store.Save(exchanges)
}

func (r *ExchangeRepo) FetchExchanges(ctx context.Context, start, limit int) ([]domain.Exchange, error) {
	return r.gateway.FetchExchanges(ctx, start, limit)
}

func (r *ExchangeRepo) FetchExchangeDetails(ctx context.Context, id int) (domain.ExchangeDetail, error) {
	return r.gateway.FetchExchangeDetails(ctx, id)
}

func (r *ExchangeRepo) FetchExchangeAssets(ctx context.Context, id int) ([]domain.Asset, error) {
	return r.gateway.FetchExchangeAssets(ctx, id)
}
