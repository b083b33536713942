package application

import (
	"context"

	"marketflow/internal/domain"
)

// MarketDataGateway issues typed requests against the remote market-data API.
// Implementations are stateless across calls.
type MarketDataGateway interface {
	FetchExchanges(ctx context.Context, start, limit int) ([]domain.Exchange, error)
	FetchExchangeDetails(ctx context.Context, id int) (domain.ExchangeDetail, error)
	FetchExchangeAssets(ctx context.Context, id int) ([]domain.Asset, error)
	FetchCoins(ctx context.Context, limit int) ([]domain.Coin, error)
}

// SnapshotStore persists the last-known exchange collection wholesale.
// Operations never fail past their boundary: load reports absence, save and
// clear swallow and log their own errors.
type SnapshotStore interface {
	Save(exchanges []domain.Exchange)
	Load() ([]domain.Exchange, bool)
	Clear()
}

// ExchangeRepository is the single data-access seam the engines depend on.
type ExchangeRepository interface {
	LoadCachedExchanges() ([]domain.Exchange, bool)
	SaveExchangesToCache(exchanges []domain.Exchange)
	FetchExchanges(ctx context.Context, start, limit int) ([]domain.Exchange, error)
	FetchExchangeDetails(ctx context.Context, id int) (domain.ExchangeDetail, error)
	FetchExchangeAssets(ctx context.Context, id int) ([]domain.Asset, error)
}
