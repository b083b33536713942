package provider

import (
	"context"
	"fmt"

	"marketflow/internal/application"
	"marketflow/internal/domain"
)

// Ensure Fake implements application.MarketDataGateway.
var _ application.MarketDataGateway = (*Fake)(nil)

// Fake serves a canned exchange universe for local runs without an API key.
type Fake struct {
	total int
}

func NewFake(total int) *Fake { return &Fake{total: total} }

func (f *Fake) FetchExchanges(_ context.Context, start, limit int) ([]domain.Exchange, error) {
	var out []domain.Exchange
	for id := start; id < start+limit && id <= f.total; id++ {
		out = append(out, domain.Exchange{
			ID:   id,
			Name: fmt.Sprintf("Exchange %d", id),
			Slug: fmt.Sprintf("exchange-%d", id),
		})
	}
	return out, nil
}

func (f *Fake) FetchExchangeDetails(_ context.Context, id int) (domain.ExchangeDetail, error) {
	maker, taker := 0.001, 0.002
	return domain.ExchangeDetail{
		ID:       id,
		Name:     fmt.Sprintf("Exchange %d", id),
		MakerFee: &maker,
		TakerFee: &taker,
	}, nil
}

func (f *Fake) FetchExchangeAssets(_ context.Context, id int) ([]domain.Asset, error) {
	price := 50000.0
	return []domain.Asset{
		{Currency: domain.Currency{Name: "Bitcoin", Symbol: "BTC", PriceUSD: &price}},
	}, nil
}

func (f *Fake) FetchCoins(_ context.Context, limit int) ([]domain.Coin, error) {
	var out []domain.Coin
	for id := 1; id <= limit && id <= f.total; id++ {
		out = append(out, domain.Coin{
			ID:       id,
			Name:     fmt.Sprintf("Coin %d", id),
			Symbol:   fmt.Sprintf("C%d", id),
			Slug:     fmt.Sprintf("coin-%d", id),
			IsActive: 1,
		})
	}
	return out, nil
}
