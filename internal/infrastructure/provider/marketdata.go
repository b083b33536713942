package provider

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"marketflow/internal/application"
	"marketflow/internal/domain"
	"marketflow/internal/infrastructure/httpx"
)

const (
	exchangeMapPath    = "/v1/exchange/map"
	exchangeInfoPath   = "/v1/exchange/info"
	exchangeAssetsPath = "/v1/exchange/assets"
	coinMapPath        = "/v1/cryptocurrency/map"
)

// MarketDataAPI talks to the CoinMarketCap-style market-data API. It is
// stateless across calls; every method issues one request and classifies
// the outcome through the httpx layer.
type MarketDataAPI struct {
	BaseURL string
	Client  *httpx.Client
}

var _ application.MarketDataGateway = (*MarketDataAPI)(nil)

// apiStatus is the status block of every response envelope.
type apiStatus struct {
	Timestamp    string  `json:"timestamp"`
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
	Elapsed      int     `json:"elapsed"`
	CreditCount  int     `json:"credit_count"`
	Notice       *string `json:"notice"`
}

type exchangeMapResp struct {
	Data   []domain.Exchange `json:"data"`
	Status apiStatus         `json:"status"`
}

// The info endpoint keys the detail by the string form of the id, not as a
// bare object.
type exchangeInfoResp struct {
	Data   map[string]domain.ExchangeDetail `json:"data"`
	Status apiStatus                        `json:"status"`
}

type exchangeAssetsResp struct {
	Data   []domain.Asset `json:"data"`
	Status apiStatus      `json:"status"`
}

type coinMapResp struct {
	Data   []domain.Coin `json:"data"`
	Status apiStatus     `json:"status"`
}

func (a *MarketDataAPI) FetchExchanges(ctx context.Context, start, limit int) ([]domain.Exchange, error) {
	u, err := a.buildURL(exchangeMapPath, url.Values{
		"start": {strconv.Itoa(start)},
		"limit": {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, err
	}
	var resp exchangeMapResp
	if err := a.Client.GetJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *MarketDataAPI) FetchExchangeDetails(ctx context.Context, id int) (domain.ExchangeDetail, error) {
	u, err := a.buildURL(exchangeInfoPath, url.Values{"id": {strconv.Itoa(id)}})
	if err != nil {
		return domain.ExchangeDetail{}, err
	}
	var resp exchangeInfoResp
	if err := a.Client.GetJSON(ctx, u, &resp); err != nil {
		return domain.ExchangeDetail{}, err
	}
	detail, ok := resp.Data[strconv.Itoa(id)]
	if !ok {
		return domain.ExchangeDetail{}, &httpx.CustomError{Message: "exchange details not found in payload"}
	}
	return detail, nil
}

func (a *MarketDataAPI) FetchExchangeAssets(ctx context.Context, id int) ([]domain.Asset, error) {
	u, err := a.buildURL(exchangeAssetsPath, url.Values{"id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}
	var resp exchangeAssetsResp
	if err := a.Client.GetJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *MarketDataAPI) FetchCoins(ctx context.Context, limit int) ([]domain.Coin, error) {
	u, err := a.buildURL(coinMapPath, url.Values{"limit": {strconv.Itoa(limit)}})
	if err != nil {
		return nil, err
	}
	var resp coinMapResp
	if err := a.Client.GetJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (a *MarketDataAPI) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", httpx.ErrInvalidURL, err)
	}
	u.Path = path
	u.RawQuery = query.Encode()
	return u.String(), nil
}
