package domain

// Asset is one holding reported for an exchange. Assets belong to exactly
// one assets fetch and are not merged across fetches.
type Asset struct {
	Currency Currency `json:"currency"`
}

type Currency struct {
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	PriceUSD *float64 `json:"price_usd,omitempty"`
}
