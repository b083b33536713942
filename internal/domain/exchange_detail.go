package domain

// ExchangeDetail carries the per-exchange metadata fetched on demand for a
// detail view. It is never cached locally. Absent fields stay nil rather
// than being coerced to zero values.
type ExchangeDetail struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Logo         *string       `json:"logo,omitempty"`
	Description  *string       `json:"description,omitempty"`
	MakerFee     *float64      `json:"maker_fee,omitempty"`
	TakerFee     *float64      `json:"taker_fee,omitempty"`
	DateLaunched *string       `json:"date_launched,omitempty"`
	URLs         *ExchangeURLs `json:"urls,omitempty"`
}

type ExchangeURLs struct {
	Website []string `json:"website,omitempty"`
}
