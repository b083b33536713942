package domain

type Coin struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Symbol              string    `json:"symbol"`
	Slug                string    `json:"slug"`
	IsActive            int       `json:"is_active"`
	Rank                *int      `json:"rank,omitempty"`
	FirstHistoricalData *string   `json:"first_historical_data,omitempty"`
	LastHistoricalData  *string   `json:"last_historical_data,omitempty"`
	Platform            *Platform `json:"platform,omitempty"`
}

type Platform struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Slug         string `json:"slug"`
	TokenAddress string `json:"token_address"`
}
