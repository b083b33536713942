package domain

import "fmt"

const logoBaseURL = "https://s2.coinmarketcap.com/static/img/exchanges/64x64"

// Exchange is one entry of the remote exchange ranking. Instances are
// immutable values; a later fetch of the same ID replaces the prior one.
type Exchange struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Slug                string  `json:"slug"`
	FirstHistoricalData *string `json:"first_historical_data,omitempty"`
}

// LogoURL points at the static logo CDN for this exchange.
func (e Exchange) LogoURL() string {
	return fmt.Sprintf("%s/%d.png", logoBaseURL, e.ID)
}
