package application

import "marketflow/internal/domain"

type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseError   Phase = "error"
)

// SyncState is the externally observable state of the list engine. Exactly
// one value is active at a time; Err is set only when Phase is PhaseError.
type SyncState struct {
	Phase Phase
	Err   string
}

// DetailState is the observable state of the detail engine. Detail and
// Assets are populated together on PhaseLoaded and never one without the
// other.
type DetailState struct {
	Phase  Phase
	Detail domain.ExchangeDetail
	Assets []domain.Asset
	Err    string
}
