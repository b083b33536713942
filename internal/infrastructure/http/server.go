package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"marketflow/internal/application"
	"marketflow/internal/domain"
	"marketflow/internal/infrastructure/imagecache"
	"marketflow/internal/infrastructure/logx"
)

// Server is the read-only presentation facade over the sync engines. It
// subscribes to the list engine like any other consumer and keeps only the
// most recently delivered state.
type Server struct {
	baseCtx   context.Context
	list      *application.ExchangeListEngine
	repo      application.ExchangeRepository
	gateway   application.MarketDataGateway
	images    *imagecache.Cache
	coinLimit int

	mu        sync.Mutex
	listState application.SyncState
}

func NewServer(ctx context.Context, list *application.ExchangeListEngine, repo application.ExchangeRepository, gateway application.MarketDataGateway, images *imagecache.Cache, coinLimit int) *Server {
	s := &Server{
		baseCtx:   ctx,
		list:      list,
		repo:      repo,
		gateway:   gateway,
		images:    images,
		coinLimit: coinLimit,
	}
	list.Subscribe(func(st application.SyncState) {
		s.mu.Lock()
		s.listState = st
		s.mu.Unlock()
	})
	return s
}

type exchangeListResponse struct {
	State     application.Phase `json:"state"`
	Error     string            `json:"error,omitempty"`
	Exchanges []domain.Exchange `json:"exchanges"`
	HasMore   bool              `json:"has_more"`
}

func (s *Server) GetExchanges(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st := s.listState
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, exchangeListResponse{
		State:     st.Phase,
		Error:     st.Err,
		Exchanges: s.list.Exchanges(),
		HasMore:   s.list.HasMore(),
	})
}

// LoadMoreExchanges triggers the next page. The fetch runs against the
// server's base context so it survives this request's lifetime.
func (s *Server) LoadMoreExchanges(w http.ResponseWriter, _ *http.Request) {
	s.list.LoadMore(s.baseCtx)
	w.WriteHeader(http.StatusAccepted)
}

// RefreshExchanges re-runs the whole sync cycle; this is the retry action.
func (s *Server) RefreshExchanges(w http.ResponseWriter, _ *http.Request) {
	s.list.Start(s.baseCtx)
	w.WriteHeader(http.StatusAccepted)
}

type exchangeDetailResponse struct {
	Detail domain.ExchangeDetail `json:"detail"`
	Assets []domain.Asset        `json:"assets"`
}

// GetExchangeDetail runs one detail join and answers with the joined payload.
func (s *Server) GetExchangeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid exchange id")
		return
	}

	eng := application.NewExchangeDetailEngine(s.repo, logx.L())
	states := make(chan application.DetailState, 4)
	eng.Subscribe(func(st application.DetailState) {
		select {
		case states <- st:
		default:
		}
	})
	eng.Start(r.Context(), id)

	for {
		select {
		case <-r.Context().Done():
			writeError(w, http.StatusGatewayTimeout, "detail fetch timed out")
			return
		case st := <-states:
			switch st.Phase {
			case application.PhaseLoaded:
				writeJSON(w, http.StatusOK, exchangeDetailResponse{Detail: st.Detail, Assets: st.Assets})
				return
			case application.PhaseError:
				writeError(w, http.StatusBadGateway, st.Err)
				return
			}
		}
	}
}

func (s *Server) GetExchangeLogo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid exchange id")
		return
	}
	data, err := s.images.Load(r.Context(), domain.Exchange{ID: id}.LogoURL())
	if err != nil {
		writeError(w, http.StatusBadGateway, "logo unavailable")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

func (s *Server) GetCoins(w http.ResponseWriter, r *http.Request) {
	limit := s.coinLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(w, "invalid limit")
			return
		}
		limit = n
	}
	coins, err := s.gateway.FetchCoins(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"coins": coins})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusBadRequest, msg)
}
