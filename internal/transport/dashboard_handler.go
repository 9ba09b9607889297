package transport

import (
	"errors"
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/gateway"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mempool"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/mining"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// DashboardHandler exposes the session state and user intents as JSON.
type DashboardHandler struct {
	dashboard Dashboard
	logger    *zap.Logger
}

func NewDashboardHandler(d Dashboard, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: d, logger: logger.Named("dashboard_handler")}
}

// Register mounts the intent routes under prefix.
func (h *DashboardHandler) Register(r *mux.Router, prefix string) {
	api := r.PathPrefix(prefix).Subrouter()

	api.HandleFunc("/state", h.state).Methods(http.MethodGet)
	api.HandleFunc("/refresh", h.refresh).Methods(http.MethodPost)
	api.HandleFunc("/mempool/more", h.loadMore).Methods(http.MethodPost)
	api.HandleFunc("/blocks/search", h.search).Methods(http.MethodGet)

	api.HandleFunc("/selection", h.selectAll).Methods(http.MethodPut)
	api.HandleFunc("/selection", h.clearSelection).Methods(http.MethodDelete)
	api.HandleFunc("/selection/{txid}", h.selectTx).Methods(http.MethodPut)
	api.HandleFunc("/selection/{txid}", h.deselectTx).Methods(http.MethodDelete)
	api.HandleFunc("/selection/{txid}/toggle", h.toggleTx).Methods(http.MethodPost)

	api.HandleFunc("/mining/start", h.startMining).Methods(http.MethodPost)
	api.HandleFunc("/mining/stop", h.stopMining).Methods(http.MethodPost)

	api.Use(mux.CORSMethodMiddleware(api))
}

func (h *DashboardHandler) state(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(h.dashboard.View()))
}

// refresh always answers with the state: component failures are part of it.
func (h *DashboardHandler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.Refresh(r.Context()); err != nil {
		h.logger.Debug("manual refresh incomplete", zap.Error(err))
	}
	h.state(w, r)
}

func (h *DashboardHandler) loadMore(w http.ResponseWriter, r *http.Request) {
	if _, err := h.dashboard.LoadMore(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	h.state(w, r)
}

func (h *DashboardHandler) search(w http.ResponseWriter, r *http.Request) {
	block, err := h.dashboard.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (h *DashboardHandler) selectAll(w http.ResponseWriter, r *http.Request) {
	h.dashboard.SelectAll()
	h.state(w, r)
}

func (h *DashboardHandler) clearSelection(w http.ResponseWriter, r *http.Request) {
	h.dashboard.ClearSelection()
	h.state(w, r)
}

func (h *DashboardHandler) selectTx(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.Select(mux.Vars(r)["txid"]); err != nil {
		h.fail(w, err)
		return
	}
	h.state(w, r)
}

func (h *DashboardHandler) deselectTx(w http.ResponseWriter, r *http.Request) {
	h.dashboard.Deselect(mux.Vars(r)["txid"])
	h.state(w, r)
}

func (h *DashboardHandler) toggleTx(w http.ResponseWriter, r *http.Request) {
	if _, err := h.dashboard.Toggle(mux.Vars(r)["txid"]); err != nil {
		h.fail(w, err)
		return
	}
	h.state(w, r)
}

func (h *DashboardHandler) startMining(w http.ResponseWriter, _ *http.Request) {
	session, err := h.dashboard.StartMining()
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, newSessionResponse(*session))
}

func (h *DashboardHandler) stopMining(w http.ResponseWriter, r *http.Request) {
	if err := h.dashboard.StopMining(); err != nil {
		h.fail(w, err)
		return
	}
	h.state(w, r)
}

func (h *DashboardHandler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chainstate.ErrBlockNotFound),
		errors.Is(err, dashboard.ErrUnknownTransaction):
		return http.StatusNotFound
	case errors.Is(err, chainstate.ErrEmptyQuery),
		errors.Is(err, mining.ErrNoSelection),
		errors.Is(err, mining.ErrInvalidTxID):
		return http.StatusBadRequest
	case errors.Is(err, mempool.ErrNoMorePages),
		errors.Is(err, mining.ErrAlreadyRunning),
		errors.Is(err, mining.ErrNotRunning):
		return http.StatusConflict
	}
	var fe *gateway.FetchError
	if errors.As(err, &fe) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
