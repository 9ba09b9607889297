package transport

import (
	"net/http"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/gateway"
	"go.uber.org/zap"
)

// BlocksProxyHandler serves the upstream recent-blocks array unchanged.
type BlocksProxyHandler struct {
	source BlocksSource
	logger *zap.Logger
}

func NewBlocksProxyHandler(source BlocksSource, logger *zap.Logger) *BlocksProxyHandler {
	return &BlocksProxyHandler{source: source, logger: logger.Named("blocks_proxy")}
}

func (h *BlocksProxyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := h.source.RecentBlocksRaw(r.Context())
	if err != nil {
		if status, ok := gateway.StatusCode(err); ok {
			h.logger.Warn("upstream rejected recent blocks", zap.Int("status", status))
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "Upstream error", Status: status})
			return
		}
		h.logger.Error("recent blocks not fetched", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch upstream data"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Debug("response not written", zap.Error(err))
	}
}
