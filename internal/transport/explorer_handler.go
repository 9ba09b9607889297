// Package transport exposes the dashboard over HTTP and gRPC.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	tip TipSource
}

// NewExplorerHandler returns an ExplorerHandler reporting the tip known to tip.
func NewExplorerHandler(tip TipSource) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{tip: tip}
}

// Health reports server health. The description names the latest block once one is loaded.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	description := "waiting for first block"
	if block := h.tip.Latest(); block != nil {
		description = fmt.Sprintf("tip %d %s", block.Height, block.ID)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: description,
	}, nil
}
