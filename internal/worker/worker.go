package worker

import (
	"context"
	"time"

	"github.com/it23631960/pearl-logistics-admin/internal/logger"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"go.uber.org/zap"
)

// EnrichService runs aggregation passes
type EnrichService interface {
	LoadEnrichedOrders(ctx context.Context) ([]models.EnrichedOrder, error)
}

// BoardRefresher periodically re-runs the aggregation pass so the board
// stays warm between screen loads. Every run is an independent pass, the
// board's sequence guard keeps slow results from clobbering younger ones.
type BoardRefresher struct {
	svc      EnrichService
	interval time.Duration
}

// NewBoardRefresher creates new board refresher
func NewBoardRefresher(svc EnrichService, interval time.Duration) *BoardRefresher {
	return &BoardRefresher{svc: svc, interval: interval}
}

// Run refreshes the board until the context is done. A zero or negative
// interval disables refreshing.
func (br *BoardRefresher) Run(ctx context.Context) {
	if br.interval <= 0 {
		return
	}

	ticker := time.NewTicker(br.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("board refresher is done")
			return
		case <-ticker.C:
			if _, err := br.svc.LoadEnrichedOrders(ctx); err != nil {
				logger.Log.Error("board refresh failed", zap.Error(err))
			}
		}
	}
}
