package service

import (
	"context"

	"github.com/it23631960/pearl-logistics-admin/internal/logger"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"go.uber.org/zap"
)

// StatusClient issues status mutations against the store backend
type StatusClient interface {
	// UpdateOrderStatus sets the status of a single order
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
}

// StatusService mutates a single order's status and keeps the board
// consistent with the backend's confirmed state
type StatusService struct {
	client StatusClient
	board  *OrderBoard
}

// NewStatusService creates new StatusService instance
func NewStatusService(client StatusClient, board *OrderBoard) *StatusService {
	return &StatusService{
		client: client,
		board:  board,
	}
}

// SetOrderStatus issues one status update to the backend and, only after a
// successful response, patches the matching order on the board and the open
// detail view. Values outside the closed status set are rejected before any
// request goes out. Failures leave local state untouched, no retry. A
// confirmed update for an order the board no longer holds still succeeds.
func (ss *StatusService) SetOrderStatus(ctx context.Context, orderID int64, status string) error {
	if !models.IsValidOrderStatus(status) {
		return models.ErrInvalidOrderStatus
	}

	if err := ss.client.UpdateOrderStatus(ctx, orderID, status); err != nil {
		logger.Log.Error("status update failed",
			zap.Int64("order", orderID),
			zap.String("status", status),
			zap.Error(err))
		return err
	}

	if err := ss.board.SetStatus(orderID, status); err != nil {
		// the backend is the authority and has confirmed; a board miss
		// only means the collection is stale, the next aggregation pass
		// picks the new status up
		logger.Log.Warn("updated order is not on the board", zap.Int64("order", orderID))
		return nil
	}

	logger.Log.Debug("order status updated",
		zap.Int64("order", orderID),
		zap.String("status", status))

	return nil
}
