package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/it23631960/pearl-logistics-admin/internal/logger"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// default cap on concurrent catalog lookups within one aggregation pass
const defaultEnrichLimit = 8

// BackendClient is the store backend surface the aggregator consumes
type BackendClient interface {
	// ListOrders returns the full order collection
	ListOrders(ctx context.Context) ([]models.Order, error)
	// ListUsers returns the full customer collection
	ListUsers(ctx context.Context) ([]models.Customer, error)
	// GetItem returns catalog details for a single item
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
}

// EnrichService assembles the enriched order collection: the base orders
// joined with their customers and per-line catalog details
type EnrichService struct {
	client BackendClient
	board  *OrderBoard
	// sem caps concurrent catalog lookups across the whole pass, not per
	// fan-out level, so outstanding connections never exceed the limit
	sem *semaphore.Weighted
}

// NewEnrichService creates new EnrichService instance. A non-positive
// limit falls back to the default concurrency cap.
func NewEnrichService(client BackendClient, board *OrderBoard, limit int) *EnrichService {
	if limit <= 0 {
		limit = defaultEnrichLimit
	}
	return &EnrichService{
		client: client,
		board:  board,
		sem:    semaphore.NewWeighted(int64(limit)),
	}
}

// LoadEnrichedOrders runs one aggregation pass and publishes the result to
// the board. The order fetch is the only fatal step. Customer and item
// resolution degrade per order and per line: a failed lookup leaves the
// affected piece unenriched and the pass still succeeds. When a younger
// pass has published first, the stale result is discarded and the board's
// current collection is returned instead.
func (es *EnrichService) LoadEnrichedOrders(ctx context.Context) ([]models.EnrichedOrder, error) {
	seq := es.board.BeginPass()

	orders, err := es.client.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrOrdersUnavailable, err)
	}

	users, err := es.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUsersUnavailable, err)
	}

	// customer lookup table, built once per pass
	customers := make(map[int64]models.Customer, len(users))
	for _, user := range users {
		customers[user.ID] = user
	}

	enriched := make([]models.EnrichedOrder, len(orders))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, order := range orders {
		i, order := i, order
		group.Go(func() error {
			enriched[i] = es.enrichOrder(groupCtx, order, customers)
			return nil
		})
	}
	// enrichment never fails the pass, the join is for completeness only
	_ = group.Wait()

	if !es.board.Publish(seq, enriched) {
		logger.Log.Debug("discarding superseded aggregation pass", zap.Uint64("seq", seq))
		return es.board.Snapshot(), nil
	}

	logger.Log.Debug("aggregation pass published",
		zap.Uint64("seq", seq),
		zap.Int("orders", len(enriched)))

	return enriched, nil
}

// OpenOrder opens the detail view for the given order
func (es *EnrichService) OpenOrder(orderID int64) (*models.EnrichedOrder, error) {
	return es.board.Select(orderID)
}

// CloseOrder closes the detail view
func (es *EnrichService) CloseOrder() {
	es.board.ClearSelection()
}

// enrichOrder resolves the customer and all line details for one order.
// Per-line lookups run concurrently and are joined before returning.
func (es *EnrichService) enrichOrder(ctx context.Context, order models.Order, customers map[int64]models.Customer) models.EnrichedOrder {
	enriched := models.EnrichedOrder{
		Order: order,
		Lines: make([]models.EnrichedLine, len(order.OrderItems)),
	}

	if order.User != nil {
		if customer, ok := customers[order.User.ID]; ok {
			enriched.Customer = &customer
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for i, line := range order.OrderItems {
		i, line := i, line
		group.Go(func() error {
			enriched.Lines[i] = es.enrichLine(groupCtx, order.ID, line)
			return nil
		})
	}
	_ = group.Wait()

	return enriched
}

// enrichLine attaches catalog details to one order line. Lines without an
// item reference pass through untouched; a not-found item or any lookup
// failure degrades the same way, the line keeps its original fields.
func (es *EnrichService) enrichLine(ctx context.Context, orderID int64, line models.OrderLine) models.EnrichedLine {
	enriched := models.EnrichedLine{OrderLine: line}

	if line.ItemID == nil {
		return enriched
	}

	if err := es.sem.Acquire(ctx, 1); err != nil {
		// pass context is gone, the line degrades like any failed lookup
		return enriched
	}
	defer es.sem.Release(1)

	item, err := es.client.GetItem(ctx, *line.ItemID)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			logger.Log.Warn("item not found",
				zap.Int64("order", orderID),
				zap.Int64("item", *line.ItemID))
		} else {
			logger.Log.Error("item lookup failed",
				zap.Int64("order", orderID),
				zap.Int64("item", *line.ItemID),
				zap.Error(err))
		}
		return enriched
	}

	enriched.Details = item
	return enriched
}
