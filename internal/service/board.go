package service

import (
	"sync"

	"github.com/it23631960/pearl-logistics-admin/internal/models"
)

// OrderBoard owns the enriched order collection and the open detail
// selection for one screen session. The original panel mutated both from a
// single UI thread; the gateway serves concurrent requests, so access is
// guarded by a mutex. Aggregation passes publish through a sequence number
// so a slow, superseded pass can never overwrite a younger result.
type OrderBoard struct {
	mu       sync.RWMutex
	orders   []models.EnrichedOrder
	selected *models.EnrichedOrder
	nextSeq  uint64
	applied  uint64
}

// NewOrderBoard creates an empty board
func NewOrderBoard() *OrderBoard {
	return &OrderBoard{}
}

// BeginPass reserves a sequence number for an aggregation pass
func (b *OrderBoard) BeginPass() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSeq++
	return b.nextSeq
}

// Publish installs the result of pass seq wholesale. It reports false and
// leaves the board untouched when a younger pass has already published.
func (b *OrderBoard) Publish(seq uint64, orders []models.EnrichedOrder) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq <= b.applied {
		return false
	}

	b.applied = seq
	b.orders = orders
	return true
}

// Snapshot returns a copy of the current collection
func (b *OrderBoard) Snapshot() []models.EnrichedOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()

	orders := make([]models.EnrichedOrder, len(b.orders))
	copy(orders, b.orders)
	return orders
}

// Select opens the detail view for the given order and returns its content
func (b *OrderBoard) Select(orderID int64) (*models.EnrichedOrder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, order := range b.orders {
		if order.Order.ID == orderID {
			selected := order
			b.selected = &selected
			view := order
			return &view, nil
		}
	}
	return nil, models.ErrOrderNotFound
}

// ClearSelection closes the detail view
func (b *OrderBoard) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selected = nil
}

// Selected returns a copy of the order currently open in the detail view
func (b *OrderBoard) Selected() (*models.EnrichedOrder, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.selected == nil {
		return nil, models.ErrNoOrderSelected
	}
	view := *b.selected
	return &view, nil
}

// SetStatus replaces the status of the matching order in the collection
// and, when the detail view holds that same order, patches it too
func (b *OrderBoard) SetStatus(orderID int64, status string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	found := false
	for i := range b.orders {
		if b.orders[i].Order.ID == orderID {
			b.orders[i].Order.Status = status
			found = true
			break
		}
	}
	if !found {
		return models.ErrOrderNotFound
	}

	if b.selected != nil && b.selected.Order.ID == orderID {
		b.selected.Order.Status = status
	}

	return nil
}
