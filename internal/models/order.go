package models

import (
	"time"

	"github.com/shopspring/decimal"
)

//PENDING — order was placed and awaits an admin decision;
//APPROVED — order was accepted;
//REJECTED — order was declined;
//HOLD — order is parked;
//PROCESSING — order is being worked on;
//COMPLETED — order was fulfilled.

// order status
const (
	OrderStatusPending    = "PENDING"
	OrderStatusApproved   = "APPROVED"
	OrderStatusRejected   = "REJECTED"
	OrderStatusHold       = "HOLD"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusCompleted  = "COMPLETED"
)

// OrderStatuses is the closed set of statuses an order may take.
// The backend remains the authority on transitions, the set itself is fixed.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusApproved,
	OrderStatusRejected,
	OrderStatusHold,
	OrderStatusProcessing,
	OrderStatusCompleted,
}

// IsValidOrderStatus reports whether status belongs to the closed status set
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderUserRef is the denormalized customer reference embedded in an order
type OrderUserRef struct {
	ID int64 `json:"id"`
}

// OrderLine is a single position of an order. ItemID may be nil when the
// line was entered without a catalog reference.
type OrderLine struct {
	ItemID     *int64          `json:"itemId"`
	ItemName   string          `json:"itemName"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Order is an order entity as served by the store backend
type Order struct {
	ID              int64           `json:"id"`
	Status          string          `json:"orderStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	ItemsTotal      decimal.Decimal `json:"itemsTotal"`
	ShippingCharges decimal.Decimal `json:"shippingCharges"`
	OtherCharges    decimal.Decimal `json:"otherCharges"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	User            *OrderUserRef   `json:"user"`
	OrderItems      []OrderLine     `json:"orderItems"`
}

// EnrichedLine is an order line carrying resolved item details.
// Details stays nil when the catalog lookup found nothing or failed.
type EnrichedLine struct {
	OrderLine
	Details *Item `json:"details,omitempty"`
}

// EnrichedOrder is the composite the admin screens consume: the backend
// order plus its resolved customer and its lines with item details
type EnrichedOrder struct {
	Order    Order          `json:"order"`
	Customer *Customer      `json:"customer,omitempty"`
	Lines    []EnrichedLine `json:"lines"`
}
