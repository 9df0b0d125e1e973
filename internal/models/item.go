package models

import "github.com/shopspring/decimal"

// Item is a catalog item record attached to order lines during enrichment
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// Category is a product category
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
