package postgres

import (
	"encoding/json"
	"time"
)

// productRow mirrors the products table.
type productRow struct {
	ID          string
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	CreatedAt   time.Time
}

// reviewRow mirrors the reviews table.
type reviewRow struct {
	ID        string
	ProductID string
	Author    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// orderRow mirrors the orders table. Items and customer are stored as
// JSONB: the order is written once and read back whole, never queried by
// line item.
type orderRow struct {
	OrderID         string
	PaymentIntentID string
	Status          string
	AmountCents     int64
	Items           json.RawMessage
	Customer        json.RawMessage
	CreatedAt       time.Time
}
