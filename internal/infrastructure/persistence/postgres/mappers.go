package postgres

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/eggypro/storefront-gateway/internal/domain"
)

func toProductDomain(row productRow, reviews []domain.Review) *domain.Product {
	return &domain.Product{
		ID:          row.ID,
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description,
		PriceCents:  row.PriceCents,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		Reviews:     reviews,
	}
}

func toReviewDomain(row reviewRow) domain.Review {
	return domain.Review{
		ID:        row.ID,
		ProductID: row.ProductID,
		Author:    row.Author,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: row.CreatedAt,
	}
}

func toOrderRow(order *domain.Order) (orderRow, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return orderRow{}, fmt.Errorf("marshal order items: %w", err)
	}
	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return orderRow{}, fmt.Errorf("marshal order customer: %w", err)
	}

	return orderRow{
		OrderID:         order.ID,
		PaymentIntentID: order.PaymentIntentID,
		Status:          string(order.Status),
		AmountCents:     int64(math.Round(order.Amount * 100)),
		Items:           items,
		Customer:        customer,
		CreatedAt:       order.CreatedAt,
	}, nil
}

func toOrderDomain(row orderRow) (*domain.Order, error) {
	var items []domain.LineItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	var customer domain.CustomerInfo
	if err := json.Unmarshal(row.Customer, &customer); err != nil {
		return nil, fmt.Errorf("unmarshal order customer: %w", err)
	}

	return &domain.Order{
		ID:              row.OrderID,
		PaymentIntentID: row.PaymentIntentID,
		Status:          domain.OrderStatus(row.Status),
		Amount:          float64(row.AmountCents) / 100,
		Items:           items,
		Customer:        customer,
		CreatedAt:       row.CreatedAt,
	}, nil
}
