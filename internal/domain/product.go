package domain

import (
	"errors"
	"strings"
	"time"
)

// Product is a catalog entry, fetched by slug for display and checkout.
type Product struct {
	ID          string
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	CreatedAt   time.Time
	Reviews     []Review
}

// Review is customer feedback nested under a product.
type Review struct {
	ID        string
	ProductID string
	Author    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewProduct(id, slug, name, description string, priceCents int64, imageURL string) (*Product, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, errors.New("product slug is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("product name is required")
	}
	if priceCents < 0 {
		return nil, errors.New("product price cannot be negative")
	}

	return &Product{
		ID:          id,
		Slug:        strings.TrimSpace(slug),
		Name:        strings.TrimSpace(name),
		Description: description,
		PriceCents:  priceCents,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}, nil
}

func NewReview(id, productID, author string, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, NewInvalidReviewError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(author) == "" {
		return nil, NewInvalidReviewError("review author is required")
	}

	return &Review{
		ID:        id,
		ProductID: productID,
		Author:    strings.TrimSpace(author),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}, nil
}
