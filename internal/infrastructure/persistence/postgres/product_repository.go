package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindBySlug retrieves a product with its nested reviews.
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `
		SELECT id, slug, name, description, price_cents, image_url, created_at
		FROM products WHERE slug = $1
	`

	var row productRow
	err := r.db.Pool.QueryRow(ctx, query, slug).Scan(
		&row.ID,
		&row.Slug,
		&row.Name,
		&row.Description,
		&row.PriceCents,
		&row.ImageURL,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewProductNotFoundError(slug)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	reviews, err := r.findReviews(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return toProductDomain(row, reviews), nil
}

// List retrieves all products, newest first, without reviews.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, slug, name, description, price_cents, image_url, created_at
		FROM products ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var row productRow
		if err := rows.Scan(
			&row.ID,
			&row.Slug,
			&row.Name,
			&row.Description,
			&row.PriceCents,
			&row.ImageURL,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, toProductDomain(row, nil))
	}

	return products, rows.Err()
}

// Create inserts a new product. A slug collision surfaces as a domain error.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, slug, name, description, price_cents, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		product.ID,
		product.Slug,
		product.Name,
		product.Description,
		product.PriceCents,
		product.ImageURL,
		product.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.NewDuplicateSlugError(product.Slug)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// AddReview inserts a review under an existing product.
func (r *ProductRepository) AddReview(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, author, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.Author,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}

	return nil
}

func (r *ProductRepository) findReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	query := `
		SELECT id, product_id, author, rating, comment, created_at
		FROM reviews WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var row reviewRow
		if err := rows.Scan(
			&row.ID,
			&row.ProductID,
			&row.Author,
			&row.Rating,
			&row.Comment,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, toReviewDomain(row))
	}

	return reviews, rows.Err()
}
