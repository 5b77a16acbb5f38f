package services

import (
	"context"
	"log/slog"

	"github.com/eggypro/storefront-gateway/internal/application"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/google/uuid"
)

// CreateProductCommand is the administrative write path's input.
type CreateProductCommand struct {
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
}

type AddReviewCommand struct {
	ProductSlug string
	Author      string
	Rating      int
	Comment     string
}

// CatalogService fronts the product storage collaborator.
type CatalogService struct {
	catalog application.ProductCatalog
	logger  *slog.Logger
}

func NewCatalogService(catalog application.ProductCatalog, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetProductBySlug retrieves a product with its nested reviews.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.catalog.FindBySlug(ctx, slug)
	if err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeProductNotFound) {
			return nil, application.NewNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}
	return product, nil
}

// ListProducts retrieves the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return products, nil
}

// CreateProduct is the admin write path; the caller has already been
// authenticated by the bearer-token middleware.
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	product, err := domain.NewProduct(
		uuid.NewString(),
		cmd.Slug,
		cmd.Name,
		cmd.Description,
		cmd.PriceCents,
		cmd.ImageURL,
	)
	if err != nil {
		return nil, application.NewValidationError(err)
	}

	if err := s.catalog.Create(ctx, product); err != nil {
		if domain.IsErrorCode(err, domain.ErrCodeDuplicateSlug) {
			return nil, application.NewValidationError(err)
		}
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("product created", "product_id", product.ID, "slug", product.Slug)
	return product, nil
}

// AddReview attaches a review to an existing product.
func (s *CatalogService) AddReview(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error) {
	product, err := s.GetProductBySlug(ctx, cmd.ProductSlug)
	if err != nil {
		return nil, err
	}

	review, err := domain.NewReview(uuid.NewString(), product.ID, cmd.Author, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, application.NewValidationError(err)
	}

	if err := s.catalog.AddReview(ctx, review); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("review added", "product_id", product.ID, "rating", review.Rating)
	return review, nil
}
