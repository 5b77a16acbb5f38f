package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/eggypro/storefront-gateway/internal/application/services"
	"github.com/eggypro/storefront-gateway/internal/domain"
	"github.com/eggypro/storefront-gateway/internal/interfaces/rest"
)

type productResponse struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	Reviews     []reviewResponse `json:"reviews,omitempty"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toProductResponse(p *domain.Product) productResponse {
	resp := productResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Price:       float64(p.PriceCents) / 100,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
	for _, review := range p.Reviews {
		resp.Reviews = append(resp.Reviews, reviewResponse{
			ID:        review.ID,
			Author:    review.Author,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	return resp
}

// ListProducts handles GET /products.
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	rest.WriteJSON(w, http.StatusOK, resp)
}

// GetProduct handles GET /products/{slug}.
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

type createProductRequest struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// CreateProduct handles POST /products. Reached only through the admin
// bearer-token middleware.
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), services.CreateProductCommand{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  int64(math.Round(req.Price * 100)),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

type addReviewRequest struct {
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// AddReview handles POST /products/{slug}/reviews.
func (h *Handlers) AddReview(w http.ResponseWriter, r *http.Request) {
	var req addReviewRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	review, err := h.catalog.AddReview(r.Context(), services.AddReviewCommand{
		ProductSlug: r.PathValue("slug"),
		Author:      req.Author,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, reviewResponse{
		ID:        review.ID,
		Author:    review.Author,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	})
}
