package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// PoolTokener defines only the methods needed by this handler.
type PoolTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// PoolLister defines the interface that the pool storage must implement.
type PoolLister interface {
	ListEntries(ctx context.Context, productType string) ([]models.ProbabilityEntryDB, error)
	GetPool(ctx context.Context, productType string) ([]models.PoolEntry, error)
}

// PoolResponse represents the configured and drawable views of one product's pool
// swagger:model PoolResponse
type PoolResponse struct {
	// Every configured entry, active or not
	Entries []models.ProbabilityEntryDB `json:"entries"`

	// The drawable subset with item details, as the selector sees it
	Drawable []models.PoolEntry `json:"drawable"`
}

// NewListPoolHandler returns an HTTP handler listing a product's prize pool.
// @Summary List prize pool
// @Description Returns a product's configured probability entries and the drawable subset with item details.
// @Tags admin
// @Produce json
// @Param product path string true "Product type"
// @Success 200 {object} handlers.PoolResponse "Pool"
// @Failure 401 {string} string "Unauthorized"
// @Router /admin/probability/{product} [get]
// @Security BearerAuth
func NewListPoolHandler(
	repo PoolLister,
	tokenGetter PoolTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorizeAdmin(w, r, tokenGetter) {
			return
		}
		ctx := r.Context()
		product := chi.URLParam(r, "product")

		entries, err := repo.ListEntries(ctx, product)
		if err != nil {
			logger.Log.Errorw("failed to list pool entries", "product", product, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		drawable, err := repo.GetPool(ctx, product)
		if err != nil {
			logger.Log.Errorw("failed to load drawable pool", "product", product, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PoolResponse{Entries: entries, Drawable: drawable})
	}
}
