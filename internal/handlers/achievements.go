package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/lootplay/prize-engine/internal/jwt"
	"github.com/lootplay/prize-engine/internal/logger"
	"github.com/lootplay/prize-engine/internal/models"
)

// AchievementTokener defines only the methods needed by this handler.
type AchievementTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AchievementLister defines the interface that the achievement service must implement.
type AchievementLister interface {
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]models.UserAchievementDB, error)
}

// NewListAchievementsHandler returns an HTTP handler listing the user's unlocks.
// @Summary List unlocked achievements
// @Description Returns the authenticated user's unlocked achievements, newest first.
// @Tags achievements
// @Produce json
// @Success 200 {array} models.UserAchievementDB "Unlocks"
// @Failure 401 {string} string "Unauthorized"
// @Router /achievements [get]
// @Security BearerAuth
func NewListAchievementsHandler(
	svc AchievementLister,
	tokenGetter AchievementTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		unlocks, err := svc.ListUserAchievements(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list achievements", "userID", claims.UserID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if unlocks == nil {
			unlocks = []models.UserAchievementDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(unlocks)
	}
}
