package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lootplay/prize-engine/internal/models"
	"github.com/lootplay/prize-engine/internal/services"
)

func adminRouter(get, update, preset http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/admin/rtp/{product}", get)
	r.Put("/admin/rtp/{product}", update)
	r.Post("/admin/rtp/{product}/preset", preset)
	return r
}

func TestRTPAdminHandlers(t *testing.T) {
	validToken := "valid-token"

	authorize := func(mockTokener *MockRTPAdminTokener) {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
		mockTokener.EXPECT().Validate(gomock.Any(), validToken).Return(nil)
	}

	t.Run("get settings with current rtp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		mockSvc.EXPECT().GetSettings(gomock.Any(), models.ProductChest).
			Return(&models.RTPSettingsDB{
				ProductType: models.ProductChest,
				TargetRTP:   decimal.NewFromInt(80),
				RTPEnabled:  true,
			}, nil)
		mockSvc.EXPECT().CurrentRTP(gomock.Any(), models.ProductChest).
			Return(decimal.NewFromInt(76), nil)

		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodGet, "/admin/rtp/chest", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp RTPSettingsResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.TargetRTP.Equal(decimal.NewFromInt(80)))
		assert.True(t, resp.CurrentRTP.Equal(decimal.NewFromInt(76)))
	})

	t.Run("get settings for unconfigured product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		mockSvc.EXPECT().GetSettings(gomock.Any(), models.ProductScratch).
			Return(nil, services.ErrProductNotConfigured)

		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodGet, "/admin/rtp/scratch", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		mockSvc.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, s *models.RTPSettingsDB) error {
				assert.Equal(t, models.ProductChest, s.ProductType)
				assert.True(t, s.TargetRTP.Equal(decimal.NewFromInt(85)))
				assert.True(t, s.HardBudgetLimit)
				return nil
			})

		body, _ := json.Marshal(UpdateRTPRequest{
			TargetRTP:         decimal.NewFromInt(85),
			RTPEnabled:        true,
			WinProbability:    decimal.NewFromInt(60),
			DailyBudgetPrizes: decimal.NewFromInt(1000),
			RemainingBudget:   decimal.NewFromInt(1000),
			HardBudgetLimit:   true,
		})
		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodPut, "/admin/rtp/chest", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update rejects out-of-range target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		body, _ := json.Marshal(UpdateRTPRequest{TargetRTP: decimal.NewFromInt(150)})
		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodPut, "/admin/rtp/chest", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("apply preset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		mockSvc.EXPECT().ApplyPreset(gomock.Any(), models.ProductChest, models.PresetAggressive).
			Return(&models.RTPSettingsDB{
				ProductType:    models.ProductChest,
				TargetRTP:      decimal.NewFromInt(95),
				WinProbability: decimal.NewFromInt(80),
			}, nil)

		body, _ := json.Marshal(ApplyPresetRequest{Preset: models.PresetAggressive})
		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodPost, "/admin/rtp/chest/preset", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown preset rejected before the service is called", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		authorize(mockTokener)

		body, _ := json.Marshal(ApplyPresetRequest{Preset: "reckless"})
		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodPost, "/admin/rtp/chest/preset", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockRTPConfigurer(ctrl)
		mockTokener := NewMockRTPAdminTokener(ctrl)
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

		r := adminRouter(
			NewGetRTPSettingsHandler(mockSvc, mockTokener),
			NewUpdateRTPSettingsHandler(mockSvc, mockTokener),
			NewApplyRTPPresetHandler(mockSvc, mockTokener),
		)
		req := httptest.NewRequest(http.MethodGet, "/admin/rtp/chest", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
