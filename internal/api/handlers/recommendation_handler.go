package handlers

import (
	"errors"

	"lokal/internal/cache"
	"lokal/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	cache      *cache.RecommendationCache // nil when Redis is not configured
	logger     *zap.Logger
}

func NewRecommendationHandler(
	recService *service.RecommendationService,
	recCache *cache.RecommendationCache,
	logger *zap.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		cache:      recCache,
		logger:     logger,
	}
}

// GetRecommendations godoc
// @Summary Get recommendations
// @Description Potential friends and recommended businesses for the authenticated user, computed by collaborative filtering over likes
// @Tags recommendations
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.RecommendationResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	if h.cache != nil {
		cached, err := h.cache.Get(c.Context(), userID.String())
		if err == nil {
			return c.JSON(cached)
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.Warn("Recommendation cache read failed", zap.Error(err))
		}
	}

	resp, err := h.recService.GetRecommendations(c.Context(), userID.String())
	if err != nil {
		h.logger.Error("Recommendation computation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to compute recommendations",
		})
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Context(), userID.String(), resp); err != nil {
			h.logger.Warn("Recommendation cache write failed", zap.Error(err))
		}
	}

	return c.JSON(resp)
}
