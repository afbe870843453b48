package handlers

import (
	"lokal/internal/cache"
	"lokal/internal/dto"
	"lokal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService *service.PostService
	cache       *cache.RecommendationCache // nil when Redis is not configured
	logger      *zap.Logger
}

func NewPostHandler(postService *service.PostService, recCache *cache.RecommendationCache, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		cache:       recCache,
		logger:      logger,
	}
}

// invalidateRecommendations drops the user's cached recommendations after
// their like-set changed
func (h *PostHandler) invalidateRecommendations(c *fiber.Ctx, userID uuid.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(c.Context(), userID.String()); err != nil {
		h.logger.Warn("Recommendation cache invalidation failed", zap.Error(err))
	}
}

// CreatePost godoc
// @Summary Create a post
// @Description Create a post attached to a business
// @Tags posts
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreatePostRequest true "Post to create"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content is required",
		})
	}

	resp, err := h.postService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Business not found",
			})
		}
		h.logger.Error("Post creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Post creation failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPosts godoc
// @Summary List posts
// @Description List posts with like counts, newest first
// @Tags posts
// @Produce json
// @Security Bearer
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PostResponse
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	resp, err := h.postService.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Post listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Post listing failed",
		})
	}

	return c.JSON(resp)
}

// LikePost godoc
// @Summary Like a post
// @Description Record a like from the authenticated user
// @Tags posts
// @Produce json
// @Security Bearer
// @Param id path string true "Post ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /posts/{id}/like [post]
func (h *PostHandler) LikePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	if err := h.postService.Like(c.Context(), userID, postID); err != nil {
		if err == service.ErrPostNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		h.logger.Error("Like failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Like failed",
		})
	}

	h.invalidateRecommendations(c, userID)

	return c.SendStatus(fiber.StatusNoContent)
}

// UnlikePost godoc
// @Summary Unlike a post
// @Description Remove the authenticated user's like from a post
// @Tags posts
// @Produce json
// @Security Bearer
// @Param id path string true "Post ID"
// @Success 204
// @Router /posts/{id}/like [delete]
func (h *PostHandler) UnlikePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid post ID",
		})
	}

	if err := h.postService.Unlike(c.Context(), userID, postID); err != nil {
		h.logger.Error("Unlike failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unlike failed",
		})
	}

	h.invalidateRecommendations(c, userID)

	return c.SendStatus(fiber.StatusNoContent)
}

// ListMyLikes godoc
// @Summary List liked posts
// @Description List post IDs the authenticated user has liked
// @Tags posts
// @Produce json
// @Security Bearer
// @Success 200 {array} string
// @Router /posts/likes [get]
func (h *PostHandler) ListMyLikes(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	ids, err := h.postService.ListLikes(c.Context(), userID)
	if err != nil {
		h.logger.Error("Like listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Like listing failed",
		})
	}

	return c.JSON(ids)
}
