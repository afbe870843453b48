package handlers

import (
	"strconv"

	"lokal/internal/dto"
	"lokal/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BusinessHandler struct {
	businessService *service.BusinessService
	logger          *zap.Logger
}

func NewBusinessHandler(businessService *service.BusinessService, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		logger:          logger,
	}
}

// CreateBusiness godoc
// @Summary Create a business
// @Description Create a business with name and category
// @Tags businesses
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateBusinessRequest true "Business to create"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} map[string]string
// @Router /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and category are required",
		})
	}

	resp, err := h.businessService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Business creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Business creation failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetBusiness godoc
// @Summary Get a business
// @Description Get a business by ID
// @Tags businesses
// @Produce json
// @Security Bearer
// @Param id path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} map[string]string
// @Router /businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	resp, err := h.businessService.GetByID(c.Context(), id)
	if err != nil {
		if err == service.ErrBusinessNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Business not found",
			})
		}
		h.logger.Error("Business lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Business lookup failed",
		})
	}

	return c.JSON(resp)
}

// ListBusinesses godoc
// @Summary List businesses
// @Description List businesses, newest first
// @Tags businesses
// @Produce json
// @Security Bearer
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.BusinessResponse
// @Router /businesses [get]
func (h *BusinessHandler) ListBusinesses(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	resp, err := h.businessService.List(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Business listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Business listing failed",
		})
	}

	return c.JSON(resp)
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
