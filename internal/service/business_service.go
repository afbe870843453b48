package service

import (
	"context"
	"errors"
	"time"

	"lokal/internal/dto"
	"lokal/internal/models"
	"lokal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrBusinessNotFound = errors.New("business not found")

type BusinessService struct {
	businessRepo *repository.BusinessRepository
	logger       *zap.Logger
}

func NewBusinessService(businessRepo *repository.BusinessRepository, logger *zap.Logger) *BusinessService {
	return &BusinessService{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (s *BusinessService) Create(ctx context.Context, req *dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	business := &models.Business{
		ID:        uuid.New(),
		Name:      req.Name,
		Category:  req.Category,
		CreatedAt: time.Now(),
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	s.logger.Info("Business created",
		zap.String("business_id", business.ID.String()),
		zap.String("category", business.Category),
	)

	return toBusinessResponse(business), nil
}

func (s *BusinessService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	return toBusinessResponse(business), nil
}

func (s *BusinessService) List(ctx context.Context, limit, offset int) ([]*dto.BusinessResponse, error) {
	businesses, err := s.businessRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BusinessResponse, 0, len(businesses))
	for _, business := range businesses {
		responses = append(responses, toBusinessResponse(business))
	}
	return responses, nil
}

func toBusinessResponse(business *models.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:       business.ID.String(),
		Name:     business.Name,
		Category: business.Category,
	}
}
