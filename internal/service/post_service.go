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

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	postRepo     *repository.PostRepository
	likeRepo     *repository.LikeRepository
	businessRepo *repository.BusinessRepository
	logger       *zap.Logger
}

func NewPostService(
	postRepo *repository.PostRepository,
	likeRepo *repository.LikeRepository,
	businessRepo *repository.BusinessRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		likeRepo:     likeRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (s *PostService) Create(ctx context.Context, authorID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, ErrBusinessNotFound
	}

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}

	post := &models.Post{
		ID:         uuid.New(),
		BusinessID: businessID,
		AuthorID:   authorID,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("business_id", businessID.String()),
	)

	return toPostResponse(post, 0), nil
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]*dto.PostResponse, error) {
	posts, likeCounts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toPostResponse(post, likeCounts[post.ID]))
	}
	return responses, nil
}

func (s *PostService) Like(ctx context.Context, userID, postID uuid.UUID) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}

	return s.likeRepo.Add(ctx, &models.Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
}

func (s *PostService) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	return s.likeRepo.Remove(ctx, userID, postID)
}

func (s *PostService) ListLikes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	postIDs, err := s.likeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		ids = append(ids, id.String())
	}
	return ids, nil
}

func toPostResponse(post *models.Post, likeCount int) *dto.PostResponse {
	return &dto.PostResponse{
		ID:         post.ID.String(),
		BusinessID: post.BusinessID.String(),
		AuthorID:   post.AuthorID.String(),
		Content:    post.Content,
		LikeCount:  likeCount,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
}
