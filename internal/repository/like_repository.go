package repository

import (
	"context"

	"lokal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LikeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLikeRepository(db *pgxpool.Pool, logger *zap.Logger) *LikeRepository {
	return &LikeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LikeRepository) Add(ctx context.Context, like *models.Like) error {
	query := squirrel.Insert("likes").
		Columns("user_id", "post_id", "created_at").
		Values(like.UserID, like.PostID, like.CreatedAt).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LikeRepository) Remove(ctx context.Context, userID, postID uuid.UUID) error {
	query := squirrel.Delete("likes").
		Where(squirrel.Eq{"user_id": userID, "post_id": postID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LikeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := squirrel.Select("post_id").
		From("likes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postIDs []uuid.UUID
	for rows.Next() {
		var postID uuid.UUID
		if err := rows.Scan(&postID); err != nil {
			return nil, err
		}
		postIDs = append(postIDs, postID)
	}

	return postIDs, rows.Err()
}
