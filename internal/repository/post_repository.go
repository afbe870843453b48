package repository

import (
	"context"

	"lokal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type PostRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostRepository(db *pgxpool.Pool, logger *zap.Logger) *PostRepository {
	return &PostRepository{
		db:     db,
		logger: logger,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := squirrel.Insert("posts").
		Columns("id", "business_id", "author_id", "content", "created_at").
		Values(post.ID, post.BusinessID, post.AuthorID, post.Content, post.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	query := squirrel.Select("id", "business_id", "author_id", "content", "created_at").
		From("posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&post.ID, &post.BusinessID, &post.AuthorID, &post.Content, &post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// List returns posts newest first, each with its like count.
func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, map[uuid.UUID]int, error) {
	query := squirrel.Select(
		"p.id", "p.business_id", "p.author_id", "p.content", "p.created_at",
		"COUNT(l.post_id) AS like_count",
	).
		From("posts p").
		LeftJoin("likes l ON l.post_id = p.id").
		GroupBy("p.id").
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	likeCounts := make(map[uuid.UUID]int)
	for rows.Next() {
		var post models.Post
		var likeCount int
		if err := rows.Scan(&post.ID, &post.BusinessID, &post.AuthorID, &post.Content, &post.CreatedAt, &likeCount); err != nil {
			return nil, nil, err
		}
		posts = append(posts, &post)
		likeCounts[post.ID] = likeCount
	}

	return posts, likeCounts, rows.Err()
}
