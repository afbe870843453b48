package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// InteractionRepository exposes the read-only views of the like graph the
// recommendation engine works on. It satisfies service.InteractionStore.
type InteractionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInteractionRepository(db *pgxpool.Pool, logger *zap.Logger) *InteractionRepository {
	return &InteractionRepository{
		db:     db,
		logger: logger,
	}
}

// LikesOf returns the set of post IDs the user has liked.
func (r *InteractionRepository) LikesOf(ctx context.Context, userID string) (map[string]struct{}, error) {
	query := squirrel.Select("post_id").
		From("likes").
		Where(squirrel.Eq{"user_id": userID}).
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

	likes := make(map[string]struct{})
	for rows.Next() {
		var postID uuid.UUID
		if err := rows.Scan(&postID); err != nil {
			return nil, err
		}
		likes[postID.String()] = struct{}{}
	}

	return likes, rows.Err()
}

// AllUsers returns a snapshot of every user's like-set in one query.
func (r *InteractionRepository) AllUsers(ctx context.Context) (map[string]map[string]struct{}, error) {
	query := squirrel.Select("user_id", "post_id").
		From("likes").
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

	users := make(map[string]map[string]struct{})
	for rows.Next() {
		var userID, postID uuid.UUID
		if err := rows.Scan(&userID, &postID); err != nil {
			return nil, err
		}
		uid := userID.String()
		if users[uid] == nil {
			users[uid] = make(map[string]struct{})
		}
		users[uid][postID.String()] = struct{}{}
	}

	return users, rows.Err()
}

// BusinessOf resolves the business a post belongs to. The second return is
// false when the post does not exist.
func (r *InteractionRepository) BusinessOf(ctx context.Context, postID string) (string, bool, error) {
	query := squirrel.Select("business_id").
		From("posts").
		Where(squirrel.Eq{"id": postID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var businessID uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&businessID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return businessID.String(), true, nil
}

// BusinessMetadata returns the display name and category of a business.
func (r *InteractionRepository) BusinessMetadata(ctx context.Context, businessID string) (name, category string, err error) {
	query := squirrel.Select("name", "category").
		From("businesses").
		Where(squirrel.Eq{"id": businessID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", "", err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&name, &category); err != nil {
		return "", "", err
	}

	return name, category, nil
}
