package repository

import (
	"context"

	"lokal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BusinessRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBusinessRepository(db *pgxpool.Pool, logger *zap.Logger) *BusinessRepository {
	return &BusinessRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	query := squirrel.Insert("businesses").
		Columns("id", "name", "category", "created_at").
		Values(business.ID, business.Name, business.Category, business.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	query := squirrel.Select("id", "name", "category", "created_at").
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var business models.Business
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&business.ID, &business.Name, &business.Category, &business.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &business, nil
}

func (r *BusinessRepository) List(ctx context.Context, limit, offset int) ([]*models.Business, error) {
	query := squirrel.Select("id", "name", "category", "created_at").
		From("businesses").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var businesses []*models.Business
	for rows.Next() {
		var business models.Business
		if err := rows.Scan(&business.ID, &business.Name, &business.Category, &business.CreatedAt); err != nil {
			return nil, err
		}
		businesses = append(businesses, &business)
	}

	return businesses, rows.Err()
}
