package models

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	UserID    uuid.UUID `db:"user_id"`
	PostID    uuid.UUID `db:"post_id"`
	CreatedAt time.Time `db:"created_at"`
}
