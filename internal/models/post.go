package models

import (
	"time"

	"github.com/google/uuid"
)

// Post belongs to exactly one business
type Post struct {
	ID         uuid.UUID `db:"id"`
	BusinessID uuid.UUID `db:"business_id"`
	AuthorID   uuid.UUID `db:"author_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}
