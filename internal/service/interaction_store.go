package service

import "context"

// InteractionStore is the read contract the recommendation engine needs
// from the like graph. IDs are opaque strings so the engine never depends
// on how the backing store keys its rows.
type InteractionStore interface {
	// LikesOf returns the set of post IDs the user has liked.
	LikesOf(ctx context.Context, userID string) (map[string]struct{}, error)

	// AllUsers returns every known user's like-set as one snapshot. The
	// engine treats the snapshot as immutable for the whole computation.
	AllUsers(ctx context.Context) (map[string]map[string]struct{}, error)

	// BusinessOf resolves the business a post belongs to; the boolean is
	// false when the post is unknown.
	BusinessOf(ctx context.Context, postID string) (string, bool, error)

	// BusinessMetadata returns the display name and category of a business.
	BusinessMetadata(ctx context.Context, businessID string) (name, category string, err error)
}
