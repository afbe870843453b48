package dto

type CreatePostRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=2000"`
}

type PostResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	AuthorID   string `json:"author_id"`
	Content    string `json:"content"`
	LikeCount  int    `json:"like_count"`
	CreatedAt  string `json:"created_at"`
}
