package dto

// PotentialFriend is a user whose like history overlaps the requester's.
type PotentialFriend struct {
	UserID          string  `json:"userId"`
	SimilarityScore float64 `json:"similarityScore"`
	SharedInterests int     `json:"sharedInterests"`
}

// RecommendedBusiness carries a business plus the aggregate score its posts
// collected from similar users.
type RecommendedBusiness struct {
	Business            BusinessResponse `json:"business"`
	RecommendationScore float64          `json:"recommendationScore"`
	Reason              string           `json:"reason"`
}

// RecommendationResponse is the wire envelope of the recommendation
// endpoint. Field names are a compatibility contract with existing clients
// and must not change.
type RecommendationResponse struct {
	Success               bool                  `json:"success"`
	PotentialFriends      []PotentialFriend     `json:"potentialFriends"`
	RecommendedBusinesses []RecommendedBusiness `json:"recommendedBusinesses"`
	Algorithm             string                `json:"algorithm"`
	TotalSimilarUsers     int                   `json:"totalSimilarUsers"`
	Message               string                `json:"message,omitempty"`
}
