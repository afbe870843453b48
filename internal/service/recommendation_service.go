package service

import (
	"context"
	"fmt"
	"sort"

	"lokal/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// AlgorithmName tags every recommendation response.
	AlgorithmName = "collaborative_filtering"

	maxPotentialFriends      = 10
	maxRecommendedBusinesses = 20

	similarityWorkers = 4
)

// neighbor is another user scored against the requester.
type neighbor struct {
	userID     string
	similarity float64
	shared     int
}

// RecommendationService ranks similar users and the businesses their likes
// point at. It is stateless: every call reads one snapshot from the store
// and computes from it, so concurrent calls never share mutable state.
type RecommendationService struct {
	store  InteractionStore
	logger *zap.Logger
}

func NewRecommendationService(store InteractionStore, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		store:  store,
		logger: logger,
	}
}

// GetRecommendations computes potential friends and recommended businesses
// for a user. A user without likes gets an empty, successful response.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID string) (*dto.RecommendationResponse, error) {
	likes, err := s.store.LikesOf(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch likes: %w", err)
	}

	if len(likes) == 0 {
		return &dto.RecommendationResponse{
			Success:               true,
			PotentialFriends:      []dto.PotentialFriend{},
			RecommendedBusinesses: []dto.RecommendedBusiness{},
			Algorithm:             AlgorithmName,
			Message:               "Like some posts to get personalized recommendations",
		}, nil
	}

	snapshot, err := s.store.AllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user likes snapshot: %w", err)
	}

	neighbors := s.rankNeighbors(userID, likes, snapshot)

	friends := make([]dto.PotentialFriend, 0, maxPotentialFriends)
	for i, n := range neighbors {
		if i == maxPotentialFriends {
			break
		}
		friends = append(friends, dto.PotentialFriend{
			UserID:          n.userID,
			SimilarityScore: n.similarity,
			SharedInterests: n.shared,
		})
	}

	businesses, err := s.rankBusinesses(ctx, likes, snapshot, neighbors)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Recommendations computed",
		zap.String("user_id", userID),
		zap.Int("similar_users", len(neighbors)),
		zap.Int("businesses", len(businesses)),
	)

	return &dto.RecommendationResponse{
		Success:               true,
		PotentialFriends:      friends,
		RecommendedBusinesses: businesses,
		Algorithm:             AlgorithmName,
		TotalSimilarUsers:     len(neighbors),
	}, nil
}

// rankNeighbors scores every other user against the requester and returns
// those with positive similarity, most similar first. Each pairwise score
// is independent, so the pass runs on a small worker pool.
func (s *RecommendationService) rankNeighbors(userID string, likes map[string]struct{}, snapshot map[string]map[string]struct{}) []neighbor {
	candidates := make([]string, 0, len(snapshot))
	for otherID := range snapshot {
		if otherID == userID {
			continue
		}
		candidates = append(candidates, otherID)
	}

	scored := make([]neighbor, len(candidates))

	var g errgroup.Group
	g.SetLimit(similarityWorkers)
	for i, otherID := range candidates {
		i, otherID := i, otherID
		g.Go(func() error {
			otherLikes := snapshot[otherID]
			scored[i] = neighbor{
				userID:     otherID,
				similarity: cosineSimilarity(likes, otherLikes),
				shared:     sharedLikes(likes, otherLikes),
			}
			return nil
		})
	}
	// Workers only write disjoint slots and never fail
	_ = g.Wait()

	neighbors := scored[:0]
	for _, n := range scored {
		if n.similarity > 0 {
			neighbors = append(neighbors, n)
		}
	}

	// Ties order by user ID so output does not depend on map iteration
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].userID < neighbors[j].userID
	})

	return neighbors
}

// rankBusinesses aggregates the top neighbors' likes the requester has not
// seen into per-business scores and returns the best ones with metadata.
func (s *RecommendationService) rankBusinesses(ctx context.Context, likes map[string]struct{}, snapshot map[string]map[string]struct{}, neighbors []neighbor) ([]dto.RecommendedBusiness, error) {
	postScores := make(map[string]float64)
	for i, n := range neighbors {
		if i == maxPotentialFriends {
			break
		}
		for post := range snapshot[n.userID] {
			if _, alreadyLiked := likes[post]; alreadyLiked {
				continue
			}
			postScores[post] += n.similarity
		}
	}

	type businessScore struct {
		id    string
		score float64
		posts int
	}
	byBusiness := make(map[string]*businessScore)
	for post, score := range postScores {
		businessID, ok, err := s.store.BusinessOf(ctx, post)
		if err != nil {
			return nil, fmt.Errorf("resolve business of post %s: %w", post, err)
		}
		if !ok {
			continue
		}
		b := byBusiness[businessID]
		if b == nil {
			b = &businessScore{id: businessID}
			byBusiness[businessID] = b
		}
		b.score += score
		b.posts++
	}

	ranked := make([]*businessScore, 0, len(byBusiness))
	for _, b := range byBusiness {
		ranked = append(ranked, b)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})
	if len(ranked) > maxRecommendedBusinesses {
		ranked = ranked[:maxRecommendedBusinesses]
	}

	businesses := make([]dto.RecommendedBusiness, 0, len(ranked))
	for _, b := range ranked {
		name, category, err := s.store.BusinessMetadata(ctx, b.id)
		if err != nil {
			return nil, fmt.Errorf("fetch business %s: %w", b.id, err)
		}
		businesses = append(businesses, dto.RecommendedBusiness{
			Business: dto.BusinessResponse{
				ID:       b.id,
				Name:     name,
				Category: category,
			},
			RecommendationScore: b.score,
			Reason:              recommendationReason(b.posts),
		})
	}

	return businesses, nil
}

func recommendationReason(posts int) string {
	if posts == 1 {
		return "1 post liked by users with similar taste"
	}
	return fmt.Sprintf("%d posts liked by users with similar taste", posts)
}
