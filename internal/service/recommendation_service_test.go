package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"go.uber.org/zap"
)

// fixtureStore builds the four-user demo dataset:
//
//	user_1 likes post_1, post_2, post_3, post_5
//	user_2 likes post_2, post_3, post_4, post_6
//	user_3 likes post_1, post_4, post_7, post_8
//	user_4 likes post_2, post_5, post_6, post_9
//
// posts map to businesses as 1,3 -> business_1; 2,5 -> business_2;
// 4,6 -> business_3; 7,8 -> business_4; 9 -> business_5.
func fixtureStore() *MemoryStore {
	store := NewMemoryStore()

	store.AddBusiness("business_1", "Brew & Bean", "cafe")
	store.AddBusiness("business_2", "Nonna's Kitchen", "restaurant")
	store.AddBusiness("business_3", "Page Turner Books", "bookstore")
	store.AddBusiness("business_4", "Iron Temple Gym", "fitness")
	store.AddBusiness("business_5", "Vinyl Haven", "music")

	owners := map[string]string{
		"post_1": "business_1",
		"post_2": "business_2",
		"post_3": "business_1",
		"post_4": "business_3",
		"post_5": "business_2",
		"post_6": "business_3",
		"post_7": "business_4",
		"post_8": "business_4",
		"post_9": "business_5",
	}
	for post, business := range owners {
		store.AddPost(post, business)
	}

	likes := map[string][]string{
		"user_1": {"post_1", "post_2", "post_3", "post_5"},
		"user_2": {"post_2", "post_3", "post_4", "post_6"},
		"user_3": {"post_1", "post_4", "post_7", "post_8"},
		"user_4": {"post_2", "post_5", "post_6", "post_9"},
	}
	for user, posts := range likes {
		for _, post := range posts {
			store.AddLike(user, post)
		}
	}

	return store
}

func TestGetRecommendations_Fixture(t *testing.T) {
	svc := NewRecommendationService(fixtureStore(), zap.NewNop())

	resp, err := svc.GetRecommendations(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Algorithm != "collaborative_filtering" {
		t.Errorf("Algorithm = %q, want collaborative_filtering", resp.Algorithm)
	}
	if resp.TotalSimilarUsers != 3 {
		t.Errorf("TotalSimilarUsers = %d, want 3", resp.TotalSimilarUsers)
	}

	// user_2 and user_4 both score 0.5 (two of four likes shared), the
	// tie resolves by user ID; user_3 shares one like and scores 0.25.
	wantFriends := []struct {
		userID string
		score  float64
		shared int
	}{
		{"user_2", 0.5, 2},
		{"user_4", 0.5, 2},
		{"user_3", 0.25, 1},
	}
	if len(resp.PotentialFriends) != len(wantFriends) {
		t.Fatalf("len(PotentialFriends) = %d, want %d", len(resp.PotentialFriends), len(wantFriends))
	}
	for i, want := range wantFriends {
		got := resp.PotentialFriends[i]
		if got.UserID != want.userID {
			t.Errorf("PotentialFriends[%d].UserID = %q, want %q", i, got.UserID, want.userID)
		}
		if math.Abs(got.SimilarityScore-want.score) > 1e-9 {
			t.Errorf("PotentialFriends[%d].SimilarityScore = %v, want %v", i, got.SimilarityScore, want.score)
		}
		if got.SharedInterests != want.shared {
			t.Errorf("PotentialFriends[%d].SharedInterests = %d, want %d", i, got.SharedInterests, want.shared)
		}
	}

	// Candidate posts for user_1 are 4, 6, 7, 8, 9:
	//   post_4: 0.5 (user_2) + 0.25 (user_3) = 0.75 -> business_3
	//   post_6: 0.5 (user_2) + 0.5 (user_4)  = 1.0  -> business_3
	//   post_7, post_8: 0.25 each             -> business_4
	//   post_9: 0.5                           -> business_5
	wantBusinesses := []struct {
		id    string
		score float64
	}{
		{"business_3", 1.75},
		{"business_4", 0.5},
		{"business_5", 0.5},
	}
	if len(resp.RecommendedBusinesses) != len(wantBusinesses) {
		t.Fatalf("len(RecommendedBusinesses) = %d, want %d", len(resp.RecommendedBusinesses), len(wantBusinesses))
	}
	for i, want := range wantBusinesses {
		got := resp.RecommendedBusinesses[i]
		if got.Business.ID != want.id {
			t.Errorf("RecommendedBusinesses[%d].Business.ID = %q, want %q", i, got.Business.ID, want.id)
		}
		if math.Abs(got.RecommendationScore-want.score) > 1e-9 {
			t.Errorf("RecommendedBusinesses[%d].RecommendationScore = %v, want %v", i, got.RecommendationScore, want.score)
		}
		if got.Business.Name == "" || got.Business.Category == "" {
			t.Errorf("RecommendedBusinesses[%d] missing metadata: %+v", i, got.Business)
		}
	}

	if got := resp.RecommendedBusinesses[0].Reason; got != "2 posts liked by users with similar taste" {
		t.Errorf("Reason = %q", got)
	}
	if got := resp.RecommendedBusinesses[2].Reason; got != "1 post liked by users with similar taste" {
		t.Errorf("Reason = %q", got)
	}
}

func TestGetRecommendations_ExcludesSelfAndLiked(t *testing.T) {
	svc := NewRecommendationService(fixtureStore(), zap.NewNop())

	resp, err := svc.GetRecommendations(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	for _, friend := range resp.PotentialFriends {
		if friend.UserID == "user_1" {
			t.Error("requester appears in its own potentialFriends")
		}
	}

	// Every post of business_1 and business_2 is already liked by user_1,
	// so neither may receive any contribution.
	for _, rec := range resp.RecommendedBusinesses {
		if rec.Business.ID == "business_1" || rec.Business.ID == "business_2" {
			t.Errorf("business %s built only from already-liked posts was recommended", rec.Business.ID)
		}
	}
}

func TestGetRecommendations_NoLikes(t *testing.T) {
	store := fixtureStore()
	svc := NewRecommendationService(store, zap.NewNop())

	resp, err := svc.GetRecommendations(context.Background(), "user_without_likes")
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	if !resp.Success {
		t.Error("Success = false, want true for the no-likes path")
	}
	if resp.Message == "" {
		t.Error("Message is empty, want explanatory text")
	}
	if len(resp.PotentialFriends) != 0 {
		t.Errorf("len(PotentialFriends) = %d, want 0", len(resp.PotentialFriends))
	}
	if len(resp.RecommendedBusinesses) != 0 {
		t.Errorf("len(RecommendedBusinesses) = %d, want 0", len(resp.RecommendedBusinesses))
	}
	if resp.PotentialFriends == nil || resp.RecommendedBusinesses == nil {
		t.Error("empty result arrays must be non-nil so they serialize as []")
	}
}

func TestGetRecommendations_Truncation(t *testing.T) {
	store := NewMemoryStore()

	// Shared anchor post so every user has positive similarity with the
	// requester, plus one unique post per user pointing at its own
	// business: 25 candidate businesses from 25 similar users.
	store.AddBusiness("business_anchor", "Anchor", "anchor")
	store.AddPost("post_anchor", "business_anchor")
	store.AddLike("requester", "post_anchor")

	for i := 0; i < 25; i++ {
		user := fmt.Sprintf("user_%02d", i)
		post := fmt.Sprintf("post_%02d", i)
		business := fmt.Sprintf("business_%02d", i)

		store.AddBusiness(business, fmt.Sprintf("Business %02d", i), "misc")
		store.AddPost(post, business)
		store.AddLike(user, "post_anchor")
		store.AddLike(user, post)
	}

	svc := NewRecommendationService(store, zap.NewNop())

	resp, err := svc.GetRecommendations(context.Background(), "requester")
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	if resp.TotalSimilarUsers != 25 {
		t.Errorf("TotalSimilarUsers = %d, want 25", resp.TotalSimilarUsers)
	}
	if len(resp.PotentialFriends) != 10 {
		t.Errorf("len(PotentialFriends) = %d, want 10", len(resp.PotentialFriends))
	}
	if len(resp.RecommendedBusinesses) > 20 {
		t.Errorf("len(RecommendedBusinesses) = %d, want <= 20", len(resp.RecommendedBusinesses))
	}

	// Only the top-10 similar users may contribute, one business each
	if len(resp.RecommendedBusinesses) != 10 {
		t.Errorf("len(RecommendedBusinesses) = %d, want 10", len(resp.RecommendedBusinesses))
	}

	if !sort.SliceIsSorted(resp.PotentialFriends, func(i, j int) bool {
		return resp.PotentialFriends[i].SimilarityScore > resp.PotentialFriends[j].SimilarityScore
	}) {
		// Equal scores are fine as long as nothing increases
		for i := 1; i < len(resp.PotentialFriends); i++ {
			if resp.PotentialFriends[i].SimilarityScore > resp.PotentialFriends[i-1].SimilarityScore {
				t.Error("PotentialFriends not sorted by descending similarity")
				break
			}
		}
	}
	for i := 1; i < len(resp.RecommendedBusinesses); i++ {
		if resp.RecommendedBusinesses[i].RecommendationScore > resp.RecommendedBusinesses[i-1].RecommendationScore {
			t.Error("RecommendedBusinesses not sorted by descending score")
			break
		}
	}
}

func TestGetRecommendations_Deterministic(t *testing.T) {
	svc := NewRecommendationService(fixtureStore(), zap.NewNop())

	first, err := svc.GetRecommendations(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	for i := 0; i < 20; i++ {
		again, err := svc.GetRecommendations(context.Background(), "user_1")
		if err != nil {
			t.Fatalf("GetRecommendations() error = %v", err)
		}
		for j := range first.PotentialFriends {
			if again.PotentialFriends[j] != first.PotentialFriends[j] {
				t.Fatalf("run %d: PotentialFriends[%d] = %+v, want %+v",
					i, j, again.PotentialFriends[j], first.PotentialFriends[j])
			}
		}
		for j := range first.RecommendedBusinesses {
			if again.RecommendedBusinesses[j] != first.RecommendedBusinesses[j] {
				t.Fatalf("run %d: RecommendedBusinesses[%d] = %+v, want %+v",
					i, j, again.RecommendedBusinesses[j], first.RecommendedBusinesses[j])
			}
		}
	}
}

// failingStore returns an error from every read.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) LikesOf(context.Context, string) (map[string]struct{}, error) {
	return nil, errStoreDown
}

func (failingStore) AllUsers(context.Context) (map[string]map[string]struct{}, error) {
	return nil, errStoreDown
}

func (failingStore) BusinessOf(context.Context, string) (string, bool, error) {
	return "", false, errStoreDown
}

func (failingStore) BusinessMetadata(context.Context, string) (string, string, error) {
	return "", "", errStoreDown
}

func TestGetRecommendations_StoreFailure(t *testing.T) {
	svc := NewRecommendationService(failingStore{}, zap.NewNop())

	resp, err := svc.GetRecommendations(context.Background(), "user_1")
	if err == nil {
		t.Fatal("GetRecommendations() error = nil, want store failure")
	}
	if !errors.Is(err, errStoreDown) {
		t.Errorf("error = %v, want wrapped errStoreDown", err)
	}
	if resp != nil {
		t.Errorf("resp = %+v, want nil on failure", resp)
	}
}
