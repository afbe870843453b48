package service

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory InteractionStore. It backs tests and local
// fixtures; the Postgres-backed store lives in the repository package.
type MemoryStore struct {
	mu         sync.RWMutex
	likes      map[string]map[string]struct{} // userID -> set of postIDs
	postOwner  map[string]string              // postID -> businessID
	businesses map[string][2]string           // businessID -> {name, category}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		likes:      make(map[string]map[string]struct{}),
		postOwner:  make(map[string]string),
		businesses: make(map[string][2]string),
	}
}

func (m *MemoryStore) AddBusiness(businessID, name, category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.businesses[businessID] = [2]string{name, category}
}

func (m *MemoryStore) AddPost(postID, businessID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postOwner[postID] = businessID
}

func (m *MemoryStore) AddLike(userID, postID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.likes[userID] == nil {
		m.likes[userID] = make(map[string]struct{})
	}
	m.likes[userID][postID] = struct{}{}
}

func (m *MemoryStore) LikesOf(ctx context.Context, userID string) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	likes := make(map[string]struct{}, len(m.likes[userID]))
	for post := range m.likes[userID] {
		likes[post] = struct{}{}
	}
	return likes, nil
}

func (m *MemoryStore) AllUsers(ctx context.Context) (map[string]map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(map[string]map[string]struct{}, len(m.likes))
	for userID, set := range m.likes {
		copied := make(map[string]struct{}, len(set))
		for post := range set {
			copied[post] = struct{}{}
		}
		snapshot[userID] = copied
	}
	return snapshot, nil
}

func (m *MemoryStore) BusinessOf(ctx context.Context, postID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	businessID, ok := m.postOwner[postID]
	return businessID, ok, nil
}

func (m *MemoryStore) BusinessMetadata(ctx context.Context, businessID string) (string, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meta, ok := m.businesses[businessID]
	if !ok {
		return "", "", fmt.Errorf("unknown business %s", businessID)
	}
	return meta[0], meta[1], nil
}

var _ InteractionStore = (*MemoryStore)(nil)
