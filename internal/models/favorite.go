package models

import "sync"

// FavoriteStore holds saved location snapshots. Append-only, no dedup.
type FavoriteStore struct {
	mu   sync.RWMutex
	data []LocationPoint
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{data: make([]LocationPoint, 0)}
}

func (f *FavoriteStore) Add(p LocationPoint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = append(f.data, p)
}

func (f *FavoriteStore) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.data)
}

func (f *FavoriteStore) Points() []LocationPoint {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]LocationPoint, len(f.data))
	copy(out, f.data)
	return out
}
