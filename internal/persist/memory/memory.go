// Package memory is the in-process persistence backend: the blob lives in a
// map keyed by record name, mirroring the shape of the real key-value
// backends. Useful for tests and for running without any infrastructure.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte
	name  string
}

func New(name string) *Store {
	return &Store{blobs: make(map[string][]byte), name: name}
}

func (s *Store) Save(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.blobs[s.name] = cp
	return nil
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[s.name]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

func (s *Store) Close() error {
	return nil
}

// Seed installs a blob directly, bypassing Save. Test helper.
func (s *Store) Seed(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[s.name] = payload
}
