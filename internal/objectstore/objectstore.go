// Package objectstore abstracts image storage: accept the bytes, hand back
// a stable id and URL.
package objectstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"auction-platform/utils"
)

// Object is a stored file reference.
type Object struct {
	ID  string
	URL string
}

// Store accepts file content and returns a stable reference to it.
type Store interface {
	Save(name string, content []byte) (Object, error)
}

// DiskStore writes files under a local directory and serves them from a
// configured public base URL.
type DiskStore struct {
	dir  string
	base string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir, publicBase string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("objectstore: create %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, base: publicBase}, nil
}

// Save writes content under a generated id, keeping the original extension.
func (s *DiskStore) Save(name string, content []byte) (Object, error) {
	id := utils.GenerateID() + filepath.Ext(name)
	path := filepath.Join(s.dir, id)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return Object{}, fmt.Errorf("objectstore: write %s: %w", path, err)
	}
	return Object{ID: id, URL: s.base + "/" + id}, nil
}

// MemoryStore keeps objects in memory. For tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewMemoryStore creates an empty in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Save stores content under a generated id.
func (s *MemoryStore) Save(name string, content []byte) (Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := utils.GenerateID() + filepath.Ext(name)
	s.objects[id] = append([]byte(nil), content...)
	return Object{ID: id, URL: "mem://" + id}, nil
}
