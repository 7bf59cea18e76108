package dataset

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// LoadFunc builds a fresh snapshot from the raw source.
type LoadFunc func(ctx context.Context) (*Dataset, error)

// Store owns the current snapshot. A successful load replaces the snapshot
// atomically; readers never see a partially built dataset. When no snapshot
// is held (startup load failed or never ran), the next read triggers one
// reload, with concurrent triggers coalesced into a single in-flight load.
type Store struct {
	loader  LoadFunc
	current atomic.Pointer[Dataset]
	flight  singleflight.Group
}

// NewStore wires a store to its loader. No load happens here.
func NewStore(loader LoadFunc) *Store {
	return &Store{loader: loader}
}

// Load runs the pipeline once and publishes the result. Used at startup;
// on failure the store keeps running with no snapshot.
func (s *Store) Load(ctx context.Context) (*Dataset, error) {
	ds, err := s.loader(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(ds)
	return ds, nil
}

// Loaded reports whether a snapshot is currently published.
func (s *Store) Loaded() bool {
	return s.current.Load() != nil
}

// Dataset returns the current snapshot, lazily loading it if none is held.
// A failed lazy load returns the load error to every coalesced caller and
// leaves the store empty for the next attempt.
func (s *Store) Dataset(ctx context.Context) (*Dataset, error) {
	if ds := s.current.Load(); ds != nil {
		return ds, nil
	}

	v, err, _ := s.flight.Do("load", func() (any, error) {
		if ds := s.current.Load(); ds != nil {
			return ds, nil
		}
		return s.Load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}
