// Package snapshot holds the derived dataset the API serves. A reload
// re-reads the source, re-derives everything from scratch and swaps the
// result in atomically; readers never observe a partial dataset.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/albapepper/mlb-payroll/internal/dataset"
	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// Snapshot is one immutable derivation of the dataset.
type Snapshot struct {
	Dataset    *payroll.Dataset
	Source     string
	LoadedAt   time.Time
	Generation uint64
}

// Status describes the store for health checks.
type Status struct {
	Loaded      bool      `json:"loaded"`
	Source      string    `json:"source"`
	Generation  uint64    `json:"generation"`
	LoadedAt    time.Time `json:"loaded_at,omitzero"`
	Records     int       `json:"records"`
	Teams       int       `json:"teams"`
	Years       []int     `json:"years"`
	LastAttempt time.Time `json:"last_attempt,omitzero"`
	LastError   string    `json:"last_error,omitempty"`
}

// Store owns the current snapshot.
type Store struct {
	src    dataset.Source
	logger *slog.Logger

	current atomic.Pointer[Snapshot]

	// mu serializes reloads and guards the fields below.
	mu          sync.Mutex
	generation  uint64
	lastAttempt time.Time
	lastErr     error
	hooks       []func(*Snapshot)
}

// New creates an empty store. Call Reload to load the first snapshot.
func New(src dataset.Source, logger *slog.Logger) *Store {
	return &Store{src: src, logger: logger}
}

// Current returns the loaded snapshot, or nil before the first successful load.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// OnReload registers fn to run after every successful swap.
func (s *Store) OnReload(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Reload loads and derives a fresh snapshot. On failure the previous
// snapshot stays in place and the error is returned.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.lastAttempt = start

	snap, err := s.build(ctx)
	if err != nil {
		s.lastErr = err
		s.logger.Error("Dataset reload failed", "source", s.src.String(), "error", err)
		return nil, err
	}

	s.generation++
	snap.Generation = s.generation
	s.current.Store(snap)
	s.lastErr = nil

	s.logger.Info("Dataset loaded",
		"source", snap.Source,
		"generation", snap.Generation,
		"records", len(snap.Dataset.Records),
		"teams", len(snap.Dataset.Teams),
		"years", len(snap.Dataset.Years()),
		"duration", time.Since(start).Round(time.Millisecond))

	for _, fn := range s.hooks {
		fn(snap)
	}
	return snap, nil
}

func (s *Store) build(ctx context.Context) (*Snapshot, error) {
	raw, err := s.src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.src, err)
	}
	ds, err := payroll.DeriveAll(raw)
	if err != nil {
		return nil, fmt.Errorf("derive %s: %w", s.src, err)
	}
	return &Snapshot{Dataset: ds, Source: s.src.String(), LoadedAt: time.Now().UTC()}, nil
}

// Status reports what is loaded and the outcome of the last attempt.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Source: s.src.String(), LastAttempt: s.lastAttempt, Years: []int{}}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if snap := s.current.Load(); snap != nil {
		st.Loaded = true
		st.Generation = snap.Generation
		st.LoadedAt = snap.LoadedAt
		st.Records = len(snap.Dataset.Records)
		st.Teams = len(snap.Dataset.Teams)
		st.Years = snap.Dataset.Years()
	}
	return st
}
