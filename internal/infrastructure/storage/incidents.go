package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"safetylog/internal/domain/incident"
	"safetylog/internal/infrastructure/kvstore"

	"golang.org/x/exp/slog"
)

// IncidentRepository holds the ordered record collection in memory and
// mirrors every mutation into the kv store under KeyIncidents. It is the
// sole owner of the records: all reads hand out copies.
type IncidentRepository struct {
	mu    sync.Mutex
	kv    kvstore.Store
	log   *slog.Logger
	items []incident.Incident
}

// NewIncidentRepository rehydrates the collection from the store.
// Unparseable persisted text degrades to an empty collection: local
// storage is best effort and must never take the process down.
func NewIncidentRepository(kv kvstore.Store, log *slog.Logger) (*IncidentRepository, error) {
	r := &IncidentRepository{
		kv:  kv,
		log: log.With("component", "incident_repository"),
	}

	raw, found, err := kv.Get(kvstore.KeyIncidents)
	if err != nil {
		return nil, fmt.Errorf("load incidents: %w", err)
	}
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &r.items); err != nil {
			r.log.Warn("stored incidents are malformed, starting empty", "error", err)
			r.items = nil
		}
	}
	return r, nil
}

func (r *IncidentRepository) List(_ context.Context) ([]incident.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]incident.Incident, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *IncidentRepository) Get(_ context.Context, id int64) (*incident.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			inc := r.items[i]
			return &inc, nil
		}
	}
	return nil, incident.ErrNotFound
}

// Create assigns the id from the record's creation instant in unix
// milliseconds, bumping by one until unique, and appends in insertion
// order.
func (r *IncidentRepository) Create(_ context.Context, inc *incident.Incident) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := inc.Timestamp.UnixMilli()
	for r.taken(id) {
		id++
	}
	inc.ID = id

	r.items = append(r.items, *inc)
	if err := r.save(); err != nil {
		r.items = r.items[:len(r.items)-1]
		return 0, err
	}
	return id, nil
}

func (r *IncidentRepository) Update(_ context.Context, inc *incident.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == inc.ID {
			prev := r.items[i]
			r.items[i] = *inc
			if err := r.save(); err != nil {
				r.items[i] = prev
				return err
			}
			return nil
		}
	}
	return incident.ErrNotFound
}

func (r *IncidentRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			r.items = append(r.items[:i], r.items[i+1:]...)
			if err := r.save(); err != nil {
				r.items = append(r.items[:i], append([]incident.Incident{removed}, r.items[i:]...)...)
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *IncidentRepository) taken(id int64) bool {
	for i := range r.items {
		if r.items[i].ID == id {
			return true
		}
	}
	return false
}

// save persists the whole collection synchronously. Caller holds the lock.
func (r *IncidentRepository) save() error {
	data, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("marshal incidents: %w", err)
	}
	if err := r.kv.Set(kvstore.KeyIncidents, string(data)); err != nil {
		return fmt.Errorf("persist incidents: %w", err)
	}
	return nil
}
