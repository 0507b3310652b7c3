package memory

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"vet-clinic-backend/internal/domain/pets"

	"github.com/google/uuid"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]pets.State
	now  func() time.Time
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[uuid.UUID]pets.State),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *petRepo) Create(ctx context.Context, s pets.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == uuid.Nil {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("pet already exists")
	}
	if r.microchipTaken(s.ID, s.MicrochipNumber) {
		return pets.ErrMicrochipTaken
	}

	now := r.now()
	s = cloneState(s)
	s.CreatedAt = &now
	s.UpdatedAt = &now
	s.Version = 0

	r.byID[s.ID] = s
	return nil
}

// Update exige que s.Version sea la versión guardada; los hijos ya guardados no se reemplazan.
func (r *petRepo) Update(ctx context.Context, s pets.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[s.ID]
	if !exists {
		return pets.ErrNotFound
	}
	if current.Version != s.Version {
		return pets.ErrConcurrentUpdate
	}
	if r.microchipTaken(s.ID, s.MicrochipNumber) {
		return pets.ErrMicrochipTaken
	}

	now := r.now()
	next := cloneState(s)
	next.VaccineApplications = appendNew(current.VaccineApplications, s.VaccineApplications,
		func(v pets.VaccineApplication) uuid.UUID { return v.ID })
	next.DewormerApplications = appendNew(current.DewormerApplications, s.DewormerApplications,
		func(d pets.DewormerApplication) uuid.UUID { return d.ID })
	next.Reminders = appendNew(current.Reminders, s.Reminders,
		func(rm pets.Reminder) uuid.UUID { return rm.ID })
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = &now
	next.Version = current.Version + 1

	r.byID[s.ID] = next
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id uuid.UUID) (pets.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return pets.State{}, pets.ErrNotFound
	}
	return cloneState(s), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.State, error) {
	return r.filter(func(pets.State) bool { return true }), nil
}

func (r *petRepo) ListByGuardian(ctx context.Context, guardianID uuid.UUID) ([]pets.State, error) {
	return r.filter(func(s pets.State) bool { return s.GuardianID == guardianID }), nil
}

func (r *petRepo) filter(keep func(pets.State) bool) []pets.State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.State, 0)
	for _, s := range r.byID {
		if keep(s) {
			out = append(out, cloneState(s))
		}
	}

	// Orden estable por created_at asc, desempate por id.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if !a.Equal(*b) {
			return a.Before(*b)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// microchipTaken: llamar con el lock tomado.
func (r *petRepo) microchipTaken(self uuid.UUID, chip *string) bool {
	if chip == nil {
		return false
	}
	for id, s := range r.byID {
		if id != self && s.MicrochipNumber != nil && *s.MicrochipNumber == *chip {
			return true
		}
	}
	return false
}

func appendNew[T any](stored, incoming []T, id func(T) uuid.UUID) []T {
	out := slices.Clone(stored)
	seen := make(map[uuid.UUID]struct{}, len(stored))
	for _, item := range stored {
		seen[id(item)] = struct{}{}
	}
	for _, item := range incoming {
		if _, ok := seen[id(item)]; ok {
			continue
		}
		seen[id(item)] = struct{}{}
		out = append(out, item)
	}
	return out
}

func cloneState(s pets.State) pets.State {
	s.MicrochipNumber = clonePtr(s.MicrochipNumber)
	s.History = clonePtr(s.History)
	s.CreatedAt = clonePtr(s.CreatedAt)
	s.UpdatedAt = clonePtr(s.UpdatedAt)
	s.VaccineApplications = slices.Clone(s.VaccineApplications)
	s.DewormerApplications = slices.Clone(s.DewormerApplications)
	s.Reminders = slices.Clone(s.Reminders)
	return s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
