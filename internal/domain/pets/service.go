package pets

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"vet-clinic-backend/internal/platform/logger"
	"vet-clinic-backend/internal/ports/guardians"

	"github.com/google/uuid"
)

type Service struct {
	repo      Repository
	guardians guardians.Directory
	log       logger.Logger
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithGuardianDirectory habilita la verificación del tutor al crear. nil = sin verificación.
func WithGuardianDirectory(d guardians.Directory) Option {
	return func(s *Service) { s.guardians = d }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  logger.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Patch distingue "campo no enviado" de "campo enviado en null".
type Patch[T any] struct {
	Present bool
	Value   *T
}

type UpdateInput struct {
	Breed           *string
	MicrochipNumber Patch[string]
	History         Patch[string]
}

func (s *Service) Create(ctx context.Context, in CreateParams) (*Pet, error) {
	p, err := Create(in, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.checkGuardian(ctx, p.GuardianID()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p.Snapshot()); err != nil {
		return nil, err
	}

	s.log.Info("pet created", map[string]any{
		"pet_id":      p.ID().String(),
		"guardian_id": p.GuardianID().String(),
	})

	// Releer para devolver auditoría y versión asignadas por el store.
	return s.GetByID(ctx, p.ID())
}

func (s *Service) checkGuardian(ctx context.Context, guardianID uuid.UUID) error {
	if s.guardians == nil {
		return nil
	}
	ok, err := s.guardians.Exists(ctx, guardianID)
	if err != nil {
		s.log.Warn("guardian lookup failed", map[string]any{
			"guardian_id": guardianID.String(),
			"err":         err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrGuardianLookup, err)
	}
	if !ok {
		return ErrGuardianNotFound
	}
	return nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Pet, error) {
	return s.mutate(ctx, id, func(p *Pet) error {
		p.UpdateBreed(in.Breed)
		if in.MicrochipNumber.Present {
			p.UpdateMicrochipNumber(in.MicrochipNumber.Value)
		}
		if in.History.Present {
			p.UpdateHistory(in.History.Value)
		}
		return nil
	})
}

func (s *Service) AddVaccineApplication(ctx context.Context, id uuid.UUID, in VaccineInput) (*Pet, error) {
	v, err := NewVaccineApplication(in, s.now())
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *Pet) error {
		p.AddVaccineApplication(v)
		return nil
	})
}

func (s *Service) AddDewormerApplication(ctx context.Context, id uuid.UUID, in DewormerInput) (*Pet, error) {
	d, err := NewDewormerApplication(in, s.now())
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *Pet) error {
		p.AddDewormerApplication(d)
		return nil
	})
}

func (s *Service) AddReminder(ctx context.Context, id uuid.UUID, in ReminderInput) (*Pet, error) {
	r, err := NewReminder(in)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *Pet) error {
		p.AddReminder(r)
		return nil
	})
}

// mutate carga, aplica fn y guarda con la versión leída.
// Si fn no cambia nada no se escribe: version y updated_at quedan igual.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*Pet) error) (*Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := p.Snapshot()
	if err := fn(p); err != nil {
		return nil, err
	}
	if reflect.DeepEqual(before, p.Snapshot()) {
		return p, nil
	}
	if err := s.repo.Update(ctx, p.Snapshot()); err != nil {
		return nil, err
	}

	s.log.Debug("pet updated", map[string]any{
		"pet_id":  id.String(),
		"version": p.Version(),
	})

	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("pet deleted", map[string]any{"pet_id": id.String()})
	return nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Pet, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return Reconstitute(st, s.now())
}

func (s *Service) List(ctx context.Context) ([]*Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.reconstituteAll(items)
}

func (s *Service) ListByGuardian(ctx context.Context, guardianID uuid.UUID) ([]*Pet, error) {
	items, err := s.repo.ListByGuardian(ctx, guardianID)
	if err != nil {
		return nil, err
	}
	return s.reconstituteAll(items)
}

func (s *Service) reconstituteAll(items []State) ([]*Pet, error) {
	now := s.now()
	out := make([]*Pet, 0, len(items))
	for _, st := range items {
		p, err := Reconstitute(st, now)
		if err != nil {
			return nil, fmt.Errorf("pet %s: %w", st.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}
