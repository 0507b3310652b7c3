package pets

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Repository=Repository"

// Repository guarda fotos (State) del agregado.
// Update aplica bloqueo optimista sobre State.Version y solo agrega hijos nuevos.
type Repository interface {
	Create(ctx context.Context, s State) error
	Update(ctx context.Context, s State) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (State, error)
	List(ctx context.Context) ([]State, error)
	ListByGuardian(ctx context.Context, guardianID uuid.UUID) ([]State, error)
}
