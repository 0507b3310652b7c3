package guardians

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Directory=Directory"

// Directory consulta el servicio externo de tutores (dueños de mascotas).
// Las mascotas solo guardan el id del tutor; este puerto permite verificar que exista.
type Directory interface {
	Exists(ctx context.Context, guardianID uuid.UUID) (bool, error)
}
