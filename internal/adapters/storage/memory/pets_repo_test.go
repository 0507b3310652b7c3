package memory_test

import (
	"context"
	"testing"
	"time"

	"vet-clinic-backend/internal/adapters/storage/memory"
	"vet-clinic-backend/internal/domain/pets"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(chip *string) pets.State {
	return pets.State{
		ID:              uuid.New(),
		GuardianID:      uuid.New(),
		Name:            "Rex",
		BirthDate:       time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
		Breed:           "Labrador",
		Sex:             pets.SexMale,
		MicrochipNumber: chip,
	}
}

func chip(s string) *string { return &s }

func TestPetRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	s := newState(chip("CHIP-1"))
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Name, got.Name)
	assert.NotNil(t, got.CreatedAt)
	assert.NotNil(t, got.UpdatedAt)
	assert.Zero(t, got.Version)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetRepo_MicrochipUnique(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	require.NoError(t, repo.Create(ctx, newState(chip("CHIP-1"))))
	assert.ErrorIs(t, repo.Create(ctx, newState(chip("CHIP-1"))), pets.ErrMicrochipTaken)

	// sin microchip no hay conflicto
	require.NoError(t, repo.Create(ctx, newState(nil)))
	require.NoError(t, repo.Create(ctx, newState(nil)))

	other := newState(chip("CHIP-2"))
	require.NoError(t, repo.Create(ctx, other))
	other.MicrochipNumber = chip("CHIP-1")
	assert.ErrorIs(t, repo.Update(ctx, other), pets.ErrMicrochipTaken)
}

func TestPetRepo_UpdateVersioning(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	s := newState(nil)
	require.NoError(t, repo.Create(ctx, s))

	loaded, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)

	loaded.Breed = "Poodle"
	require.NoError(t, repo.Update(ctx, loaded))

	// misma versión leída otra vez: conflicto
	loaded.Breed = "Golden"
	assert.ErrorIs(t, repo.Update(ctx, loaded), pets.ErrConcurrentUpdate)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Poodle", got.Breed)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, loaded.CreatedAt, got.CreatedAt)

	assert.ErrorIs(t, repo.Update(ctx, newState(nil)), pets.ErrNotFound)
}

func TestPetRepo_ChildrenAppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	s := newState(nil)
	require.NoError(t, repo.Create(ctx, s))

	loaded, _ := repo.GetByID(ctx, s.ID)
	first := pets.Reminder{ID: uuid.New(), Title: "uno"}
	loaded.Reminders = append(loaded.Reminders, first)
	require.NoError(t, repo.Update(ctx, loaded))

	loaded, _ = repo.GetByID(ctx, s.ID)
	loaded.Reminders[0].Title = "editado"
	loaded.Reminders = append(loaded.Reminders, pets.Reminder{ID: uuid.New(), Title: "dos"})
	require.NoError(t, repo.Update(ctx, loaded))

	got, _ := repo.GetByID(ctx, s.ID)
	require.Len(t, got.Reminders, 2)
	assert.Equal(t, "uno", got.Reminders[0].Title)
	assert.Equal(t, "dos", got.Reminders[1].Title)
}

func TestPetRepo_ListDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	a := newState(nil)
	b := newState(nil)
	b.GuardianID = a.GuardianID
	c := newState(nil)
	for _, s := range []pets.State{a, b, c} {
		require.NoError(t, repo.Create(ctx, s))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.ListByGuardian(ctx, a.GuardianID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), pets.ErrNotFound)

	mine, _ = repo.ListByGuardian(ctx, a.GuardianID)
	assert.Len(t, mine, 1)
}

func TestPetRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPetRepo()

	s := newState(chip("CHIP-9"))
	require.NoError(t, repo.Create(ctx, s))

	got, _ := repo.GetByID(ctx, s.ID)
	*got.MicrochipNumber = "tampered"

	again, _ := repo.GetByID(ctx, s.ID)
	assert.Equal(t, "CHIP-9", *again.MicrochipNumber)
}
