package postgres

import (
	"context"
	"errors"
	"time"

	"vet-clinic-backend/internal/domain/pets"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PetsRepo struct {
	db  *gorm.DB
	now func() time.Time
}

var _ pets.Repository = (*PetsRepo)(nil)

func NewPetsRepo(db *gorm.DB) *PetsRepo {
	return &PetsRepo{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *PetsRepo) Create(ctx context.Context, s pets.State) error {
	now := r.now()
	row := toPetRow(s)
	row.CreatedAt = now
	row.UpdatedAt = now
	row.Version = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		return insertChildren(tx, s)
	})
	return translateErr(err)
}

// Update guarda si la versión coincide con la leída (s.Version) y la incrementa.
// Los hijos son de solo agregado: se insertan los nuevos, los existentes no se tocan.
func (r *PetsRepo) Update(ctx context.Context, s pets.State) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&petRow{}).
			Where("pet_id = ? AND version = ?", s.ID, s.Version).
			Updates(map[string]any{
				"guardian_id":      s.GuardianID,
				"name":             s.Name,
				"birth_date":       s.BirthDate,
				"breed":            s.Breed,
				"sex":              string(s.Sex),
				"is_castrated":     s.IsCastrated,
				"microchip_number": s.MicrochipNumber,
				"history":          s.History,
				"updated_at":       r.now(),
				"version":          gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&petRow{}).Where("pet_id = ?", s.ID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return pets.ErrNotFound
			}
			return pets.ErrConcurrentUpdate
		}

		return insertChildren(tx, s)
	})
	return translateErr(err)
}

func (r *PetsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hijos primero: sqlite no aplica ON DELETE CASCADE sin PRAGMA foreign_keys.
		for _, child := range []any{&vaccineRow{}, &dewormerRow{}, &reminderRow{}} {
			if err := tx.Where("pet_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		res := tx.Where("pet_id = ?", id).Delete(&petRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return pets.ErrNotFound
		}
		return nil
	})
}

func (r *PetsRepo) GetByID(ctx context.Context, id uuid.UUID) (pets.State, error) {
	var row petRow
	err := withChildren(r.db.WithContext(ctx)).
		Where("pet_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pets.State{}, pets.ErrNotFound
		}
		return pets.State{}, err
	}
	return toState(row), nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.State, error) {
	var rows []petRow
	err := withChildren(r.db.WithContext(ctx)).
		Order("created_at ASC, pet_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toStates(rows), nil
}

func (r *PetsRepo) ListByGuardian(ctx context.Context, guardianID uuid.UUID) ([]pets.State, error) {
	var rows []petRow
	err := withChildren(r.db.WithContext(ctx)).
		Where("guardian_id = ?", guardianID).
		Order("created_at ASC, pet_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toStates(rows), nil
}

func withChildren(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }
	return db.
		Preload("Vaccines", byPosition).
		Preload("Dewormers", byPosition).
		Preload("Reminders", byPosition)
}

func insertChildren(tx *gorm.DB, s pets.State) error {
	ins := func() *gorm.DB { return tx.Clauses(clause.OnConflict{DoNothing: true}) }

	if rows := toVaccineRows(s); len(rows) > 0 {
		if err := ins().Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := toDewormerRows(s); len(rows) > 0 {
		if err := ins().Create(&rows).Error; err != nil {
			return err
		}
	}
	if rows := toReminderRows(s); len(rows) > 0 {
		if err := ins().Create(&rows).Error; err != nil {
			return err
		}
	}
	return nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pets.ErrMicrochipTaken
	}
	return err
}

// Mapeos fila <-> estado

func toPetRow(s pets.State) petRow {
	return petRow{
		ID:              s.ID,
		GuardianID:      s.GuardianID,
		Name:            s.Name,
		BirthDate:       s.BirthDate,
		Breed:           s.Breed,
		Sex:             string(s.Sex),
		IsCastrated:     s.IsCastrated,
		MicrochipNumber: s.MicrochipNumber,
		History:         s.History,
		Version:         s.Version,
	}
}

func toVaccineRows(s pets.State) []vaccineRow {
	out := make([]vaccineRow, 0, len(s.VaccineApplications))
	for i, v := range s.VaccineApplications {
		out = append(out, vaccineRow{
			ID:           v.ID,
			PetID:        s.ID,
			Position:     i,
			VaccineName:  v.VaccineName,
			AppliedOn:    v.AppliedOn,
			NextDoseOn:   optionalDate(v.NextDoseOn),
			BatchNumber:  v.BatchNumber,
			Veterinarian: v.Veterinarian,
			Notes:        v.Notes,
		})
	}
	return out
}

func toDewormerRows(s pets.State) []dewormerRow {
	out := make([]dewormerRow, 0, len(s.DewormerApplications))
	for i, d := range s.DewormerApplications {
		out = append(out, dewormerRow{
			ID:          d.ID,
			PetID:       s.ID,
			Position:    i,
			ProductName: d.ProductName,
			AppliedOn:   d.AppliedOn,
			NextDoseOn:  optionalDate(d.NextDoseOn),
			Dose:        d.Dose,
			WeightKg:    d.WeightKg,
			Notes:       d.Notes,
		})
	}
	return out
}

func toReminderRows(s pets.State) []reminderRow {
	out := make([]reminderRow, 0, len(s.Reminders))
	for i, rm := range s.Reminders {
		out = append(out, reminderRow{
			ID:       rm.ID,
			PetID:    s.ID,
			Position: i,
			Kind:     string(rm.Kind),
			Title:    rm.Title,
			DueOn:    rm.DueOn,
			Notes:    rm.Notes,
		})
	}
	return out
}

func toStates(rows []petRow) []pets.State {
	out := make([]pets.State, 0, len(rows))
	for _, row := range rows {
		out = append(out, toState(row))
	}
	return out
}

func toState(row petRow) pets.State {
	createdAt := row.CreatedAt.UTC()
	updatedAt := row.UpdatedAt.UTC()

	s := pets.State{
		ID:              row.ID,
		GuardianID:      row.GuardianID,
		Name:            row.Name,
		BirthDate:       row.BirthDate.UTC(),
		Breed:           row.Breed,
		Sex:             pets.Sex(row.Sex),
		IsCastrated:     row.IsCastrated,
		MicrochipNumber: row.MicrochipNumber,
		History:         row.History,
		CreatedAt:       &createdAt,
		UpdatedAt:       &updatedAt,
		Version:         row.Version,
	}

	for _, v := range row.Vaccines {
		s.VaccineApplications = append(s.VaccineApplications, pets.VaccineApplication{
			ID:           v.ID,
			VaccineName:  v.VaccineName,
			AppliedOn:    v.AppliedOn.UTC(),
			NextDoseOn:   dateOrZero(v.NextDoseOn),
			BatchNumber:  v.BatchNumber,
			Veterinarian: v.Veterinarian,
			Notes:        v.Notes,
		})
	}
	for _, d := range row.Dewormers {
		s.DewormerApplications = append(s.DewormerApplications, pets.DewormerApplication{
			ID:          d.ID,
			ProductName: d.ProductName,
			AppliedOn:   d.AppliedOn.UTC(),
			NextDoseOn:  dateOrZero(d.NextDoseOn),
			Dose:        d.Dose,
			WeightKg:    d.WeightKg,
			Notes:       d.Notes,
		})
	}
	for _, rm := range row.Reminders {
		s.Reminders = append(s.Reminders, pets.Reminder{
			ID:    rm.ID,
			Kind:  pets.ReminderKind(rm.Kind),
			Title: rm.Title,
			DueOn: rm.DueOn.UTC(),
			Notes: rm.Notes,
		})
	}
	return s
}

func optionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
