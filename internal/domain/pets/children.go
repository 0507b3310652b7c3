package pets

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout es el formato de fechas civiles en la API.
const DateLayout = "2006-01-02"

// VaccineApplication registra una vacuna aplicada. NextDoseOn cero = sin refuerzo.
type VaccineApplication struct {
	ID           uuid.UUID
	VaccineName  string
	AppliedOn    time.Time
	NextDoseOn   time.Time
	BatchNumber  string
	Veterinarian string
	Notes        string
}

// DewormerApplication registra una desparasitación.
type DewormerApplication struct {
	ID          uuid.UUID
	ProductName string
	AppliedOn   time.Time
	NextDoseOn  time.Time
	Dose        string
	WeightKg    float64
	Notes       string
}

// ReminderKind clasifica un recordatorio.
// @Enum VACCINE, DEWORMER, CHECKUP, OTHER
type ReminderKind string

const (
	ReminderKindVaccine  ReminderKind = "VACCINE"
	ReminderKindDewormer ReminderKind = "DEWORMER"
	ReminderKindCheckup  ReminderKind = "CHECKUP"
	ReminderKindOther    ReminderKind = "OTHER"
)

func (k ReminderKind) Valid() bool {
	switch k {
	case ReminderKindVaccine, ReminderKindDewormer, ReminderKindCheckup, ReminderKindOther:
		return true
	}
	return false
}

// Reminder es un aviso con fecha. Solo se guarda: no hay envío de notificaciones.
type Reminder struct {
	ID    uuid.UUID
	Kind  ReminderKind
	Title string
	DueOn time.Time
	Notes string
}

type VaccineInput struct {
	VaccineName  string
	AppliedOn    time.Time
	NextDoseOn   *time.Time
	BatchNumber  string
	Veterinarian string
	Notes        string
}

func NewVaccineApplication(in VaccineInput, now time.Time) (*VaccineApplication, error) {
	var missing []string
	if strings.TrimSpace(in.VaccineName) == "" {
		missing = append(missing, "vaccine_name")
	}
	if in.AppliedOn.IsZero() {
		missing = append(missing, "applied_on")
	}
	if len(missing) > 0 {
		return nil, &FieldRequiredError{Entity: "vaccine_application", Fields: missing}
	}

	applied, next, err := applicationDates(in.AppliedOn, in.NextDoseOn, now)
	if err != nil {
		return nil, err
	}

	return &VaccineApplication{
		ID:           uuid.New(),
		VaccineName:  strings.TrimSpace(in.VaccineName),
		AppliedOn:    applied,
		NextDoseOn:   next,
		BatchNumber:  strings.TrimSpace(in.BatchNumber),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Notes:        in.Notes,
	}, nil
}

type DewormerInput struct {
	ProductName string
	AppliedOn   time.Time
	NextDoseOn  *time.Time
	Dose        string
	WeightKg    float64
	Notes       string
}

func NewDewormerApplication(in DewormerInput, now time.Time) (*DewormerApplication, error) {
	var missing []string
	if strings.TrimSpace(in.ProductName) == "" {
		missing = append(missing, "product_name")
	}
	if in.AppliedOn.IsZero() {
		missing = append(missing, "applied_on")
	}
	if len(missing) > 0 {
		return nil, &FieldRequiredError{Entity: "dewormer_application", Fields: missing}
	}
	if in.WeightKg < 0 {
		return nil, ErrNegativeWeight
	}

	applied, next, err := applicationDates(in.AppliedOn, in.NextDoseOn, now)
	if err != nil {
		return nil, err
	}

	return &DewormerApplication{
		ID:          uuid.New(),
		ProductName: strings.TrimSpace(in.ProductName),
		AppliedOn:   applied,
		NextDoseOn:  next,
		Dose:        strings.TrimSpace(in.Dose),
		WeightKg:    in.WeightKg,
		Notes:       in.Notes,
	}, nil
}

type ReminderInput struct {
	Kind  ReminderKind
	Title string
	DueOn time.Time
	Notes string
}

// NewReminder no limita DueOn: un recordatorio vencido sigue siendo válido.
func NewReminder(in ReminderInput) (*Reminder, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if in.DueOn.IsZero() {
		missing = append(missing, "due_on")
	}
	if len(missing) > 0 {
		return nil, &FieldRequiredError{Entity: "reminder", Fields: missing}
	}

	kind := in.Kind
	if kind == "" {
		kind = ReminderKindOther
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReminderKind, in.Kind)
	}

	return &Reminder{
		ID:    uuid.New(),
		Kind:  kind,
		Title: strings.TrimSpace(in.Title),
		DueOn: dateOf(in.DueOn),
		Notes: in.Notes,
	}, nil
}

func applicationDates(appliedOn time.Time, nextDose *time.Time, now time.Time) (time.Time, time.Time, error) {
	applied := dateOf(appliedOn)
	if applied.After(dateOf(now)) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: applied_on %s", ErrDateInFuture, applied.Format(DateLayout))
	}

	var next time.Time
	if nextDose != nil && !nextDose.IsZero() {
		next = dateOf(*nextDose)
		if next.Before(applied) {
			return time.Time{}, time.Time{}, ErrNextDoseBeforeApplication
		}
	}
	return applied, next, nil
}
