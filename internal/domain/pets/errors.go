package pets

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrFieldRequired             = errors.New("required field missing")
	ErrBirthDateInFuture         = errors.New("birth date is in the future")
	ErrDateInFuture              = errors.New("date is in the future")
	ErrNextDoseBeforeApplication = errors.New("next dose date is before application date")
	ErrInvalidReminderKind       = errors.New("invalid reminder kind")
	ErrNegativeWeight            = errors.New("weight must not be negative")

	ErrNotFound         = errors.New("pet not found")
	ErrMicrochipTaken   = errors.New("microchip number already registered")
	ErrConcurrentUpdate = errors.New("pet was modified concurrently")
	ErrGuardianNotFound = errors.New("guardian not found")
	ErrGuardianLookup   = errors.New("guardian lookup failed")
)

// FieldRequiredError lista los campos obligatorios ausentes.
type FieldRequiredError struct {
	Entity string
	Fields []string
}

func (e *FieldRequiredError) Error() string {
	return fmt.Sprintf("%s: required fields missing: %s", e.Entity, strings.Join(e.Fields, ", "))
}

func (e *FieldRequiredError) Unwrap() error { return ErrFieldRequired }

type BirthDateInFutureError struct {
	BirthDate time.Time
	Today     time.Time
}

func (e *BirthDateInFutureError) Error() string {
	return fmt.Sprintf("birth date %s is after today %s",
		e.BirthDate.Format(DateLayout), e.Today.Format(DateLayout))
}

func (e *BirthDateInFutureError) Unwrap() error { return ErrBirthDateInFuture }
