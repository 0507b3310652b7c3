package pets

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sex define el sexo de la mascota.
// @Enum MALE, FEMALE
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Pet es el agregado raíz: paciente de la clínica con sus aplicaciones y recordatorios.
// No conoce HTTP ni base de datos. No es seguro para uso concurrente: una instancia por request.
type Pet struct {
	id         uuid.UUID
	guardianID uuid.UUID

	name        string
	birthDate   time.Time
	breed       string
	sex         Sex
	isCastrated bool

	microchipNumber *string
	history         *string

	vaccineApplications  []VaccineApplication
	dewormerApplications []DewormerApplication
	reminders            []Reminder

	// Auditoría: la completa la capa de persistencia.
	createdAt *time.Time
	updatedAt *time.Time
	version   int64
}

// CreateParams son los datos de alta. nil / uuid.Nil / "" representan "no enviado".
type CreateParams struct {
	GuardianID      uuid.UUID
	Name            *string
	BirthDate       *time.Time
	Breed           *string
	Sex             Sex
	IsCastrated     *bool
	MicrochipNumber *string
	History         *string
}

// State es la foto completa del agregado, tal como la guarda un repositorio.
type State struct {
	ID         uuid.UUID
	GuardianID uuid.UUID

	Name        string
	BirthDate   time.Time
	Breed       string
	Sex         Sex
	IsCastrated bool

	MicrochipNumber *string
	History         *string

	VaccineApplications  []VaccineApplication
	DewormerApplications []DewormerApplication
	Reminders            []Reminder

	CreatedAt *time.Time
	UpdatedAt *time.Time
	Version   int64
}

// Create valida campos obligatorios y fecha de nacimiento, y devuelve una mascota nueva
// (id generado, colecciones vacías, sin auditoría).
func Create(p CreateParams, now time.Time) (*Pet, error) {
	if missing := missingFields(p); len(missing) > 0 {
		return nil, &FieldRequiredError{Entity: "pet", Fields: missing}
	}

	birthDate := dateOf(*p.BirthDate)
	if today := dateOf(now); birthDate.After(today) {
		return nil, &BirthDateInFutureError{BirthDate: birthDate, Today: today}
	}

	return &Pet{
		id:              uuid.New(),
		guardianID:      p.GuardianID,
		name:            *p.Name,
		birthDate:       birthDate,
		breed:           *p.Breed,
		sex:             p.Sex,
		isCastrated:     *p.IsCastrated,
		microchipNumber: cloneString(p.MicrochipNumber),
		history:         cloneString(p.History),
	}, nil
}

// Reconstitute rearma una mascota ya persistida. Solo revalida la fecha de nacimiento;
// los obligatorios se asumen validados al crear.
func Reconstitute(s State, now time.Time) (*Pet, error) {
	var birthDate time.Time
	if !s.BirthDate.IsZero() {
		birthDate = dateOf(s.BirthDate)
		if today := dateOf(now); birthDate.After(today) {
			return nil, &BirthDateInFutureError{BirthDate: birthDate, Today: today}
		}
	}

	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Pet{
		id:                   id,
		guardianID:           s.GuardianID,
		name:                 s.Name,
		birthDate:            birthDate,
		breed:                s.Breed,
		sex:                  s.Sex,
		isCastrated:          s.IsCastrated,
		microchipNumber:      cloneString(s.MicrochipNumber),
		history:              cloneString(s.History),
		vaccineApplications:  slices.Clone(s.VaccineApplications),
		dewormerApplications: slices.Clone(s.DewormerApplications),
		reminders:            slices.Clone(s.Reminders),
		createdAt:            cloneTime(s.CreatedAt),
		updatedAt:            cloneTime(s.UpdatedAt),
		version:              s.Version,
	}, nil
}

func missingFields(p CreateParams) []string {
	var out []string
	if p.GuardianID == uuid.Nil {
		out = append(out, "guardian_id")
	}
	if p.Name == nil {
		out = append(out, "name")
	}
	if p.BirthDate == nil || p.BirthDate.IsZero() {
		out = append(out, "birth_date")
	}
	if p.Breed == nil || strings.TrimSpace(*p.Breed) == "" {
		out = append(out, "breed")
	}
	if p.Sex == "" {
		out = append(out, "sex")
	}
	if p.IsCastrated == nil {
		out = append(out, "is_castrated")
	}
	return out
}

// Métodos de dominio

func (p *Pet) UpdateBreed(breed *string) {
	if breed == nil || strings.TrimSpace(*breed) == "" {
		return
	}
	p.breed = *breed
}

func (p *Pet) UpdateMicrochipNumber(v *string) {
	p.microchipNumber = cloneString(v)
}

func (p *Pet) UpdateHistory(v *string) {
	p.history = cloneString(v)
}

func (p *Pet) AddVaccineApplication(v *VaccineApplication) {
	if v == nil {
		return
	}
	p.vaccineApplications = append(p.vaccineApplications, *v)
}

func (p *Pet) AddDewormerApplication(d *DewormerApplication) {
	if d == nil {
		return
	}
	p.dewormerApplications = append(p.dewormerApplications, *d)
}

func (p *Pet) AddReminder(r *Reminder) {
	if r == nil {
		return
	}
	p.reminders = append(p.reminders, *r)
}

// CalculateAgeInYears devuelve años cumplidos a la fecha de now (no días/365).
func (p *Pet) CalculateAgeInYears(now time.Time) int {
	return yearsBetween(p.birthDate, dateOf(now))
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// Equal compara por identidad. Dos mascotas sin id nunca son iguales entre sí.
func (p *Pet) Equal(other *Pet) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.id == uuid.Nil || other.id == uuid.Nil {
		return false
	}
	return p.id == other.id
}

// Getters (solo lectura). Las listas se devuelven copiadas.

func (p *Pet) ID() uuid.UUID         { return p.id }
func (p *Pet) GuardianID() uuid.UUID { return p.guardianID }
func (p *Pet) Name() string          { return p.name }
func (p *Pet) BirthDate() time.Time  { return p.birthDate }
func (p *Pet) Breed() string         { return p.breed }
func (p *Pet) Sex() Sex              { return p.sex }
func (p *Pet) IsCastrated() bool     { return p.isCastrated }
func (p *Pet) Version() int64        { return p.version }

func (p *Pet) MicrochipNumber() *string { return cloneString(p.microchipNumber) }
func (p *Pet) History() *string         { return cloneString(p.history) }
func (p *Pet) CreatedAt() *time.Time    { return cloneTime(p.createdAt) }
func (p *Pet) UpdatedAt() *time.Time    { return cloneTime(p.updatedAt) }

func (p *Pet) VaccineApplications() []VaccineApplication {
	return slices.Clone(p.vaccineApplications)
}

func (p *Pet) DewormerApplications() []DewormerApplication {
	return slices.Clone(p.dewormerApplications)
}

func (p *Pet) Reminders() []Reminder {
	return slices.Clone(p.reminders)
}

// Snapshot devuelve el estado completo para persistir.
func (p *Pet) Snapshot() State {
	return State{
		ID:                   p.id,
		GuardianID:           p.guardianID,
		Name:                 p.name,
		BirthDate:            p.birthDate,
		Breed:                p.breed,
		Sex:                  p.sex,
		IsCastrated:          p.isCastrated,
		MicrochipNumber:      cloneString(p.microchipNumber),
		History:              cloneString(p.history),
		VaccineApplications:  slices.Clone(p.vaccineApplications),
		DewormerApplications: slices.Clone(p.dewormerApplications),
		Reminders:            slices.Clone(p.reminders),
		CreatedAt:            cloneTime(p.createdAt),
		UpdatedAt:            cloneTime(p.updatedAt),
		Version:              p.version,
	}
}

// dateOf descarta la hora: fecha civil en la zona de t, expresada a medianoche UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
