package postgres

import (
	"time"

	"github.com/google/uuid"
)

type petRow struct {
	ID         uuid.UUID `gorm:"column:pet_id;type:uuid;primaryKey"`
	GuardianID uuid.UUID `gorm:"column:guardian_id;type:uuid;not null;index:idx_guardian_id"`

	Name        string    `gorm:"column:name;size:100;not null"`
	BirthDate   time.Time `gorm:"column:birth_date;type:date;not null;index:idx_pet_dates,priority:1"`
	Breed       string    `gorm:"column:breed;size:50;not null"`
	Sex         string    `gorm:"column:sex;size:10;not null"`
	IsCastrated bool      `gorm:"column:is_castrated;not null"`

	MicrochipNumber *string `gorm:"column:microchip_number;size:30;uniqueIndex"`
	History         *string `gorm:"column:history;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_pet_dates,priority:2"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	Version   int64     `gorm:"column:version;not null"`

	Vaccines  []vaccineRow  `gorm:"foreignKey:PetID;references:ID;constraint:OnDelete:CASCADE"`
	Dewormers []dewormerRow `gorm:"foreignKey:PetID;references:ID;constraint:OnDelete:CASCADE"`
	Reminders []reminderRow `gorm:"foreignKey:PetID;references:ID;constraint:OnDelete:CASCADE"`
}

func (petRow) TableName() string { return "pets" }

type vaccineRow struct {
	ID       uuid.UUID `gorm:"column:vaccine_application_id;type:uuid;primaryKey"`
	PetID    uuid.UUID `gorm:"column:pet_id;type:uuid;not null;index"`
	Position int       `gorm:"column:position;not null"`

	VaccineName  string     `gorm:"column:vaccine_name;size:100;not null"`
	AppliedOn    time.Time  `gorm:"column:applied_on;type:date;not null"`
	NextDoseOn   *time.Time `gorm:"column:next_dose_on;type:date"`
	BatchNumber  string     `gorm:"column:batch_number;size:50"`
	Veterinarian string     `gorm:"column:veterinarian;size:100"`
	Notes        string     `gorm:"column:notes;type:text"`
}

func (vaccineRow) TableName() string { return "vaccine_applications" }

type dewormerRow struct {
	ID       uuid.UUID `gorm:"column:dewormer_application_id;type:uuid;primaryKey"`
	PetID    uuid.UUID `gorm:"column:pet_id;type:uuid;not null;index"`
	Position int       `gorm:"column:position;not null"`

	ProductName string     `gorm:"column:product_name;size:100;not null"`
	AppliedOn   time.Time  `gorm:"column:applied_on;type:date;not null"`
	NextDoseOn  *time.Time `gorm:"column:next_dose_on;type:date"`
	Dose        string     `gorm:"column:dose;size:50"`
	WeightKg    float64    `gorm:"column:weight_kg"`
	Notes       string     `gorm:"column:notes;type:text"`
}

func (dewormerRow) TableName() string { return "dewormer_applications" }

type reminderRow struct {
	ID       uuid.UUID `gorm:"column:reminder_id;type:uuid;primaryKey"`
	PetID    uuid.UUID `gorm:"column:pet_id;type:uuid;not null;index"`
	Position int       `gorm:"column:position;not null"`

	Kind  string    `gorm:"column:kind;size:20;not null"`
	Title string    `gorm:"column:title;size:100;not null"`
	DueOn time.Time `gorm:"column:due_on;type:date;not null;index"`
	Notes string    `gorm:"column:notes;type:text"`
}

func (reminderRow) TableName() string { return "reminders" }
