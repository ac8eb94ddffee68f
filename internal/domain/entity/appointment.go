package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus is the lifecycle state of an appointment.
//
// The expected sequence is SCHEDULED -> CONFIRMED -> IN_PROGRESS ->
// COMPLETED, with CANCELLED and NO_SHOW as terminal side exits. Transition
// legality is NOT enforced server-side; callers may set any known status.
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentStatusInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentStatusCompleted  AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled  AppointmentStatus = "CANCELLED"
	AppointmentStatusNoShow     AppointmentStatus = "NO_SHOW"
)

// Valid reports whether s is a member of the known status set.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusInProgress, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is expected.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled || s == AppointmentStatusNoShow
}

// Appointment links a dentistry student with a patient for a treatment slot.
// Price may be NULL only for free appointments; Discount is a percentage
// (0-100) and only meaningful when the appointment is not free.
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"studentId"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	Title       string            `gorm:"type:varchar(255);not null" json:"title"`
	Description *string           `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time         `gorm:"not null;index" json:"date"`
	Duration    int               `gorm:"not null" json:"duration"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Price       *decimal.Decimal  `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Discount    *int              `json:"discount,omitempty"`
	IsFree      bool              `gorm:"not null;default:false" json:"isFree"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Student User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EffectivePrice is the price after applying the discount percentage,
// or zero when the appointment is marked free.
func (a *Appointment) EffectivePrice() decimal.Decimal {
	if a.IsFree || a.Price == nil {
		return decimal.Zero
	}
	if a.Discount == nil || *a.Discount == 0 {
		return *a.Price
	}
	factor := decimal.NewFromInt(int64(100 - *a.Discount)).Div(decimal.NewFromInt(100))
	return a.Price.Mul(factor)
}

// Duration bounds in minutes.
const (
	MinAppointmentDuration = 15
	MaxAppointmentDuration = 480
)
