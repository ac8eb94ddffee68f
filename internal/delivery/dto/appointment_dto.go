package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	StudentID   string   `json:"studentId" validate:"required,uuid"`
	PatientID   string   `json:"patientId" validate:"required,uuid"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description *string  `json:"description,omitempty"`
	Date        string   `json:"date" validate:"required"` // RFC 3339
	Duration    int      `json:"duration" validate:"required,gte=15,lte=480"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Discount    *int     `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	IsFree      bool     `json:"isFree"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
}

// Response DTOs

// AppointmentUserResponse is the nested student/patient projection embedded
// in appointment responses.
type AppointmentUserResponse struct {
	ID             uuid.UUID               `json:"id"`
	FirstName      string                  `json:"firstName"`
	LastName       string                  `json:"lastName"`
	Email          string                  `json:"email"`
	StudentProfile *StudentProfileResponse `json:"studentProfile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patientProfile,omitempty"`
}

type AppointmentResponse struct {
	ID             uuid.UUID                `json:"id"`
	Title          string                   `json:"title"`
	Description    *string                  `json:"description,omitempty"`
	Date           time.Time                `json:"date"`
	Duration       int                      `json:"duration"`
	Status         string                   `json:"status"`
	Price          *float64                 `json:"price,omitempty"`
	Discount       *int                     `json:"discount,omitempty"`
	IsFree         bool                     `json:"isFree"`
	EffectivePrice float64                  `json:"effectivePrice"`
	Student        *AppointmentUserResponse `json:"student,omitempty"`
	Patient        *AppointmentUserResponse `json:"patient,omitempty"`
	CreatedAt      time.Time                `json:"createdAt"`
}
