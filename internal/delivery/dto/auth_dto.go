package dto

import (
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the full registration payload. Exactly one of
// PatientData / StudentData must be present, matching UserType; that rule
// is checked in the usecase because it spans two fields.
type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=6"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Phone     string          `json:"phone" validate:"required"`
	Address   string          `json:"address" validate:"required"`
	BirthDate string          `json:"birthDate" validate:"required"` // Format: YYYY-MM-DD
	UserType  entity.UserType `json:"userType" validate:"required,oneof=PATIENT STUDENT"`

	PatientData *RegisterPatientData `json:"patientData,omitempty"`
	StudentData *RegisterStudentData `json:"studentData,omitempty"`
}

type RegisterPatientData struct {
	DentalNeeds    string  `json:"dentalNeeds" validate:"required"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
}

type RegisterStudentData struct {
	University     string `json:"university" validate:"required"`
	StudentID      string `json:"studentId" validate:"required"`
	Semester       int    `json:"semester" validate:"required,gte=1,lte=10"`
	Specialization string `json:"specialization" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	UserType  entity.UserType `json:"userType"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// CurrentUserResponse is the richer projection returned by /auth/me.
type CurrentUserResponse struct {
	UserResponse
	Phone          string                  `json:"phone"`
	Address        string                  `json:"address"`
	BirthDate      string                  `json:"birthDate"`
	PatientProfile *PatientProfileResponse `json:"patientProfile,omitempty"`
	StudentProfile *StudentProfileResponse `json:"studentProfile,omitempty"`
}
