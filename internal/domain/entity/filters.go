package entity

import "github.com/google/uuid"

// AppointmentFilter narrows appointment listings. UserID is matched against
// student_id or patient_id depending on UserType.
type AppointmentFilter struct {
	UserID   uuid.UUID
	UserType UserType
	Status   AppointmentStatus
}

// PatientFilter narrows the patient directory (ILIKE substring match).
type PatientFilter struct {
	DentalNeeds string
}

// StudentFilter narrows the student directory (ILIKE substring matches).
type StudentFilter struct {
	Specialization string
	University     string
}
