package entity

import "github.com/google/uuid"

// PatientProfile holds patient-specific attributes, 1:1 with a User.
type PatientProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	DentalNeeds    string    `gorm:"type:text;not null" json:"dentalNeeds"`
	MedicalHistory *string   `gorm:"type:text" json:"medicalHistory,omitempty"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
