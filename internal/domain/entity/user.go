package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType discriminates the profile variant attached to a user.
// It is fixed at registration and never changes afterwards.
type UserType string

const (
	UserTypePatient UserType = "PATIENT"
	UserTypeStudent UserType = "STUDENT"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypePatient || t == UserTypeStudent
}

// User is the central account record. Exactly one of PatientProfile /
// StudentProfile is present, matching UserType.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"lastName"`
	Phone     string    `gorm:"type:varchar(30);not null" json:"phone"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birthDate"`
	UserType  UserType  `gorm:"type:varchar(10);not null;index" json:"userType"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patientProfile,omitempty"`
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID" json:"studentProfile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display projections.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
