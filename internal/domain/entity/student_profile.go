package entity

import "github.com/google/uuid"

// StudentProfile holds dentistry-student attributes, 1:1 with a User.
type StudentProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	University     string    `gorm:"type:varchar(255);not null;index" json:"university"`
	StudentID      string    `gorm:"column:student_number;type:varchar(50);not null" json:"studentId"`
	Semester       int       `gorm:"not null" json:"semester"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}
