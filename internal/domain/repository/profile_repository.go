package repository

import (
	"odontoflash-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	// FindPage returns one page of active patient profiles (with User
	// preloaded) plus the total count for the filter.
	FindPage(db *gorm.DB, filter *entity.PatientFilter, offset, limit int) ([]entity.PatientProfile, int64, error)
}

type StudentProfileRepository interface {
	Create(db *gorm.DB, profile *entity.StudentProfile) error
	FindPage(db *gorm.DB, filter *entity.StudentFilter, offset, limit int) ([]entity.StudentProfile, int64, error)
}
