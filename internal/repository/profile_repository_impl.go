package repository

import (
	"odontoflash-api/internal/domain/entity"
	domainRepo "odontoflash-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientProfileRepository struct{}

func NewPatientProfileRepository() domainRepo.PatientProfileRepository {
	return &patientProfileRepository{}
}

func (r *patientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	return db.Create(profile).Error
}

func (r *patientProfileRepository) FindPage(db *gorm.DB, filter *entity.PatientFilter, offset, limit int) ([]entity.PatientProfile, int64, error) {
	query := db.Model(&entity.PatientProfile{}).Where("patient_profiles.is_active = ?", true)

	if filter != nil && filter.DentalNeeds != "" {
		query = query.Where("patient_profiles.dental_needs ILIKE ?", "%"+filter.DentalNeeds+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []entity.PatientProfile
	err := query.
		Preload("User").
		Joins("JOIN users ON users.id = patient_profiles.user_id").
		Order("users.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

type studentProfileRepository struct{}

func NewStudentProfileRepository() domainRepo.StudentProfileRepository {
	return &studentProfileRepository{}
}

func (r *studentProfileRepository) Create(db *gorm.DB, profile *entity.StudentProfile) error {
	return db.Create(profile).Error
}

func (r *studentProfileRepository) FindPage(db *gorm.DB, filter *entity.StudentFilter, offset, limit int) ([]entity.StudentProfile, int64, error) {
	query := db.Model(&entity.StudentProfile{}).Where("student_profiles.is_active = ?", true)

	if filter != nil {
		if filter.Specialization != "" {
			query = query.Where("student_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
		if filter.University != "" {
			query = query.Where("student_profiles.university ILIKE ?", "%"+filter.University+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []entity.StudentProfile
	err := query.
		Preload("User").
		Joins("JOIN users ON users.id = student_profiles.user_id").
		Order("users.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
