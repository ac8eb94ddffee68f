package repository

import (
	"errors"

	"odontoflash-api/internal/domain/entity"
	domainRepo "odontoflash-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Student").Preload("Student.StudentProfile").
		Preload("Patient").Preload("Patient.PatientProfile").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindPage(db *gorm.DB, filter *entity.AppointmentFilter, offset, limit int) ([]entity.Appointment, int64, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.UserID != uuid.Nil {
			switch filter.UserType {
			case entity.UserTypeStudent:
				query = query.Where("student_id = ?", filter.UserID)
			case entity.UserTypePatient:
				query = query.Where("patient_id = ?", filter.UserID)
			}
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Student").Preload("Student.StudentProfile").
		Preload("Patient").Preload("Patient.PatientProfile").
		Order("date DESC").
		Offset(offset).Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// UpdateStatus sets the status unconditionally and returns affected rows so
// callers can distinguish a missing appointment from a no-op.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
