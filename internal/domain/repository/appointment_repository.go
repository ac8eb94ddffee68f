package repository

import (
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindPage returns appointments matching the filter ordered by date
	// descending, plus the total count.
	FindPage(db *gorm.DB, filter *entity.AppointmentFilter, offset, limit int) ([]entity.Appointment, int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
