package repository

import (
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository persists account records. Callers pass the *gorm.DB (or
// transaction) they want the operation to run on.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByIDWithProfile(db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
