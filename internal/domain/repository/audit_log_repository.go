package repository

import (
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindPageByUser(db *gorm.DB, userID uuid.UUID, offset, limit int) ([]entity.AuditLog, int64, error)
}
