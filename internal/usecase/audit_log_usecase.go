package usecase

import (
	"context"

	"odontoflash-api/internal/converter"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditLogUsecase exposes a user's own audit trail.
type AuditLogUsecase interface {
	ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.AuditLogResponse, int64, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.AuditLogResponse, int64, error) {
	offset := (page - 1) * limit
	logs, total, err := u.auditLogRepo.FindPageByUser(u.db.WithContext(ctx), userID, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs for %s: %+v", userID, err)
		return nil, 0, err
	}
	return converter.AuditLogsToResponses(logs), total, nil
}
