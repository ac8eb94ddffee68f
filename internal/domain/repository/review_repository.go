package repository

import (
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	// ExistsForAppointment reports whether the reviewer already reviewed
	// the given appointment.
	ExistsForAppointment(db *gorm.DB, reviewerID, appointmentID uuid.UUID) (bool, error)
	// FindPage returns reviews newest-first, optionally filtered by
	// receiver, plus the total count.
	FindPage(db *gorm.DB, receiverID *uuid.UUID, offset, limit int) ([]entity.Review, int64, error)
	// AggregateForUsers computes average rating and review count per
	// receiver for the given user IDs. Users without reviews are absent
	// from the result map.
	AggregateForUsers(db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]entity.RatingAggregate, error)
	// AggregateAll streams aggregates for every user that has received at
	// least one review, in batches of batchSize.
	AggregateAll(db *gorm.DB, batchSize int, fn func([]ReceiverAggregate) error) error
}

// ReceiverAggregate is a scan target for grouped rating rollups.
type ReceiverAggregate struct {
	ReceiverID uuid.UUID
	Average    float64
	Count      int64
}
