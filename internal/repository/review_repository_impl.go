package repository

import (
	"odontoflash-api/internal/domain/entity"
	domainRepo "odontoflash-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) ExistsForAppointment(db *gorm.DB, reviewerID, appointmentID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Review{}).
		Where("reviewer_id = ? AND appointment_id = ?", reviewerID, appointmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) FindPage(db *gorm.DB, receiverID *uuid.UUID, offset, limit int) ([]entity.Review, int64, error) {
	query := db.Model(&entity.Review{})
	if receiverID != nil {
		query = query.Where("receiver_id = ?", *receiverID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []entity.Review
	err := query.
		Preload("Reviewer").Preload("Receiver").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) AggregateForUsers(db *gorm.DB, userIDs []uuid.UUID) (map[uuid.UUID]entity.RatingAggregate, error) {
	aggregates := make(map[uuid.UUID]entity.RatingAggregate, len(userIDs))
	if len(userIDs) == 0 {
		return aggregates, nil
	}

	var rows []domainRepo.ReceiverAggregate
	err := db.Model(&entity.Review{}).
		Select("receiver_id, AVG(rating) AS average, COUNT(*) AS count").
		Where("receiver_id IN ?", userIDs).
		Group("receiver_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		aggregates[row.ReceiverID] = entity.RatingAggregate{
			Average: row.Average,
			Count:   row.Count,
		}
	}
	return aggregates, nil
}

func (r *reviewRepository) AggregateAll(db *gorm.DB, batchSize int, fn func([]domainRepo.ReceiverAggregate) error) error {
	offset := 0
	for {
		var rows []domainRepo.ReceiverAggregate
		err := db.Model(&entity.Review{}).
			Select("receiver_id, AVG(rating) AS average, COUNT(*) AS count").
			Group("receiver_id").
			Order("receiver_id").
			Offset(offset).Limit(batchSize).
			Scan(&rows).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		if err := fn(rows); err != nil {
			return err
		}
		if len(rows) < batchSize {
			return nil
		}
		offset += batchSize
	}
}
