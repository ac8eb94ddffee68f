package usecase

import (
	"context"
	"errors"

	"odontoflash-api/internal/converter"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/domain/repository"
	"odontoflash-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReviewAlreadyExists = errors.New("appointment already reviewed by this user")
	ErrReviewUserNotFound  = errors.New("reviewer or receiver not found")
	ErrInvalidReviewIDs    = errors.New("invalid reviewerId, receiverId or appointmentId")
)

// ListReviewsQuery narrows GET /api/reviews.
type ListReviewsQuery struct {
	ReceiverID string
	Page       int
	Limit      int
}

type ReviewUsecase interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	List(ctx context.Context, query *ListReviewsQuery) ([]dto.ReviewResponse, int64, error)
}

type reviewUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	ratingCache  *service.RatingCacheService
	auditService service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	ratingCache *service.RatingCacheService,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:           db,
		log:          log,
		reviewRepo:   reviewRepo,
		userRepo:     userRepo,
		ratingCache:  ratingCache,
		auditService: auditService,
	}
}

// Create persists a review. When the review is tied to an appointment, a
// second review from the same reviewer for that appointment is rejected.
// The pre-check gives a clean error on the common path; the partial unique
// index on (reviewer_id, appointment_id) closes the race between two
// concurrent identical submissions.
func (u *reviewUsecase) Create(ctx context.Context, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	reviewerID, err := uuid.Parse(req.ReviewerID)
	if err != nil {
		return nil, ErrInvalidReviewIDs
	}
	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, ErrInvalidReviewIDs
	}
	var appointmentID *uuid.UUID
	if req.AppointmentID != nil {
		id, err := uuid.Parse(*req.AppointmentID)
		if err != nil {
			return nil, ErrInvalidReviewIDs
		}
		appointmentID = &id
	}

	if appointmentID != nil {
		exists, err := u.reviewRepo.ExistsForAppointment(u.db.WithContext(ctx), reviewerID, *appointmentID)
		if err != nil {
			u.log.Warnf("Failed to check existing review: %+v", err)
			return nil, err
		}
		if exists {
			return nil, ErrReviewAlreadyExists
		}
	}

	review := &entity.Review{
		ReviewerID:    reviewerID,
		ReceiverID:    receiverID,
		AppointmentID: appointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "reviewer_appointment") {
			return nil, ErrReviewAlreadyExists
		}
		if isForeignKeyError(err, "reviews") {
			return nil, ErrReviewUserNotFound
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &reviewerID, entity.AuditActionReviewCreate, entity.JSON{
		"reviewId":   review.ID.String(),
		"receiverId": receiverID.String(),
		"rating":     req.Rating,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit review: %+v", err)
		return nil, err
	}

	// The receiver's cached aggregate is now stale.
	u.ratingCache.Invalidate(ctx, receiverID)

	reviewer, err := u.userRepo.FindByID(u.db.WithContext(ctx), reviewerID)
	if err == nil && reviewer != nil {
		review.Reviewer = *reviewer
	}
	receiver, err := u.userRepo.FindByID(u.db.WithContext(ctx), receiverID)
	if err == nil && receiver != nil {
		review.Receiver = *receiver
	}

	return converter.ReviewToResponse(review), nil
}

func (u *reviewUsecase) List(ctx context.Context, query *ListReviewsQuery) ([]dto.ReviewResponse, int64, error) {
	var receiverID *uuid.UUID
	if query.ReceiverID != "" {
		id, err := uuid.Parse(query.ReceiverID)
		if err != nil {
			return nil, 0, ErrInvalidReviewIDs
		}
		receiverID = &id
	}

	offset := (query.Page - 1) * query.Limit
	reviews, total, err := u.reviewRepo.FindPage(u.db.WithContext(ctx), receiverID, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, 0, err
	}

	return converter.ReviewsToResponses(reviews), total, nil
}
