package usecase

import (
	"context"

	"odontoflash-api/internal/converter"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/domain/repository"
	"odontoflash-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListPatientsQuery narrows GET /api/patients.
type ListPatientsQuery struct {
	DentalNeeds string
	Page        int
	Limit       int
}

// ListStudentsQuery narrows GET /api/students.
type ListStudentsQuery struct {
	Specialization string
	University     string
	Page           int
	Limit          int
}

// DirectoryUsecase serves the public patient and student listings, each row
// decorated with its rating aggregate.
type DirectoryUsecase interface {
	ListPatients(ctx context.Context, query *ListPatientsQuery) ([]dto.PatientDirectoryEntry, int64, error)
	ListStudents(ctx context.Context, query *ListStudentsQuery) ([]dto.StudentDirectoryEntry, int64, error)
}

type directoryUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	patientProfileRepo repository.PatientProfileRepository
	studentProfileRepo repository.StudentProfileRepository
	ratingCache        *service.RatingCacheService
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientProfileRepo repository.PatientProfileRepository,
	studentProfileRepo repository.StudentProfileRepository,
	ratingCache *service.RatingCacheService,
) DirectoryUsecase {
	return &directoryUsecase{
		db:                 db,
		log:                log,
		patientProfileRepo: patientProfileRepo,
		studentProfileRepo: studentProfileRepo,
		ratingCache:        ratingCache,
	}
}

func (u *directoryUsecase) ListPatients(ctx context.Context, query *ListPatientsQuery) ([]dto.PatientDirectoryEntry, int64, error) {
	filter := &entity.PatientFilter{DentalNeeds: query.DentalNeeds}
	offset := (query.Page - 1) * query.Limit

	profiles, total, err := u.patientProfileRepo.FindPage(u.db.WithContext(ctx), filter, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	ratings, err := u.ratingsFor(ctx, patientUserIDs(profiles))
	if err != nil {
		return nil, 0, err
	}

	return converter.PatientProfilesToDirectoryEntries(profiles, ratings), total, nil
}

func (u *directoryUsecase) ListStudents(ctx context.Context, query *ListStudentsQuery) ([]dto.StudentDirectoryEntry, int64, error) {
	filter := &entity.StudentFilter{
		Specialization: query.Specialization,
		University:     query.University,
	}
	offset := (query.Page - 1) * query.Limit

	profiles, total, err := u.studentProfileRepo.FindPage(u.db.WithContext(ctx), filter, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list students: %+v", err)
		return nil, 0, err
	}

	ratings, err := u.ratingsFor(ctx, studentUserIDs(profiles))
	if err != nil {
		return nil, 0, err
	}

	return converter.StudentProfilesToDirectoryEntries(profiles, ratings), total, nil
}

func (u *directoryUsecase) ratingsFor(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]entity.RatingAggregate, error) {
	ratings, err := u.ratingCache.GetForUsers(ctx, userIDs)
	if err != nil {
		u.log.Warnf("Failed to resolve rating aggregates: %+v", err)
		return nil, err
	}
	return ratings, nil
}

func patientUserIDs(profiles []entity.PatientProfile) []uuid.UUID {
	ids := make([]uuid.UUID, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].UserID
	}
	return ids
}

func studentUserIDs(profiles []entity.StudentProfile) []uuid.UUID {
	ids := make([]uuid.UUID, len(profiles))
	for i := range profiles {
		ids[i] = profiles[i].UserID
	}
	return ids
}
