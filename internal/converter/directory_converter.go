package converter

import (
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
)

// PatientProfilesToDirectoryEntries merges patient profiles with their
// rating aggregates. Users missing from the aggregate map come out with
// averageRating 0 and totalReviews 0.
func PatientProfilesToDirectoryEntries(profiles []entity.PatientProfile, ratings map[uuid.UUID]entity.RatingAggregate) []dto.PatientDirectoryEntry {
	entries := make([]dto.PatientDirectoryEntry, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		agg := ratings[profile.UserID]
		entries[i] = dto.PatientDirectoryEntry{
			UserResponse:   *UserToResponse(&profile.User),
			Phone:          profile.User.Phone,
			Address:        profile.User.Address,
			AverageRating:  agg.RoundedAverage(),
			TotalReviews:   agg.Count,
			PatientProfile: *PatientProfileToResponse(profile),
		}
	}
	return entries
}

func StudentProfilesToDirectoryEntries(profiles []entity.StudentProfile, ratings map[uuid.UUID]entity.RatingAggregate) []dto.StudentDirectoryEntry {
	entries := make([]dto.StudentDirectoryEntry, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		agg := ratings[profile.UserID]
		entries[i] = dto.StudentDirectoryEntry{
			UserResponse:   *UserToResponse(&profile.User),
			Phone:          profile.User.Phone,
			Address:        profile.User.Address,
			AverageRating:  agg.RoundedAverage(),
			TotalReviews:   agg.Count,
			StudentProfile: *StudentProfileToResponse(profile),
		}
	}
	return entries
}
