package converter

import (
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
)

func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	resp := &dto.ReviewResponse{
		ID:            review.ID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		AppointmentID: review.AppointmentID,
		CreatedAt:     review.CreatedAt,
	}
	if review.Reviewer.ID != uuid.Nil {
		resp.Reviewer = reviewUserToResponse(&review.Reviewer)
	}
	if review.Receiver.ID != uuid.Nil {
		resp.Receiver = reviewUserToResponse(&review.Receiver)
	}
	return resp
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}

func reviewUserToResponse(user *entity.User) *dto.ReviewUserResponse {
	return &dto.ReviewUserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserType:  user.UserType,
	}
}
