package dto

import (
	"time"

	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	ReviewerID    string  `json:"reviewerId" validate:"required,uuid"`
	ReceiverID    string  `json:"receiverId" validate:"required,uuid"`
	AppointmentID *string `json:"appointmentId,omitempty" validate:"omitempty,uuid"`
	Rating        int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       *string `json:"comment,omitempty"`
}

// Response DTOs

// ReviewUserResponse is the name+type projection of reviewer and receiver.
type ReviewUserResponse struct {
	ID        uuid.UUID       `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	UserType  entity.UserType `json:"userType"`
}

type ReviewResponse struct {
	ID            uuid.UUID           `json:"id"`
	Rating        int                 `json:"rating"`
	Comment       *string             `json:"comment,omitempty"`
	AppointmentID *uuid.UUID          `json:"appointmentId,omitempty"`
	Reviewer      *ReviewUserResponse `json:"reviewer,omitempty"`
	Receiver      *ReviewUserResponse `json:"receiver,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}
