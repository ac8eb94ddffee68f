package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Review is a 1-5 rating left by one user about another, optionally tied to
// an appointment. At most one review exists per (reviewer, appointment)
// pair; this is backed by a partial unique index in the schema, not just an
// application-level check.
type Review struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReviewerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"reviewerId"`
	ReceiverID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"receiverId"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointmentId,omitempty"`
	Rating        int        `gorm:"not null" json:"rating"`
	Comment       *string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`

	// Relationships
	Reviewer    User         `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Receiver    User         `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// RatingAggregate is the per-user rollup served by the directory endpoints.
// A user with no reviews has a zero aggregate.
type RatingAggregate struct {
	Average float64
	Count   int64
}

// RoundedAverage is the mean rating rounded to one decimal place.
func (a RatingAggregate) RoundedAverage() float64 {
	return math.Round(a.Average*10) / 10
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)
