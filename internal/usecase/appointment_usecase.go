package usecase

import (
	"context"
	"errors"
	"time"

	"odontoflash-api/internal/converter"
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"
	"odontoflash-api/internal/domain/repository"
	"odontoflash-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrInvalidDate           = errors.New("invalid date, use RFC 3339 format")
	ErrPriceRequired         = errors.New("price is required for non-free appointments")
	ErrParticipantNotFound   = errors.New("student or patient not found")
	ErrParticipantTypeWrong  = errors.New("studentId must reference a STUDENT and patientId a PATIENT")
	ErrInvalidStatus         = errors.New("unknown appointment status")
	ErrInvalidParticipantIDs = errors.New("invalid studentId or patientId")
)

// ListAppointmentsQuery narrows GET /api/appointments.
type ListAppointmentsQuery struct {
	UserID   string
	UserType string
	Status   string
	Page     int
	Limit    int
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, query *ListAppointmentsQuery) ([]dto.AppointmentResponse, int64, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, ErrInvalidParticipantIDs
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrInvalidParticipantIDs
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// Price may be omitted only for free appointments.
	if !req.IsFree && req.Price == nil {
		return nil, ErrPriceRequired
	}

	student, err := u.userRepo.FindByID(u.db.WithContext(ctx), studentID)
	if err != nil {
		u.log.Warnf("Failed to find student %s: %+v", studentID, err)
		return nil, err
	}
	patient, err := u.userRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if student == nil || patient == nil {
		return nil, ErrParticipantNotFound
	}
	if student.UserType != entity.UserTypeStudent || patient.UserType != entity.UserTypePatient {
		return nil, ErrParticipantTypeWrong
	}

	appointment := &entity.Appointment{
		StudentID:   studentID,
		PatientID:   patientID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Duration:    req.Duration,
		Status:      entity.AppointmentStatusScheduled,
		Discount:    req.Discount,
		IsFree:      req.IsFree,
	}
	if !req.IsFree && req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		appointment.Price = &price
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err, "appointments") {
			return nil, ErrParticipantNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointmentId": appointment.ID.String(),
		"studentId":     studentID.String(),
		"title":         appointment.Title,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment: %+v", err)
		return nil, err
	}

	// Reload with both parties and their profiles for the response.
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) List(ctx context.Context, query *ListAppointmentsQuery) ([]dto.AppointmentResponse, int64, error) {
	filter := &entity.AppointmentFilter{}

	if query.UserID != "" {
		userID, err := uuid.Parse(query.UserID)
		if err != nil {
			return nil, 0, ErrInvalidParticipantIDs
		}
		userType := entity.UserType(query.UserType)
		if !userType.Valid() {
			return nil, 0, ErrParticipantTypeWrong
		}
		filter.UserID = userID
		filter.UserType = userType
	}
	if query.Status != "" {
		status := entity.AppointmentStatus(query.Status)
		if !status.Valid() {
			return nil, 0, ErrInvalidStatus
		}
		filter.Status = status
	}

	offset := (query.Page - 1) * query.Limit
	appointments, total, err := u.appointmentRepo.FindPage(u.db.WithContext(ctx), filter, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

// UpdateStatus sets the appointment status. Any member of the status set is
// accepted; the SCHEDULED -> ... -> COMPLETED sequence is a UI convention,
// not a server-side rule.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, appointmentID uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s status: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentNotFound
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentStatusChange, entity.JSON{
		"appointmentId": appointmentID.String(),
		"status":        string(newStatus),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit status update: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if full == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(full), nil
}
