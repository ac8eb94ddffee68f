package converter

import (
	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment (with preloaded parties)
// into its response shape, including the computed effective price.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:             appointment.ID,
		Title:          appointment.Title,
		Description:    appointment.Description,
		Date:           appointment.Date,
		Duration:       appointment.Duration,
		Status:         string(appointment.Status),
		Discount:       appointment.Discount,
		IsFree:         appointment.IsFree,
		EffectivePrice: appointment.EffectivePrice().InexactFloat64(),
		CreatedAt:      appointment.CreatedAt,
	}

	if appointment.Price != nil {
		price := appointment.Price.InexactFloat64()
		resp.Price = &price
	}
	if appointment.Student.ID != uuid.Nil {
		resp.Student = appointmentUserToResponse(&appointment.Student)
	}
	if appointment.Patient.ID != uuid.Nil {
		resp.Patient = appointmentUserToResponse(&appointment.Patient)
	}

	return resp
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func appointmentUserToResponse(user *entity.User) *dto.AppointmentUserResponse {
	resp := &dto.AppointmentUserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if user.StudentProfile != nil {
		resp.StudentProfile = StudentProfileToResponse(user.StudentProfile)
	}
	if user.PatientProfile != nil {
		resp.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}
	return resp
}
