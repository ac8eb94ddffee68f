package handler

import (
	"encoding/json"
	"net/http"

	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/delivery/http/middleware"
	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/response"
	"odontoflash-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles POST /api/appointments.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate, usecase.ErrPriceRequired,
			usecase.ErrInvalidParticipantIDs, usecase.ErrParticipantTypeWrong:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrParticipantNotFound:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, response.Body{"appointment": appointment})
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := ParsePagination(query)

	listQuery := &usecase.ListAppointmentsQuery{
		UserID:   query.Get("userId"),
		UserType: query.Get("userType"),
		Status:   query.Get("status"),
		Page:     page,
		Limit:    limit,
	}

	appointments, total, err := h.appointmentUsecase.List(r.Context(), listQuery)
	if err != nil {
		switch err {
		case usecase.ErrInvalidParticipantIDs, usecase.ErrParticipantTypeWrong, usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"appointments": appointments,
		"pagination":   response.NewPagination(page, limit, total),
	})
}

// UpdateStatus handles PATCH /api/appointments/{id}/status.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid appointment id", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), actorID, appointmentID, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "appointment not found")
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, response.Body{"appointment": appointment})
}
