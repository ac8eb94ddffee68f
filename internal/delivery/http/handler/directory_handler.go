package handler

import (
	"net/http"

	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/response"
)

// DirectoryHandler serves the public patient and student listings.
type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUsecase: directoryUsecase}
}

// ListPatients handles GET /api/patients.
func (h *DirectoryHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := ParsePagination(query)

	patients, total, err := h.directoryUsecase.ListPatients(r.Context(), &usecase.ListPatientsQuery{
		DentalNeeds: query.Get("dentalNeeds"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"patients":   patients,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// ListStudents handles GET /api/students.
func (h *DirectoryHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := ParsePagination(query)

	students, total, err := h.directoryUsecase.ListStudents(r.Context(), &usecase.ListStudentsQuery{
		Specialization: query.Get("specialization"),
		University:     query.Get("university"),
		Page:           page,
		Limit:          limit,
	})
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"students":   students,
		"pagination": response.NewPagination(page, limit, total),
	})
}
