package handler

import (
	"net/http"

	"odontoflash-api/internal/delivery/http/middleware"
	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List handles GET /api/audit-logs, returning the caller's own entries.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	page, limit := ParsePagination(r.URL.Query())

	logs, total, err := h.auditLogUsecase.ListForUser(r.Context(), userID, page, limit)
	if err != nil {
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"auditLogs":  logs,
		"pagination": response.NewPagination(page, limit, total),
	})
}
