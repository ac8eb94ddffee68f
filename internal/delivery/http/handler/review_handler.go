package handler

import (
	"encoding/json"
	"net/http"

	"odontoflash-api/internal/delivery/dto"
	"odontoflash-api/internal/usecase"
	"odontoflash-api/pkg/response"
	"odontoflash-api/pkg/validator"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReviewAlreadyExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidReviewIDs:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrReviewUserNotFound:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, response.Body{"review": review})
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, limit := ParsePagination(query)

	reviews, total, err := h.reviewUsecase.List(r.Context(), &usecase.ListReviewsQuery{
		ReceiverID: query.Get("receiverId"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		switch err {
		case usecase.ErrInvalidReviewIDs:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"reviews":    reviews,
		"pagination": response.NewPagination(page, limit, total),
	})
}
