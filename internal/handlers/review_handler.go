// internal/handlers/review_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"iejimai_com/internal/model"
	"iejimai_com/internal/service"
	"iejimai_com/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetReviews は承認済み口コミの一覧を取得するためのハンドラ。
// vendor_idクエリで業者を絞り込める
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviews"))

	var vendorID *uuid.UUID
	if raw := r.URL.Query().Get("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Invalid vendor ID format in query", slog.String("vendor_id", raw))
			appErr := model.NewAppError("INVALID_ID_FORMAT", "業者IDの形式が正しくありません。", "vendor_id", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		vendorID = &id
	}

	reviews, err := h.service.ListApprovedReviews(r.Context(), vendorID)
	if err != nil {
		logger.Error("Error listing reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if reviews == nil {
		reviews = []*model.Review{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reviews, logger)
}

// PostReview は口コミを投稿するためのハンドラ。投稿直後は未承認
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReview"))

	var req model.PostReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating review in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review posted successfully", slog.String("review_id", review.ReviewID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, review, logger)
}

// PutReviewApproval は口コミの承認フラグを切り替えるためのハンドラ（管理者用）
func (h *ReviewHandler) PutReviewApproval(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutReviewApproval"))

	reviewID, err := uuid.Parse(chi.URLParam(r, "review_id"))
	if err != nil {
		logger.Warn("Invalid review ID format", slog.String("review_id", chi.URLParam(r, "review_id")))
		appErr := model.NewAppError("INVALID_ID_FORMAT", "口コミIDの形式が正しくありません。", "review_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.ApproveReviewRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	review, err := h.service.SetApproval(r.Context(), reviewID, *req.IsApproved)
	if err != nil {
		logger.Warn("Error updating review approval in service", slog.Any("error", err), slog.String("review_id", reviewID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review approval updated", slog.String("review_id", reviewID.String()), slog.Bool("is_approved", review.IsApproved))
	webutil.RespondWithJSON(w, http.StatusOK, review, logger)
}
