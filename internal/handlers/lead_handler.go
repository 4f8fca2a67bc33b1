// internal/handlers/lead_handler.go
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

// LeadHandler は管理画面のリード（査定依頼）操作の受け口です
type LeadHandler struct {
	service service.LeadService
	logger  *slog.Logger
}

func NewLeadHandler(s service.LeadService, logger *slog.Logger) *LeadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeadHandler{
		service: s,
		logger:  logger,
	}
}

// GetLeads はリード一覧を新しい順で取得するためのハンドラ
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeads"))

	leads, err := h.service.ListLeads(r.Context())
	if err != nil {
		logger.Error("Error listing leads in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if leads == nil {
		leads = []*model.Lead{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, leads, logger)
}

// GetLead はリードを1件取得するためのハンドラ
func (h *LeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLead"))

	leadID, err := uuid.Parse(chi.URLParam(r, "lead_id"))
	if err != nil {
		logger.Warn("Invalid lead ID format", slog.String("lead_id", chi.URLParam(r, "lead_id")))
		appErr := model.NewAppError("INVALID_ID_FORMAT", "リードIDの形式が正しくありません。", "lead_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	lead, err := h.service.GetLead(r.Context(), leadID)
	if err != nil {
		logger.Warn("Error getting lead in service", slog.Any("error", err), slog.String("lead_id", leadID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, lead, logger)
}

// PutLead はリードのステータスと管理メモを更新するためのハンドラ
func (h *LeadHandler) PutLead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutLead"))

	leadID, err := uuid.Parse(chi.URLParam(r, "lead_id"))
	if err != nil {
		logger.Warn("Invalid lead ID format", slog.String("lead_id", chi.URLParam(r, "lead_id")))
		appErr := model.NewAppError("INVALID_ID_FORMAT", "リードIDの形式が正しくありません。", "lead_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.UpdateLeadRequest
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

	lead, err := h.service.UpdateLead(r.Context(), leadID, &req)
	if err != nil {
		logger.Warn("Error updating lead in service", slog.Any("error", err), slog.String("lead_id", leadID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lead updated successfully", slog.String("lead_id", leadID.String()), slog.String("status", string(lead.Status)))
	webutil.RespondWithJSON(w, http.StatusOK, lead, logger)
}
