// internal/handlers/contact_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"iejimai_com/internal/model"
	"iejimai_com/internal/service"
	"iejimai_com/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// ContactHandler は公開問い合わせフォームの受け口です
type ContactHandler struct {
	service service.LeadService
	logger  *slog.Logger
}

func NewContactHandler(s service.LeadService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		service: s,
		logger:  logger,
	}
}

// PostContact は査定依頼フォームの送信を受け付けるためのハンドラ
func (h *ContactHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostContact"))

	var req model.ContactRequest
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

			// 最初のエラーを代表としてクライアントに返す
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

	lead, err := h.service.CreateFromContactForm(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating lead in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Contact form accepted", slog.String("lead_id", lead.LeadID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, model.ContactResponse{Success: true, Data: lead}, logger)
}
