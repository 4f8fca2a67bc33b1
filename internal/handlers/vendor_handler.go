// internal/handlers/vendor_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"iejimai_com/internal/model"
	"iejimai_com/internal/ranking"
	"iejimai_com/internal/service"
	"iejimai_com/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type VendorHandler struct {
	service service.VendorService
	logger  *slog.Logger
}

func NewVendorHandler(s service.VendorService, logger *slog.Logger) *VendorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VendorHandler{
		service: s,
		logger:  logger,
	}
}

// GetVendors は業者一覧をランキング順で取得するためのハンドラ。
// sortクエリで並び替え戦略を切り替える（recommended / reviews / price / realestate）
func (h *VendorHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVendors"))

	strategy, err := ranking.ParseStrategy(r.URL.Query().Get("sort"))
	if err != nil {
		logger.Warn("Invalid sort strategy", slog.String("sort", r.URL.Query().Get("sort")))
		appErr := model.NewAppError("INVALID_SORT", "並び替え条件の指定が正しくありません。", "sort", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	vendors, err := h.service.ListVendors(r.Context(), strategy)
	if err != nil {
		logger.Error("Error listing vendors in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if vendors == nil {
		vendors = []model.RankedVendor{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, vendors, logger)
}

// GetVendor は業者詳細を取得するためのハンドラ。UUIDでもslugでも引ける
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVendor"))

	key := chi.URLParam(r, "vendor_id")
	detail, err := h.service.GetVendorDetail(r.Context(), key)
	if err != nil {
		logger.Warn("Error getting vendor detail in service", slog.Any("error", err), slog.String("key", key))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// PostVendor は新しい業者を登録するためのハンドラ（管理者用）
func (h *VendorHandler) PostVendor(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostVendor"))

	var req model.VendorRequest
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

	vendor, err := h.service.CreateVendor(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating vendor in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vendor created successfully", slog.String("vendor_id", vendor.VendorID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, vendor, logger)
}

// PutVendor は業者情報を全置換で更新するためのハンドラ（管理者用）
func (h *VendorHandler) PutVendor(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutVendor"))

	vendorID, err := uuid.Parse(chi.URLParam(r, "vendor_id"))
	if err != nil {
		logger.Warn("Invalid vendor ID format", slog.String("vendor_id", chi.URLParam(r, "vendor_id")))
		appErr := model.NewAppError("INVALID_ID_FORMAT", "業者IDの形式が正しくありません。", "vendor_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.VendorRequest
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

	vendor, err := h.service.UpdateVendor(r.Context(), vendorID, &req)
	if err != nil {
		logger.Warn("Error updating vendor in service", slog.Any("error", err), slog.String("vendor_id", vendorID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vendor updated successfully", slog.String("vendor_id", vendorID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, vendor, logger)
}

// DeleteVendor は業者を削除するためのハンドラ（管理者用）
func (h *VendorHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteVendor"))

	vendorID, err := uuid.Parse(chi.URLParam(r, "vendor_id"))
	if err != nil {
		logger.Warn("Invalid vendor ID format", slog.String("vendor_id", chi.URLParam(r, "vendor_id")))
		appErr := model.NewAppError("INVALID_ID_FORMAT", "業者IDの形式が正しくありません。", "vendor_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteVendor(r.Context(), vendorID); err != nil {
		logger.Warn("Error deleting vendor in service", slog.Any("error", err), slog.String("vendor_id", vendorID.String()))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vendor deleted successfully", slog.String("vendor_id", vendorID.String()))
	w.WriteHeader(http.StatusNoContent)
}
