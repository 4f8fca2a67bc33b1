// internal/handlers/area_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"iejimai_com/internal/model"
	"iejimai_com/internal/service"
	"iejimai_com/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type AreaHandler struct {
	service service.AreaService
	logger  *slog.Logger
}

func NewAreaHandler(s service.AreaService, logger *slog.Logger) *AreaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AreaHandler{
		service: s,
		logger:  logger,
	}
}

// GetAreas は対応エリアの一覧を取得するためのハンドラ
func (h *AreaHandler) GetAreas(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAreas"))

	areas, err := h.service.ListAreas(r.Context())
	if err != nil {
		logger.Error("Error listing areas in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if areas == nil {
		areas = []*model.Area{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, areas, logger)
}

// GetArea はslug指定でエリアを1件取得するためのハンドラ
func (h *AreaHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetArea"))

	slug := chi.URLParam(r, "slug")
	area, err := h.service.GetAreaBySlug(r.Context(), slug)
	if err != nil {
		logger.Warn("Error getting area in service", slog.Any("error", err), slog.String("slug", slug))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, area, logger)
}

// GetAreaVendors はエリア内の対応業者をランキング順で取得するためのハンドラ
func (h *AreaHandler) GetAreaVendors(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAreaVendors"))

	slug := chi.URLParam(r, "slug")
	vendors, err := h.service.ListVendorsForArea(r.Context(), slug)
	if err != nil {
		logger.Warn("Error listing area vendors in service", slog.Any("error", err), slog.String("slug", slug))
		webutil.HandleError(w, logger, err)
		return
	}

	if vendors == nil {
		vendors = []model.RankedVendor{}
	}
	logger.Info("Area vendors listed successfully", slog.String("slug", slug), slog.Int("count", len(vendors)))
	webutil.RespondWithJSON(w, http.StatusOK, vendors, logger)
}
