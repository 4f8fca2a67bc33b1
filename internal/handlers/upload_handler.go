// internal/handlers/upload_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"iejimai_com/internal/config"
	"iejimai_com/internal/model"
	"iejimai_com/internal/service"
	"iejimai_com/internal/webutil"
)

// UploadHandler は業者画像アップロードの受け口です（管理者用）
type UploadHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

func NewUploadHandler(storage service.ImageStorage, logger *slog.Logger) *UploadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// PostUpload はmultipart/form-dataの「file」フィールドを受け取り、
// 保存先の公開URLを返すためのハンドラ。サイズ上限を超えるリクエストは拒否する
func (h *UploadHandler) PostUpload(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostUpload"))

	// ボディ全体に上限をかける。超過時はMaxBytesReaderがエラーを返す
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)

	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || strings.Contains(err.Error(), "request body too large") {
			logger.Warn("Upload exceeds size limit", slog.Int64("limit", config.MaxUploadBytes))
			appErr := model.NewAppError("FILE_TOO_LARGE", "ファイルサイズは500KB以下にしてください。", "file", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "ファイルの形式が正しくありません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing file field in upload", slog.String("error", err.Error()))
		appErr := model.NewAppError("MISSING_FILE", "ファイルが指定されていません。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	if header.Size > config.MaxUploadBytes {
		logger.Warn("Upload exceeds size limit", slog.Int64("size", header.Size), slog.Int64("limit", config.MaxUploadBytes))
		appErr := model.NewAppError("FILE_TOO_LARGE", "ファイルサイズは500KB以下にしてください。", "file", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	url, err := h.storage.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		logger.Error("Error uploading image to storage", slog.Any("error", err), slog.String("filename", header.Filename))
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	logger.Info("Image uploaded successfully", slog.String("filename", header.Filename), slog.String("url", url))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"url": url}, logger)
}
