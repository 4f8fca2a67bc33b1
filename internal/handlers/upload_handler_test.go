package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"iejimai_com/internal/handlers"
	svc_mocks "iejimai_com/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: multipartリクエストの作成 ---
func newMultipartRequest(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// --- Test PostUpload ---
func TestUploadHandler_PostUpload(t *testing.T) {
	t.Run("正常系: アップロードしてURLを返す", func(t *testing.T) {
		mockStorage := new(svc_mocks.ImageStorage)
		mockStorage.On("Upload", mock.Anything, "shop.jpg", mock.Anything, mock.Anything).
			Return("https://example-bucket.s3.ap-northeast-1.amazonaws.com/vendors/123.jpg", nil).Once()
		handler := handlers.NewUploadHandler(mockStorage, testLogger())

		req := newMultipartRequest(t, "file", "shop.jpg", []byte("fake image bytes"))
		rr := httptest.NewRecorder()
		handler.PostUpload(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"url":"https://example-bucket`)
		mockStorage.AssertExpectations(t)
	})

	t.Run("異常系: 500KB超は拒否する", func(t *testing.T) {
		mockStorage := new(svc_mocks.ImageStorage)
		handler := handlers.NewUploadHandler(mockStorage, testLogger())

		big := []byte(strings.Repeat("a", 600*1024))
		req := newMultipartRequest(t, "file", "big.jpg", big)
		rr := httptest.NewRecorder()
		handler.PostUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"FILE_TOO_LARGE"`)
		mockStorage.AssertExpectations(t)
	})

	t.Run("異常系: fileフィールドが無い場合は400", func(t *testing.T) {
		mockStorage := new(svc_mocks.ImageStorage)
		handler := handlers.NewUploadHandler(mockStorage, testLogger())

		req := newMultipartRequest(t, "attachment", "shop.jpg", []byte("fake image bytes"))
		rr := httptest.NewRecorder()
		handler.PostUpload(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"MISSING_FILE"`)
		mockStorage.AssertExpectations(t)
	})
}
