package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"iejimai_com/internal/handlers"
	"iejimai_com/internal/model"
	svc_mocks "iejimai_com/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Test GetAreas ---
func TestAreaHandler_GetAreas(t *testing.T) {
	t.Run("正常系: 表示順で一覧を返す", func(t *testing.T) {
		mockService := new(svc_mocks.AreaService)
		mockService.On("ListAreas", mock.Anything).
			Return([]*model.Area{
				{AreaID: uuid.New(), Name: "世田谷区", Slug: "setagaya", OrderIndex: 1},
				{AreaID: uuid.New(), Name: "杉並区", Slug: "suginami", OrderIndex: 2},
			}, nil).Once()
		handler := handlers.NewAreaHandler(mockService, testLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/areas", nil)
		rr := httptest.NewRecorder()
		handler.GetAreas(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"slug":"setagaya"`)
		mockService.AssertExpectations(t)
	})
}

// --- Test GetAreaVendors ---
func TestAreaHandler_GetAreaVendors(t *testing.T) {
	t.Run("正常系: ランキング順で返す", func(t *testing.T) {
		mockService := new(svc_mocks.AreaService)
		mockService.On("ListVendorsForArea", mock.Anything, "setagaya").
			Return([]model.RankedVendor{
				{Rank: 1, Vendor: &model.Vendor{VendorID: uuid.New(), Name: "A社", Rating: 4.8}},
			}, nil).Once()
		handler := handlers.NewAreaHandler(mockService, testLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/areas/setagaya/vendors", nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "slug", "setagaya"))
		rr := httptest.NewRecorder()
		handler.GetAreaVendors(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"rank":1`)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないエリアは404", func(t *testing.T) {
		mockService := new(svc_mocks.AreaService)
		mockService.On("ListVendorsForArea", mock.Anything, "unknown").
			Return(nil, model.ErrNotFound).Once()
		handler := handlers.NewAreaHandler(mockService, testLogger())

		req := newJsonRequest(t, http.MethodGet, "/api/areas/unknown/vendors", nil)
		req = req.WithContext(contextWithChiURLParam(req.Context(), "slug", "unknown"))
		rr := httptest.NewRecorder()
		handler.GetAreaVendors(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockService.AssertExpectations(t)
	})
}
