package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/it23631960/pearl-logistics-admin/internal/handler/http/mocks"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"github.com/it23631960/pearl-logistics-admin/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svcMock := mocks.NewMockCategoryService(ctrl)
	svcMock.EXPECT().List(gomock.Any()).Return([]models.Category{{ID: 1, Name: "necklaces"}}, nil).Times(1)

	req, err := http.NewRequest(http.MethodGet, "/api/admin/categories", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()

	handler := NewCategoryHandler(svcMock, validation.New())
	h := handler.ListCategories()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var got []models.Category
	require.NoError(t, json.Unmarshal(resBody, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "necklaces", got[0].Name)
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockCategoryService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_201",
			body: `{"name":"rings"}`,
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), "rings").Return(&models.Category{ID: 2, Name: "rings"}, nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "missing_name_return_400",
			body: `{}`,
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "blank_name_return_400",
			body: `{"name":"   "}`,
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), "   ").Return(nil, models.ErrEmptyCategoryName).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "backend_failure_return_502",
			body: `{"name":"rings"}`,
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), "rings").Return(nil, models.ErrBackendInternal).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(tt.body))
			require.NoError(t, err)

			w := httptest.NewRecorder()

			handler := NewCategoryHandler(tt.setup(t), validation.New())
			h := handler.CreateCategory()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	tests := []struct {
		name           string
		categoryID     string
		setup          func(t *testing.T) *mocks.MockCategoryService
		wantStatusCode int
	}{
		{
			name:       "valid_request_return_204",
			categoryID: "2",
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil).Times(1)
				return svcMock
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:       "bad_category_id_return_400",
			categoryID: "abc",
			setup: func(t *testing.T) *mocks.MockCategoryService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockCategoryService(ctrl)
				svcMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodDelete, "/api/admin/categories/"+tt.categoryID, nil)
			require.NoError(t, err)
			req = withURLParam(req, "categoryID", tt.categoryID)

			w := httptest.NewRecorder()

			handler := NewCategoryHandler(tt.setup(t), validation.New())
			h := handler.DeleteCategory()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}
