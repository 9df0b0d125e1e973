package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/it23631960/pearl-logistics-admin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListOrders(t *testing.T) {
	want := []models.Order{
		{ID: 1, Status: models.OrderStatusPending, TotalAmount: decimal.NewFromInt(120)},
		{ID: 2, Status: models.OrderStatusCompleted},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	got, err := client.ListOrders(context.Background())
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_ListOrders_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.ListOrders(context.Background())
	assert.ErrorIs(t, err, models.ErrBackendInternal)
}

func TestClient_ListUsers(t *testing.T) {
	want := []models.Customer{
		{ID: 9, FirstName: "A", Email: "a@pearl.lk", City: "Colombo"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/get-users", r.URL.Path)
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	got, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClient_GetItem(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantName   string
		wantErr    error
	}{
		{
			name:       "found",
			statusCode: http.StatusOK,
			body:       `{"item":{"id":55,"name":"pearl necklace","description":"freshwater"}}`,
			wantName:   "pearl necklace",
		},
		{
			name:       "not_found",
			statusCode: http.StatusNotFound,
			wantErr:    models.ErrItemNotFound,
		},
		{
			name:       "internal_error",
			statusCode: http.StatusInternalServerError,
			wantErr:    models.ErrBackendInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/items/get/55", r.URL.Path)
				w.WriteHeader(tt.statusCode)
				if tt.body != "" {
					io.WriteString(w, tt.body)
				}
			}))
			defer srv.Close()

			client := NewClient(srv.URL)

			item, err := client.GetItem(context.Background(), 55)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, item.Name)
		})
	}
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
		wantAnyErr bool
	}{
		{name: "confirmed", statusCode: http.StatusOK},
		{name: "not_found", statusCode: http.StatusNotFound, wantErr: models.ErrOrderNotFound},
		{name: "internal_error", statusCode: http.StatusInternalServerError, wantErr: models.ErrBackendInternal},
		{name: "conflict_is_failure", statusCode: http.StatusConflict, wantAnyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/api/orders/1/status", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `{"status":"APPROVED"}`, string(body))

				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client := NewClient(srv.URL)

			err := client.UpdateOrderStatus(context.Background(), 1, models.OrderStatusApproved)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Categories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
			json.NewEncoder(w).Encode([]models.Category{{ID: 1, Name: "necklaces"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/categories":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"rings"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Category{ID: 2, Name: "rings"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/categories/2":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "necklaces", categories[0].Name)

	created, err := client.CreateCategory(ctx, "rings")
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	assert.NoError(t, client.DeleteCategory(ctx, 2))
}
