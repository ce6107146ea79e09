package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rookgm/salesadmin/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackend starts a fake REST backend serving r
func newBackend(t *testing.T, r http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/api")
}

func TestClient_URL(t *testing.T) {
	c := NewClient("http://localhost:3000/api")

	u, err := c.URL(ResourceStatuses)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api/status", u)

	u, err = c.URL(ResourceOrderItems, "42")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api/order-items/42", u)
}

func TestEndpoint_List(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []models.Platform
	}{
		{
			name: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, `[{"id":1,"name":"Alibaba","customerFee":1.5,"sellerCommission":3,"active":true}]`)
			},
			want: []models.Platform{{
				ID:               "1",
				Name:             "Alibaba",
				CustomerFee:      decimal.RequireFromString("1.5"),
				SellerCommission: decimal.NewFromInt(3),
				Active:           true,
			}},
		},
		{
			name: "server error collapses to empty",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: []models.Platform{},
		},
		{
			name: "malformed json collapses to empty",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `[{"id":`)
			},
			want: []models.Platform{},
		},
		{
			name: "null body is empty",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `null`)
			},
			want: []models.Platform{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/platforms", tt.handler)
			c := newBackend(t, r)

			got := NewEndpoint[models.Platform](c, ResourcePlatforms).List(context.Background())
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID, got[i].ID)
				assert.Equal(t, tt.want[i].Name, got[i].Name)
				assert.True(t, tt.want[i].CustomerFee.Equal(got[i].CustomerFee))
				assert.True(t, tt.want[i].SellerCommission.Equal(got[i].SellerCommission))
			}
		})
	}
}

func TestEndpoint_ListOrdersMixedTimestamps(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":"ORD-1","dateTime":"2025-10-01T12:00:00Z","platformId":1,"statusId":1,"totalAmount":10},
			{"id":"ORD-2","dateTime":"2025-10-01T12:00:00","platformId":1,"statusId":1,"totalAmount":20}
		]`)
	})
	c := newBackend(t, r)

	got := NewEndpoint[models.Order](c, ResourceOrders).List(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "ORD-2", got[1].ID)
	assert.True(t, got[0].DateTime.Equal(got[1].DateTime.Time))
}

func TestEndpoint_ListTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL)
	got := NewEndpoint[models.Order](c, ResourceOrders).List(context.Background())
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestEndpoint_Create(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string

	r := chi.NewRouter()
	r.Post("/api/customers", func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":7,"name":"Ana","phone":"555","active":true}`)
	})
	c := newBackend(t, r)

	created, err := NewEndpoint[models.Customer](c, ResourceCustomers).
		Create(context.Background(), models.Customer{Name: "Ana", Phone: "555", Active: true})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotContains(t, gotBody, "id")
	assert.Equal(t, "Ana", gotBody["name"])
}

func TestEndpoint_CreateRemoteError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{name: "server text", body: "phone already registered", wantBody: "phone already registered"},
		{name: "empty body", body: "", wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/api/customers", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				io.WriteString(w, tt.body)
			})
			c := newBackend(t, r)

			_, err := NewEndpoint[models.Customer](c, ResourceCustomers).
				Create(context.Background(), models.Customer{Name: "Ana", Phone: "555"})

			var remoteErr *models.RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.StatusCode)
			assert.Equal(t, tt.wantBody, remoteErr.Body)
			assert.NotEmpty(t, remoteErr.Error())
		})
	}
}

func TestEndpoint_Update(t *testing.T) {
	var gotMethod string
	var gotBody models.Order

	r := chi.NewRouter()
	r.Put("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		gotBody.StatusName = "completed"
		json.NewEncoder(w).Encode(gotBody)
	})
	c := newBackend(t, r)

	updated, err := NewEndpoint[models.Order](c, ResourceOrders).
		Update(context.Background(), "ORD-1", models.Order{ID: "ORD-1", PlatformID: "1", StatusID: "2"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "ORD-1", gotBody.ID)
	assert.Equal(t, "completed", updated.StatusName)
}

func TestEndpoint_UpdateDecodeError(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	c := newBackend(t, r)

	_, err := NewEndpoint[models.Order](c, ResourceOrders).
		Update(context.Background(), "ORD-1", models.Order{ID: "ORD-1"})

	var decodeErr *models.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestEndpoint_Delete(t *testing.T) {
	var deleted string

	r := chi.NewRouter()
	r.Delete("/api/sellers/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = chi.URLParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	})
	c := newBackend(t, r)

	err := NewEndpoint[models.Seller](c, ResourceSellers).Delete(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "3", deleted)
}

func TestEndpoint_DeleteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), ResourceOrders, "X")

	var transportErr *models.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	r.Delete("/api/status/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "in use", http.StatusConflict)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/api", WithMetrics(m))
	NewEndpoint[models.Status](c, ResourceStatuses).List(context.Background())
	_ = c.Delete(context.Background(), ResourceStatuses, "1")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("status", http.MethodGet, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("status", http.MethodDelete, outcomeRemote)))
}
