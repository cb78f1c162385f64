package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeJSON(t *testing.T, w http.ResponseWriter, status int, body map[string]interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestCreateReservationSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations", r.URL.Path)

		var req ReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Jane", req.FirstName)

		envelopeJSON(t, w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "Reservation created successfully",
			"data": map[string]interface{}{
				"id":         7,
				"first_name": "Jane",
				"last_name":  "Doe",
				"date":       "2026-09-01",
				"time":       "18:30",
				"phone":      "555-0100",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	reservation, err := client.CreateReservation(context.Background(), ReservationRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Date:      "2026-09-01",
		Time:      "18:30",
		Phone:     "555-0100",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), reservation.ID)
	assert.Equal(t, "Jane", reservation.FirstName)
}

func TestErrorEnvelopeSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeJSON(t, w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	_, err := client.CreateReservation(context.Background(), ReservationRequest{FirstName: "Jane"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestNotFoundSurfacesAsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelopeJSON(t, w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "Reservation not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	_, err := client.GetReservation(context.Background(), 9999)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Reservation not found", apiErr.Message)
}

func TestNetworkFailureWrapsErrNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL + "/api")
	_, err := client.GetReservations(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGetOrdersDecodesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		envelopeJSON(t, w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"id": 2, "first_name": "B", "total_amount": 12.5, "status": "pending"},
				{"id": 1, "first_name": "A", "total_amount": 8.0, "status": "pending"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	orders, err := client.GetOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)
	assert.Equal(t, 12.5, orders[0].TotalAmount)
}

func TestDeleteReservation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/reservations/3", r.URL.Path)
		envelopeJSON(t, w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Reservation deleted successfully",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	assert.NoError(t, client.DeleteReservation(context.Background(), 3))
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		envelopeJSON(t, w, http.StatusOK, map[string]interface{}{"status": "Server is running"})
	}))
	defer server.Close()

	client := NewClient(server.URL + "/api")
	assert.NoError(t, client.Health(context.Background()))
}
