package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solveighty/Coffee-Blend/internal/models"
	"github.com/solveighty/Coffee-Blend/internal/services"
)

type stubOrderService struct {
	createFn func(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error)
	listFn   func(ctx context.Context) ([]models.Order, error)
	getFn    func(ctx context.Context, id uint) (*models.Order, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error) {
	return s.createFn(ctx, req)
}

func (s *stubOrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	return s.getFn(ctx, id)
}

func newOrderRouter(service OrderServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewOrderHandler(service).RegisterRoutes(api)
	return router
}

func postOrder(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

const validOrderPayload = `{
	"firstName": "Jane", "lastName": "Doe", "country": "Ecuador",
	"streetAddress": "123 Bean St", "city": "Quito", "postcode": "170101",
	"phone": "555-0100", "email": "jane@example.com", "totalAmount": 21.5
}`

func TestCreateOrderMissingTotalAmount(t *testing.T) {
	service := &stubOrderService{
		createFn: func(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error) {
			return nil, services.ErrMissingFields
		},
	}
	router := newOrderRouter(service)

	payload := `{"firstName":"Jane","lastName":"Doe","country":"Ecuador","streetAddress":"123 Bean St","city":"Quito","postcode":"170101","phone":"555-0100","email":"jane@example.com"}`
	w := postOrder(router, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestCreateOrderSuccessDefaultsStatusPending(t *testing.T) {
	service := &stubOrderService{
		createFn: func(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error) {
			return &models.Order{
				ID:            3,
				FirstName:     req.FirstName,
				TotalAmount:   req.TotalAmount,
				PaymentMethod: "card",
				Status:        "pending",
			}, nil
		},
	}
	router := newOrderRouter(service)

	w := postOrder(router, validOrderPayload)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order created successfully", body["message"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 21.5, data["total_amount"])
}

func TestGetOrderByIDNotFound(t *testing.T) {
	service := &stubOrderService{
		getFn: func(ctx context.Context, id uint) (*models.Order, error) {
			return nil, services.ErrNotFound
		},
	}
	router := newOrderRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/77", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Order not found", body["message"])
}

func TestGetOrders(t *testing.T) {
	service := &stubOrderService{
		listFn: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{{ID: 2, Status: "pending"}, {ID: 1, Status: "pending"}}, nil
		},
	}
	router := newOrderRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}
