package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/Coffee-Blend/internal/services"
)

type OrderHandler struct {
	orderService OrderServiceInterface
}

func NewOrderHandler(orderService OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders", h.GetOrders)
	router.GET("/orders/:id", h.GetOrderByID)
}

// @Summary Create a new order
// @Tags orders
// @Accept json
// @Produce json
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		respondStoreError(c, "Error creating order", err)
		return
	}

	respondCreated(c, "Order created successfully", order)
}

// @Summary Get all orders, newest first
// @Tags orders
// @Produce json
// @Router /api/orders [get]
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Error fetching orders", err)
		return
	}

	respondData(c, http.StatusOK, orders)
}

// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found")
			return
		}
		respondStoreError(c, "Error fetching order", err)
		return
	}

	respondData(c, http.StatusOK, order)
}
