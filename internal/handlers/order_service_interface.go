package handlers

import (
	"context"

	"github.com/solveighty/Coffee-Blend/internal/models"
	"github.com/solveighty/Coffee-Blend/internal/services"
)

// OrderServiceInterface defines the contract for the order service
type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req *services.CreateOrderRequest) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id uint) (*models.Order, error)
}
