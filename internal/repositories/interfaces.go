package repositories

import (
	"context"

	"github.com/solveighty/Coffee-Blend/internal/models"
)

// ReservationRepository interface for PostgreSQL reservation operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	List(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id uint) (*models.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

// OrderRepository interface for PostgreSQL order operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
}
