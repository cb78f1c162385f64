package handlers

import (
	"context"

	"github.com/solveighty/Coffee-Blend/internal/models"
	"github.com/solveighty/Coffee-Blend/internal/services"
)

// ReservationServiceInterface defines the contract for the reservation service
type ReservationServiceInterface interface {
	CreateReservation(ctx context.Context, req *services.CreateReservationRequest) (*models.Reservation, error)
	GetReservations(ctx context.Context) ([]models.Reservation, error)
	GetReservationByID(ctx context.Context, id uint) (*models.Reservation, error)
	DeleteReservation(ctx context.Context, id uint) error
}
