package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/Coffee-Blend/internal/services"
)

type ReservationHandler struct {
	reservationService ReservationServiceInterface
}

func NewReservationHandler(reservationService ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

func (h *ReservationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reservations", h.CreateReservation)
	router.GET("/reservations", h.GetReservations)
	router.GET("/reservations/:id", h.GetReservationByID)
	router.DELETE("/reservations/:id", h.DeleteReservation)
}

// @Summary Create a new reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, "Missing required fields")
			return
		}
		respondStoreError(c, "Error creating reservation", err)
		return
	}

	respondCreated(c, "Reservation created successfully", reservation)
}

// @Summary Get all reservations, newest first
// @Tags reservations
// @Produce json
// @Router /api/reservations [get]
func (h *ReservationHandler) GetReservations(c *gin.Context) {
	reservations, err := h.reservationService.GetReservations(c.Request.Context())
	if err != nil {
		respondStoreError(c, "Error fetching reservations", err)
		return
	}

	respondData(c, http.StatusOK, reservations)
}

// @Summary Get reservation by ID
// @Tags reservations
// @Produce json
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Reservation not found")
			return
		}
		respondStoreError(c, "Error fetching reservation", err)
		return
	}

	respondData(c, http.StatusOK, reservation)
}

// @Summary Delete reservation
// @Tags reservations
// @Produce json
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Reservation not found")
		return
	}

	if err := h.reservationService.DeleteReservation(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Reservation not found")
			return
		}
		respondStoreError(c, "Error deleting reservation", err)
		return
	}

	respondMessage(c, http.StatusOK, "Reservation deleted successfully")
}
