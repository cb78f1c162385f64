package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/solveighty/Coffee-Blend/internal/models"
	"github.com/solveighty/Coffee-Blend/internal/repositories"
	"github.com/solveighty/Coffee-Blend/pkg/messaging"
)

type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	kafkaProducer   *messaging.KafkaProducer
	kafkaBrokers    []string
}

func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	kafkaProducer *messaging.KafkaProducer,
	kafkaBrokers []string,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		kafkaProducer:   kafkaProducer,
		kafkaBrokers:    kafkaBrokers,
	}
}

// CreateReservationRequest carries the appointment form fields. Keys are
// camelCase on the wire while stored rows come back snake_case.
type CreateReservationRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Phone     string  `json:"phone"`
	Message   *string `json:"message"`
}

func (req *CreateReservationRequest) validate() error {
	if req.FirstName == "" || req.LastName == "" || req.Date == "" || req.Time == "" || req.Phone == "" {
		return ErrMissingFields
	}
	return nil
}

func (s *ReservationService) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*models.Reservation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	reservation := &models.Reservation{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Date:      req.Date,
		Time:      req.Time,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	// Publish event asynchronously; a broker hiccup must not fail the booking
	event := messaging.ReservationEvent{
		Type:          "reservation.created",
		ReservationID: reservation.ID,
		Date:          reservation.Date,
		Time:          reservation.Time,
		Phone:         reservation.Phone,
	}
	if s.kafkaProducer != nil {
		if err := s.kafkaProducer.SendMessage("reservation_events", s.kafkaBrokers, reservation.Phone, event); err != nil {
			log.Printf("Failed to publish reservation event: %v", err)
		}
	}

	return reservation, nil
}

func (s *ReservationService) GetReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

func (s *ReservationService) GetReservationByID(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id uint) error {
	err := s.reservationRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
