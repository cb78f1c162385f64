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

type OrderService struct {
	orderRepo     repositories.OrderRepository
	kafkaProducer *messaging.KafkaProducer
	kafkaBrokers  []string
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	kafkaProducer *messaging.KafkaProducer,
	kafkaBrokers []string,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		kafkaProducer: kafkaProducer,
		kafkaBrokers:  kafkaBrokers,
	}
}

type CreateOrderRequest struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Country       string  `json:"country"`
	StreetAddress string  `json:"streetAddress"`
	Apartment     *string `json:"apartment"`
	City          string  `json:"city"`
	Postcode      string  `json:"postcode"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// validate rejects zero values for every required field. A zero totalAmount
// counts as missing; negative amounts pass through unflagged, matching the
// storefront's historical behavior.
func (req *CreateOrderRequest) validate() error {
	if req.FirstName == "" || req.LastName == "" || req.Country == "" ||
		req.StreetAddress == "" || req.City == "" || req.Postcode == "" ||
		req.Phone == "" || req.Email == "" || req.TotalAmount == 0 {
		return ErrMissingFields
	}
	return nil
}

func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	order := &models.Order{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Country:       req.Country,
		StreetAddress: req.StreetAddress,
		Apartment:     req.Apartment,
		City:          req.City,
		Postcode:      req.Postcode,
		Phone:         req.Phone,
		Email:         req.Email,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: paymentMethod,
		Status:        "pending",
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	event := messaging.OrderEvent{
		Type:        "order.created",
		OrderID:     order.ID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		Email:       order.Email,
	}
	if s.kafkaProducer != nil {
		if err := s.kafkaProducer.SendMessage("order_events", s.kafkaBrokers, order.Email, event); err != nil {
			log.Printf("Failed to publish order event: %v", err)
		}
	}

	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}
