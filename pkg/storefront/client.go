// Package storefront is the client side of the storefront: a typed API
// client over the reservation/order endpoints and the two form submitters
// that feed them.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNetwork wraps transport failures: the request never produced a decodable
// response. Callers show a generic "please try again" message for these.
var ErrNetwork = errors.New("network error")

// APIError is a non-success envelope from the server, carrying the message
// the server wants shown to the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Envelope is the uniform response wrapper every endpoint returns.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Reservation is a stored reservation row.
type Reservation struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Phone     string    `json:"phone"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order is a stored order row.
type Order struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Country       string    `json:"country"`
	StreetAddress string    `json:"street_address"`
	Apartment     *string   `json:"apartment"`
	City          string    `json:"city"`
	Postcode      string    `json:"postcode"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReservationRequest is the appointment form payload.
type ReservationRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Phone     string  `json:"phone"`
	Message   *string `json:"message"`
}

// OrderRequest is the checkout form payload.
type OrderRequest struct {
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

// Client calls the storefront API. The base URL is injected because callers
// must not hardcode whether /api is reverse-proxied or served directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, http.DefaultClient)
}

func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) CreateReservation(ctx context.Context, req ReservationRequest) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) GetReservations(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) GetReservation(ctx context.Context, id uint) (*Reservation, error) {
	var reservation Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d", id), nil, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) DeleteReservation(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Health checks the server liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: "server is not healthy"}
	}
	return nil
}

// do sends one request and decodes the envelope regardless of status, so a
// 400 or 404 surfaces the server's message instead of a bare status code.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrNetwork, err)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}
