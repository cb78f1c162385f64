package storefront

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/solveighty/Coffee-Blend/pkg/cart"
)

// ErrSubmitInFlight is returned when a form is submitted while a previous
// submission is still awaiting the server, the same guard as a disabled
// submit button.
var ErrSubmitInFlight = errors.New("submission already in progress")

// ValidationError is a client-side rejection; the request is never sent and
// Message is shown inline to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ReservationForm binds the appointment form's fields by name.
type ReservationForm struct {
	FirstName string
	LastName  string
	Date      string
	Time      string
	Phone     string
	Message   string

	client *Client

	mu         sync.Mutex
	submitting bool
}

func NewReservationForm(client *Client) *ReservationForm {
	return &ReservationForm{client: client}
}

// Submit validates the form, creates the reservation, and resets the fields
// on success. Only one submission may be in flight at a time.
func (f *ReservationForm) Submit(ctx context.Context) (*Reservation, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.finish()

	firstName := strings.TrimSpace(f.FirstName)
	lastName := strings.TrimSpace(f.LastName)
	date := strings.TrimSpace(f.Date)
	timeValue := strings.TrimSpace(f.Time)
	phone := strings.TrimSpace(f.Phone)
	message := strings.TrimSpace(f.Message)

	switch {
	case firstName == "":
		return nil, &ValidationError{Message: "Please enter your first name"}
	case lastName == "":
		return nil, &ValidationError{Message: "Please enter your last name"}
	case date == "":
		return nil, &ValidationError{Message: "Please select a date"}
	case timeValue == "":
		return nil, &ValidationError{Message: "Please select a time"}
	case phone == "":
		return nil, &ValidationError{Message: "Please enter your phone number"}
	}

	req := ReservationRequest{
		FirstName: firstName,
		LastName:  lastName,
		Date:      NormalizeDate(date),
		Time:      timeValue,
		Phone:     phone,
	}
	if message != "" {
		req.Message = &message
	}

	reservation, err := f.client.CreateReservation(ctx, req)
	if err != nil {
		return nil, err
	}

	f.reset()
	return reservation, nil
}

func (f *ReservationForm) reset() {
	f.FirstName = ""
	f.LastName = ""
	f.Date = ""
	f.Time = ""
	f.Phone = ""
	f.Message = ""
}

func (f *ReservationForm) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	return nil
}

func (f *ReservationForm) finish() {
	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()
}

// CheckoutForm binds the billing form's fields by name. The order total is
// read from the rendered cart view, not recomputed from the store.
type CheckoutForm struct {
	FirstName     string
	LastName      string
	Country       string
	StreetAddress string
	Apartment     string
	City          string
	Postcode      string
	Phone         string
	Email         string
	PaymentMethod string

	client *Client
	view   *cart.View

	mu         sync.Mutex
	submitting bool
}

func NewCheckoutForm(client *Client, view *cart.View) *CheckoutForm {
	return &CheckoutForm{client: client, view: view}
}

// Submit validates the form, places the order with the view's current total,
// and resets the fields on success.
func (f *CheckoutForm) Submit(ctx context.Context) (*Order, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.finish()

	firstName := strings.TrimSpace(f.FirstName)
	lastName := strings.TrimSpace(f.LastName)
	country := strings.TrimSpace(f.Country)
	streetAddress := strings.TrimSpace(f.StreetAddress)
	apartment := strings.TrimSpace(f.Apartment)
	city := strings.TrimSpace(f.City)
	postcode := strings.TrimSpace(f.Postcode)
	phone := strings.TrimSpace(f.Phone)
	email := strings.TrimSpace(f.Email)

	switch {
	case firstName == "":
		return nil, &ValidationError{Message: "Please enter your first name"}
	case lastName == "":
		return nil, &ValidationError{Message: "Please enter your last name"}
	case country == "":
		return nil, &ValidationError{Message: "Please select a country"}
	case streetAddress == "":
		return nil, &ValidationError{Message: "Please enter your street address"}
	case city == "":
		return nil, &ValidationError{Message: "Please enter your city"}
	case postcode == "":
		return nil, &ValidationError{Message: "Please enter your postcode/ZIP"}
	case phone == "":
		return nil, &ValidationError{Message: "Please enter your phone number"}
	case email == "" || !strings.Contains(email, "@"):
		return nil, &ValidationError{Message: "Please enter a valid email address"}
	}

	paymentMethod := strings.TrimSpace(f.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = "Direct Bank Transfer"
	}

	req := OrderRequest{
		FirstName:     firstName,
		LastName:      lastName,
		Country:       country,
		StreetAddress: streetAddress,
		City:          city,
		Postcode:      postcode,
		Phone:         phone,
		Email:         email,
		TotalAmount:   f.view.TotalAmount(),
		PaymentMethod: paymentMethod,
	}
	if apartment != "" {
		req.Apartment = &apartment
	}

	order, err := f.client.CreateOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	f.reset()
	return order, nil
}

func (f *CheckoutForm) reset() {
	f.FirstName = ""
	f.LastName = ""
	f.Country = ""
	f.StreetAddress = ""
	f.Apartment = ""
	f.City = ""
	f.Postcode = ""
	f.Phone = ""
	f.Email = ""
	f.PaymentMethod = ""
}

func (f *CheckoutForm) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	return nil
}

func (f *CheckoutForm) finish() {
	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()
}

// dateLayouts covers what the datepicker is known to emit.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// NormalizeDate converts a datepicker value to YYYY-MM-DD. Unparseable
// values pass through unchanged for the server to reject.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}
