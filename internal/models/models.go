package models

import "time"

// Reservation model - PostgreSQL
// Rows serialize with snake_case keys, matching what the API has always
// returned to the storefront.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Date      string    `gorm:"type:date;not null" json:"date"`
	Time      string    `gorm:"type:time;not null" json:"time"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Message   *string   `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order model - PostgreSQL
// Status is set once at creation ("pending") and has no transition endpoint.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:100;not null" json:"first_name"`
	LastName      string    `gorm:"size:100;not null" json:"last_name"`
	Country       string    `gorm:"size:100;not null" json:"country"`
	StreetAddress string    `gorm:"size:255;not null" json:"street_address"`
	Apartment     *string   `gorm:"size:255" json:"apartment"`
	City          string    `gorm:"size:100;not null" json:"city"`
	Postcode      string    `gorm:"size:20;not null" json:"postcode"`
	Phone         string    `gorm:"size:20;not null" json:"phone"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	TotalAmount   float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method"`
	Status        string    `gorm:"size:50;default:pending" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
