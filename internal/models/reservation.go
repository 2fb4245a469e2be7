package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// preço congelado no momento da reserva
	TotalPrice    float64 `json:"total_price"`
	PaymentMethod string  `gorm:"size:30" json:"payment_method"`

	Active bool `gorm:"default:true" json:"active"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
