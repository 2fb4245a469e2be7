package models

import "time"

type Reminder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint        `gorm:"index" json:"reservation_id"`
	Reservation   Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reservation"`

	FireAt  time.Time `gorm:"index" json:"fire_at"`
	Message string    `gorm:"size:255" json:"message"`

	Active         bool       `gorm:"default:true" json:"active"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
