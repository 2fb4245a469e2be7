package models

import "time"

// Bloco no calendário compartilhado. ReservationID nulo = bloqueio
// manual/manutenção criado pela equipe.
type CalendarBlock struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"reservation,omitempty"`

	Title string `gorm:"size:150" json:"title"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Color string `gorm:"size:10" json:"color"`
	Kind  string `gorm:"size:20;default:'reservation'" json:"kind"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
