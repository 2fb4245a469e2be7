package models

import "time"

// Registro imutável gravado na exclusão de um serviço: um por usuário
// que possuía reserva referenciando o serviço. Nunca é atualizado.
type DeletedServiceRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID   uint   `gorm:"index;not null" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	DeletedAt time.Time `gorm:"not null" json:"deleted_at"`
}
