package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ReservationListDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`

	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description"`
	DurationMin        int    `json:"duration_min"`

	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`
}

func FromReservation(res models.Reservation) ReservationListDTO {
	out := ReservationListDTO{
		ID:                 res.ID,
		StartTime:          res.StartTime,
		EndTime:            res.EndTime,
		Status:             res.Status,
		TotalPrice:         res.TotalPrice,
		PaymentMethod:      res.PaymentMethod,
		ServiceName:        res.Service.Name,
		ServiceDescription: res.Service.Description,
		DurationMin:        res.Service.DurationMin,
	}

	if res.User.ID != 0 {
		out.ClientName = res.User.FirstName + " " + res.User.LastName
		out.ClientEmail = res.User.Email
	}

	return out
}
