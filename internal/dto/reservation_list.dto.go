package dto

import "time"

type CustomerDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type ReservationListDTO struct {
	ID           uint        `json:"id"`
	Date         string      `json:"date"`
	Time         string      `json:"time"`
	Services     []string    `json:"services"`
	Confirmed    bool        `json:"confirmed"`
	ReminderSent bool        `json:"reminder_sent"`
	CreatedAt    time.Time   `json:"created_at"`
	Customer     CustomerDTO `json:"customer"`
}

type ReservationCreatedDTO struct {
	ID           uint      `json:"id"`
	BarbershopID uint      `json:"barbershop_id"`
	CustomerID   uint      `json:"customer_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Services     []string  `json:"services"`
	Total        float64   `json:"total"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"created_at"`
}
