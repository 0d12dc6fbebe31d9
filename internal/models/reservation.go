package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint        `gorm:"not null;uniqueIndex:idx_reservation_slot,priority:1" json:"barbershop_id"`
	Barbershop   *Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barbershop,omitempty"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer,omitempty"`

	// Date is "YYYY-MM-DD" and Time is "HH:MM"; (barbershop, date, time)
	// is unique.
	Date string `gorm:"column:slot_date;size:10;not null;uniqueIndex:idx_reservation_slot,priority:2" json:"date"`
	Time string `gorm:"column:slot_time;size:5;not null;uniqueIndex:idx_reservation_slot,priority:3" json:"time"`

	// Comma-joined service kinds in selection order.
	Services string `gorm:"size:255;not null" json:"services"`

	Confirmed    bool `gorm:"not null" json:"confirmed"`
	ReminderSent bool `gorm:"not null" json:"reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
}
