package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
	Notice  string `gorm:"type:text" json:"notice"`

	// Prices by service kind ("corte", "barba", ...).
	Prices map[string]float64 `gorm:"serializer:json;type:text" json:"prices"`
	// Optional service kinds the owner switched on.
	EnabledServices []string `gorm:"serializer:json;type:text" json:"enabled_services"`
	// Fixed daily slot labels, "HH:MM", in display order.
	Slots           []string `gorm:"serializer:json;type:text" json:"slots"`
	SlotDurationMin int      `gorm:"default:45" json:"slot_duration_min"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
