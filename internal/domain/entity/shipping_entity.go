package entity

import "time"

// ShippingMethod is read-only from the API's perspective; rows are seeded.
type ShippingMethod struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Dimensions of a package for a shipping estimate.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
