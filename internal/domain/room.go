package domain

import "fmt"

type Room struct {
	ID          int32    `json:"id"`
	LocationID  int32    `json:"location_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Type        string   `json:"type"`
	PlacesCount int16    `json:"places_count"`
	WindowCount *int16   `json:"window_count,omitempty"`
	HasBoard    *bool    `json:"has_board,omitempty"`
	HasBalcony  *bool    `json:"has_balcony,omitempty"`
	PlacePrice  int32    `json:"place_price"` // monthly price of one place, whole currency units
	Area        *float32 `json:"area,omitempty"`
}

// Validate checks the record-level invariants of a room.
func (r *Room) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: room name is required", ErrMalformedInput)
	}
	if r.PlacePrice < 0 {
		return fmt.Errorf("%w: place price must not be negative, got %d", ErrMalformedInput, r.PlacePrice)
	}
	if r.PlacesCount < 0 {
		return fmt.Errorf("%w: places count must not be negative, got %d", ErrMalformedInput, r.PlacesCount)
	}
	return nil
}
