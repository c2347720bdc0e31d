package domain

import "time"

type Manager struct {
	ID           int32     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Description  *string   `json:"description,omitempty"`
	LocationID   *int32    `json:"location_id,omitempty"`
	LocationName *string   `json:"location_name,omitempty"` // joined from locations
	TimeCreated  time.Time `json:"time_created"`
	TimeUpdated  time.Time `json:"time_updated"`
}
