package http

import (
	"strconv"
	"time"

	"roomrent-backend/internal/domain"
	"roomrent-backend/internal/utils"
)

// Identifiers cross the API as decimal strings.

type TransactionResponse struct {
	ID            string    `json:"id"`
	RentalID      string    `json:"rentalId"`
	UserID        string    `json:"userId"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	RoomID        string    `json:"roomId"`
	RoomName      string    `json:"roomName"`
	RoomType      string    `json:"roomType"`
	ManagerID     string    `json:"managerId"`
	PaidFrom      string    `json:"paidFrom"`
	PaidTo        string    `json:"paidTo"`
	Amount        int32     `json:"amount"`
	TimeCreated   time.Time `json:"timeCreated"`
}

type AddTransactionRequest struct {
	RentalID    string `json:"rentalId"`
	ManagerID   string `json:"managerId"`
	MonthsCount int    `json:"monthsCount"`
}

type ManagerResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Description  *string   `json:"description"`
	LocationID   *string   `json:"locationId"`
	LocationName *string   `json:"locationName"`
	TimeCreated  time.Time `json:"timeCreated"`
	TimeUpdated  time.Time `json:"timeUpdated"`
}

// PersonRequest is the body for creating or editing a manager or a renter.
// ID is ignored on create.
type PersonRequest struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Description *string `json:"description"`
	LocationID  *string `json:"locationId"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Description *string   `json:"description"`
	LocationID  *string   `json:"locationId"`
	TimeCreated time.Time `json:"timeCreated"`
	TimeUpdated time.Time `json:"timeUpdated"`
}

type LocationRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description"`
}

type LocationResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description"`
}

type RoomRequest struct {
	ID          string   `json:"id"`
	LocationID  string   `json:"locationId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Type        string   `json:"type"`
	PlacesCount int16    `json:"placesCount"`
	WindowCount *int16   `json:"windowCount"`
	HasBoard    *bool    `json:"hasBoard"`
	HasBalcony  *bool    `json:"hasBalcony"`
	PlacePrice  int32    `json:"placePrice"`
	Area        *float32 `json:"area"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	LocationID  string   `json:"locationId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Type        string   `json:"type"`
	PlacesCount int16    `json:"placesCount"`
	WindowCount *int16   `json:"windowCount"`
	HasBoard    *bool    `json:"hasBoard"`
	HasBalcony  *bool    `json:"hasBalcony"`
	PlacePrice  int32    `json:"placePrice"`
	Area        *float32 `json:"area"`
}

type AddRentalRequest struct {
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
	DateStart string `json:"dateStart"`
}

type RentalResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"roomId"`
	UserID        string  `json:"userId"`
	DateStart     string  `json:"dateStart"`
	DatePaidUntil *string `json:"datePaidUntil"`
}

func formatID(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}

func formatOptionalID(id *int32) *string {
	if id == nil {
		return nil
	}
	s := formatID(*id)
	return &s
}

func MapTransactionViewToResponse(v *domain.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:            formatID(v.ID),
		RentalID:      formatID(v.RentalID),
		UserID:        formatID(v.UserID),
		UserFirstName: v.UserFirstName,
		UserLastName:  v.UserLastName,
		RoomID:        formatID(v.RoomID),
		RoomName:      v.RoomName,
		RoomType:      v.RoomType,
		ManagerID:     formatID(v.ManagerID),
		PaidFrom:      v.PaidFrom.Format(utils.DateLayout),
		PaidTo:        v.PaidTo.Format(utils.DateLayout),
		Amount:        v.Amount,
		TimeCreated:   v.TimeCreated.UTC(),
	}
}

func MapManagerToResponse(m *domain.Manager) ManagerResponse {
	return ManagerResponse{
		ID:           formatID(m.ID),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Description:  m.Description,
		LocationID:   formatOptionalID(m.LocationID),
		LocationName: m.LocationName,
		TimeCreated:  m.TimeCreated,
		TimeUpdated:  m.TimeUpdated,
	}
}

func MapUserToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          formatID(u.ID),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Description: u.Description,
		LocationID:  formatOptionalID(u.LocationID),
		TimeCreated: u.TimeCreated,
		TimeUpdated: u.TimeUpdated,
	}
}

func MapLocationToResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:          formatID(l.ID),
		Name:        l.Name,
		Address:     l.Address,
		Description: l.Description,
	}
}

func MapRoomToResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:          formatID(r.ID),
		LocationID:  formatID(r.LocationID),
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		PlacesCount: r.PlacesCount,
		WindowCount: r.WindowCount,
		HasBoard:    r.HasBoard,
		HasBalcony:  r.HasBalcony,
		PlacePrice:  r.PlacePrice,
		Area:        r.Area,
	}
}

func MapRentalToResponse(r *domain.RoomRental) RentalResponse {
	resp := RentalResponse{
		ID:        formatID(r.ID),
		RoomID:    formatID(r.RoomID),
		UserID:    formatID(r.UserID),
		DateStart: r.StartDate.Format(utils.DateLayout),
	}
	if r.PaidUntil != nil {
		s := r.PaidUntil.Format(utils.DateLayout)
		resp.DatePaidUntil = &s
	}
	return resp
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
