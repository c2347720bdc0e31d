package domain

import "time"

// Transaction is an immutable record of one payment. Amount is always
// room.PlacePrice * months and PaidTo is PaidFrom plus the same number of
// calendar months.
type Transaction struct {
	ID          int32     `json:"id"`
	RentalID    int32     `json:"rental_id"`
	ManagerID   int32     `json:"manager_id"`
	Amount      int32     `json:"amount"`
	PaidFrom    time.Time `json:"paid_from"`
	PaidTo      time.Time `json:"paid_to"`
	TimeCreated time.Time `json:"time_created"`
}

// TransactionView is a transaction joined with its rental, renter and room.
type TransactionView struct {
	Transaction
	UserID        int32  `json:"user_id"`
	UserFirstName string `json:"user_first_name"`
	UserLastName  string `json:"user_last_name"`
	UserEmail     string `json:"-"`
	RoomID        int32  `json:"room_id"`
	RoomName      string `json:"room_name"`
	RoomType      string `json:"room_type"`
}

// OverdueRental is a rental whose watermark lies in the past, joined with the
// renter contact details used by reminders.
type OverdueRental struct {
	RentalID      int32
	RoomName      string
	UserID        int32
	UserFirstName string
	UserEmail     string
	PaidUntil     time.Time
}
