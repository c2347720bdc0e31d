package domain

import "time"

// RoomRental binds a renter to a room. PaidUntil is the paid-until watermark:
// the last date covered by a settled transaction. It is nil until the first
// payment and only the ledger advances it.
type RoomRental struct {
	ID        int32      `json:"id"`
	RoomID    int32      `json:"room_id"`
	UserID    int32      `json:"user_id"`
	StartDate time.Time  `json:"start_date"`
	PaidUntil *time.Time `json:"paid_until,omitempty"`
}

// PaymentBase returns the date the next payment starts covering from.
func (r *RoomRental) PaymentBase() time.Time {
	if r.PaidUntil != nil {
		return *r.PaidUntil
	}
	return r.StartDate
}
