package utils

import (
	"fmt"
	"math"

	"roomrent-backend/internal/domain"
)

// RentAmount returns placePrice * months, rejected when the product does not
// fit the int32 amount column.
func RentAmount(placePrice int32, months int) (int32, error) {
	if months <= 0 {
		return 0, fmt.Errorf("%w: months count must be positive, got %d", domain.ErrMalformedInput, months)
	}
	if placePrice < 0 {
		return 0, fmt.Errorf("%w: place price must not be negative, got %d", domain.ErrMalformedInput, placePrice)
	}

	if placePrice > 0 && months > math.MaxInt32/int(placePrice) {
		return 0, fmt.Errorf("%w: amount for %d months at %d exceeds the supported range", domain.ErrMalformedInput, months, placePrice)
	}
	return placePrice * int32(months), nil
}
