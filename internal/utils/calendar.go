package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"roomrent-backend/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid date format %q, expected yyyy-mm-dd", domain.ErrMalformedInput, dateStr)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid year: %v", domain.ErrMalformedInput, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid month: %v", domain.ErrMalformedInput, err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid day: %v", domain.ErrMalformedInput, err)
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrMalformedInput)
	}

	if day < 1 || day > DaysInMonth(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("%w: day %d does not exist in %04d-%02d", domain.ErrMalformedInput, day, year, month)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year int, month time.Month) int {
	if month == time.February {
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	if month == time.April || month == time.June || month == time.September || month == time.November {
		return 30
	}

	return 31
}

// AddCalendarMonths adds n calendar months to d. The day of month is kept
// when the target month has it and clamped to the target month's last day
// otherwise, so 2021-01-31 plus one month is 2021-02-28. time.AddDate would
// normalize that date into March instead.
func AddCalendarMonths(d time.Time, n int) time.Time {
	year, month, day := d.Date()

	total := int(month) - 1 + n
	year += total / 12
	total %= 12
	if total < 0 {
		total += 12
		year--
	}
	target := time.Month(total + 1)

	if last := DaysInMonth(year, target); day > last {
		day = last
	}

	hour, min, sec := d.Clock()
	return time.Date(year, target, day, hour, min, sec, d.Nanosecond(), d.Location())
}

// MaxDateYear is the last year a coverage date may fall in.
const MaxDateYear = 9999

// CoverageEnd returns base plus months calendar months, rejecting ranges that
// end after MaxDateYear.
func CoverageEnd(base time.Time, months int) (time.Time, error) {
	if months <= 0 {
		return time.Time{}, fmt.Errorf("%w: months count must be positive, got %d", domain.ErrMalformedInput, months)
	}
	if months > (MaxDateYear-base.Year()+1)*12 {
		return time.Time{}, fmt.Errorf("%w: %d months from %s ends after year %d",
			domain.ErrMalformedInput, months, base.Format(DateLayout), MaxDateYear)
	}

	end := AddCalendarMonths(base, months)
	if end.Year() > MaxDateYear {
		return time.Time{}, fmt.Errorf("%w: %d months from %s ends after year %d",
			domain.ErrMalformedInput, months, base.Format(DateLayout), MaxDateYear)
	}
	return end, nil
}

// TruncateToDate drops the clock part of t and moves it to UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseID parses a decimal identifier as it crosses the request boundary.
func ParseID(raw string) (int32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing id", domain.ErrMalformedInput)
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", domain.ErrMalformedInput, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: id must be positive, got %d", domain.ErrMalformedInput, id)
	}
	return int32(id), nil
}
