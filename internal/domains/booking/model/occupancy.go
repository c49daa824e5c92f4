package model

import (
	"time"

	"luxeroom/shared/timezone"
)

// FindCovering returns the first booking, in collection order, for the room
// whose [startDate, endDate) range contains the calendar day of date. When
// overlapping bookings exist on the room the earliest-inserted one wins.
// A zero Booking and false mean the day is vacant.
func FindCovering(bookings []Booking, roomID string, date time.Time) (Booking, bool) {
	day := timezone.DayStart(date)

	for _, b := range bookings {
		if b.RoomID != roomID {
			continue
		}

		start := timezone.DayStart(b.StartDate)
		end := timezone.DayStart(b.EndDate)

		if !day.Before(start) && day.Before(end) {
			return b, true
		}
	}

	return Booking{}, false
}

// IsCheckInDay reports whether date falls on the booking's first day.
func IsCheckInDay(b Booking, date time.Time) bool {
	return timezone.DayStart(date).Equal(timezone.DayStart(b.StartDate))
}
