package model

import (
	"strings"
	"time"

	"luxeroom/shared/failure"
	"luxeroom/shared/timezone"
)

const (
	EntityName = "booking"
)

type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCheckedIn Status = "CheckedIn"
	StatusCompleted Status = "Completed"
)

// Booking is a guest stay over a half-open date range: the guest occupies
// [StartDate, EndDate), so EndDate is the check-out morning. Bookings are
// immutable once created; the collection only ever grows or is replaced
// wholesale by a sync message.
//
// Nothing rejects two bookings overlapping on the same room. The original
// product never did, and occupancy lookups resolve the ambiguity by
// insertion order; see FindCovering.
type Booking struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	GuestName string    `json:"guestName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	StaffID   string    `json:"staffId"`
	StaffName string    `json:"staffName"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt int64     `json:"updatedAt"`
}

// New validates and builds a booking of nights whole days starting at the
// calendar day of start. The EndDate is exclusive, so nights=1 yields a
// one-day range and the endDate > startDate invariant always holds.
func New(id, roomID, guestName, notes string, start time.Time, nights int, staffID, staffName string, now time.Time) (Booking, error) {
	if strings.TrimSpace(guestName) == "" {
		return Booking{}, failure.BadRequestFromString("guest name is required")
	}

	if nights < 1 {
		return Booking{}, failure.BadRequestFromString("nights must be at least 1")
	}

	startDay := timezone.DayStart(start)

	return Booking{
		ID:        id,
		RoomID:    roomID,
		GuestName: strings.TrimSpace(guestName),
		StartDate: startDay,
		EndDate:   timezone.AddDays(startDay, nights),
		StaffID:   staffID,
		StaffName: staffName,
		Status:    StatusBooked,
		Notes:     notes,
		UpdatedAt: now.UnixNano() / int64(time.Millisecond),
	}, nil
}

// Append returns a new collection with the booking added. The input slice
// is never mutated.
func Append(bookings []Booking, b Booking) []Booking {
	next := make([]Booking, 0, len(bookings)+1)
	next = append(next, bookings...)

	return append(next, b)
}

// Nights is the stay length in calendar days. The count walks day by day
// instead of dividing the wall-clock difference, because a stay spanning a
// DST transition has a 23- or 25-hour day in it.
func (b Booking) Nights() int {
	end := timezone.DayStart(b.EndDate)

	nights := 0
	for d := timezone.DayStart(b.StartDate); d.Before(end); d = timezone.AddDays(d, 1) {
		nights++
	}

	return nights
}
