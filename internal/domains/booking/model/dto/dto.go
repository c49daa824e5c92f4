package dto

import (
	"time"

	"luxeroom/internal/domains/booking/model"
	"luxeroom/shared/constant"
	"luxeroom/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID    string `json:"roomId"    validate:"required"`
	GuestName string `json:"guestName" validate:"required,max=100"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	Nights    int    `json:"nights"    validate:"required,min=1"`
	Notes     string `json:"notes"     validate:"omitempty,max=500"`
}

// Start parses the requested check-in date in the application timezone.
// Validation already pinned the format, so a parse error here is a defect.
func (c *CreateBookingRequest) Start() (time.Time, error) {
	return timezone.Parse(constant.DateFormat, c.StartDate)
}

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	GuestName string `json:"guestName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Nights    int    `json:"nights"`
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	UpdatedAt int64  `json:"updatedAt"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.GuestName = booking.GuestName
	r.StartDate = booking.StartDate.Format(constant.DateFormat)
	r.EndDate = booking.EndDate.Format(constant.DateFormat)
	r.Nights = booking.Nights()
	r.StaffID = booking.StaffID
	r.StaffName = booking.StaffName
	r.Status = string(booking.Status)
	r.Notes = booking.Notes
	r.UpdatedAt = booking.UpdatedAt
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// OccupancyResponse answers "who is in this room on this day". Booking is
// nil on a vacant day and CheckInDay is only ever true when Booked is.
type OccupancyResponse struct {
	RoomID     string           `json:"roomId"`
	Date       string           `json:"date"`
	Booked     bool             `json:"booked"`
	CheckInDay bool             `json:"checkInDay"`
	Booking    *BookingResponse `json:"booking,omitempty"`
}

type DraftNoteRequest struct {
	RequestID string `json:"requestId" validate:"required"`
	GuestName string `json:"guestName" validate:"required,max=100"`
	Nights    int    `json:"nights"    validate:"required,min=1"`
	RoomID    string `json:"roomId"    validate:"required"`
}

type DraftNoteResponse struct {
	RequestID string `json:"requestId"`
	Note      string `json:"note"`
}
