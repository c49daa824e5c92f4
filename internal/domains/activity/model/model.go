package model

import (
	"time"

	"luxeroom/shared/constant"
)

type Kind string

const (
	KindBooking Kind = "booking"
	KindStatus  Kind = "status"
	KindSystem  Kind = "system"
)

// Entry is one line of the audit trail every booking or status mutation
// leaves behind.
type Entry struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	StaffName string `json:"staffName"`
	Type      Kind   `json:"type"`
}

func New(id, message, staffName string, kind Kind, now time.Time) Entry {
	return Entry{
		ID:        id,
		Message:   message,
		Timestamp: now.UnixNano() / int64(time.Millisecond),
		StaffName: staffName,
		Type:      kind,
	}
}

// Append prepends the entry, newest first, and drops everything beyond the
// retention window. The log is a ring of the most recent entries, not a
// full history.
func Append(entries []Entry, e Entry) []Entry {
	next := make([]Entry, 0, len(entries)+1)
	next = append(next, e)
	next = append(next, entries...)

	if len(next) > constant.ActivityLogLimit {
		next = next[:constant.ActivityLogLimit]
	}

	return next
}
