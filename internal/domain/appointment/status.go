package appointment

import (
	"strings"

	"github.com/IBilba/pet-a-vet/internal/httperr"
)

// ======================================================
// Appointment Status
// ======================================================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
	StatusEmergency Status = "EMERGENCY"
)

// ParseStatus accepts any casing; clients see lowercase, the database
// stores uppercase.
func ParseStatus(s string) (Status, bool) {
	up := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch up {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow, StatusEmergency:
		return up, true
	}
	return "", false
}

// IsOpen reports whether the appointment still occupies its slot.
// Cancelled and no-show rows are ignored by the conflict check.
func (s Status) IsOpen() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// IsTerminal reports whether the appointment can no longer change state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ======================================================
// Validations
// ======================================================

func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition guards explicit status updates from the PUT endpoint.
// Open appointments may move to any terminal state or between the two
// open states; terminal rows are frozen.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}
	if current.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus(emergency bool) Status {
	if emergency {
		return StatusEmergency
	}
	return StatusScheduled
}
