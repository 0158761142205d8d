package appointment

import (
	"strings"
	"time"

	"github.com/IBilba/pet-a-vet/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// IsEmergency derives the emergency flag shown to clients from the
// reason text.
func IsEmergency(ap *models.Appointment) bool {
	if Status(ap.Status) == StatusEmergency {
		return true
	}
	return strings.Contains(strings.ToLower(ap.Reason), "emergency")
}
