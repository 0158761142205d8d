package appointment

import (
	"time"

	"github.com/IBilba/pet-a-vet/internal/models"
)

// ConflictWindow is the minimum spacing between two open appointments of
// the same provider. The rule compares start-time proximity only, not
// interval overlap against the stored duration.
const ConflictWindow = 30 * time.Minute

// HasConflict scans a provider's same-day appointments and reports
// whether any open one starts within the conflict window of the proposed
// start. excludeID skips the appointment being rescheduled.
func HasConflict(existing []models.Appointment, start time.Time, excludeID uint) bool {
	for _, ap := range existing {
		if ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).IsOpen() {
			continue
		}

		diff := ap.StartTime.Sub(start)
		if diff < 0 {
			diff = -diff
		}
		if diff < ConflictWindow {
			return true
		}
	}
	return false
}
