package appointment

import (
	"testing"
	"time"

	"github.com/IBilba/pet-a-vet/internal/models"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2025-03-10 "+clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return ts
}

func TestHasConflictWithinWindow(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, StartTime: at(t, "10:00"), Status: string(StatusScheduled)},
	}

	cases := []struct {
		clock    string
		conflict bool
	}{
		{clock: "10:00", conflict: true},
		{clock: "10:29", conflict: true},
		{clock: "09:31", conflict: true},
		{clock: "10:30", conflict: false},
		{clock: "09:30", conflict: false},
		{clock: "11:00", conflict: false},
	}

	for _, c := range cases {
		if got := HasConflict(existing, at(t, c.clock), 0); got != c.conflict {
			t.Fatalf("HasConflict at %s: expected %v, got %v", c.clock, c.conflict, got)
		}
	}
}

func TestHasConflictIgnoresClosedAppointments(t *testing.T) {
	start := at(t, "10:00")

	for _, status := range []Status{StatusCancelled, StatusNoShow} {
		existing := []models.Appointment{
			{ID: 1, StartTime: start, Status: string(status)},
		}
		if HasConflict(existing, start, 0) {
			t.Fatalf("status %s should not conflict", status)
		}
	}

	for _, status := range []Status{StatusScheduled, StatusCompleted, StatusEmergency} {
		existing := []models.Appointment{
			{ID: 1, StartTime: start, Status: string(status)},
		}
		if !HasConflict(existing, start, 0) {
			t.Fatalf("status %s should conflict", status)
		}
	}
}

func TestHasConflictExcludesSelfOnReschedule(t *testing.T) {
	existing := []models.Appointment{
		{ID: 7, StartTime: at(t, "10:00"), Status: string(StatusScheduled)},
	}

	if HasConflict(existing, at(t, "10:10"), 7) {
		t.Fatal("an appointment must not conflict with itself")
	}
	if !HasConflict(existing, at(t, "10:10"), 8) {
		t.Fatal("other appointments must still conflict")
	}
}
