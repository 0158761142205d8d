package appointment

import (
	"testing"
	"time"

	"github.com/IBilba/pet-a-vet/internal/models"
)

func TestCancelSetsStatusAndTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	now := time.Now()

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("expected CANCELLED, got %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatal("cancelled_at not set")
	}
}

func TestCancelRejectsTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted, StatusNoShow} {
		ap := &models.Appointment{Status: string(status)}
		if err := Cancel(ap, time.Now()); err == nil {
			t.Fatalf("expected error cancelling %s appointment", status)
		}
	}
}

func TestCompleteAllowsEmergency(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusEmergency)}
	if err := Complete(ap, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("expected COMPLETED, got %s", ap.Status)
	}
}

func TestParseStatusIsCaseInsensitive(t *testing.T) {
	for _, in := range []string{"scheduled", "SCHEDULED", " no_show "} {
		if _, ok := ParseStatus(in); !ok {
			t.Fatalf("ParseStatus(%q) should succeed", in)
		}
	}
	if _, ok := ParseStatus("postponed"); ok {
		t.Fatal("ParseStatus should reject unknown statuses")
	}
}

func TestIsEmergencyDerivedFromReason(t *testing.T) {
	cases := []struct {
		ap       models.Appointment
		expected bool
	}{
		{ap: models.Appointment{Status: string(StatusEmergency)}, expected: true},
		{ap: models.Appointment{Status: string(StatusScheduled), Reason: "EMERGENCY: hit by car"}, expected: true},
		{ap: models.Appointment{Status: string(StatusScheduled), Reason: "possible emergency, limping"}, expected: true},
		{ap: models.Appointment{Status: string(StatusScheduled), Reason: "annual checkup"}, expected: false},
	}

	for _, c := range cases {
		if got := IsEmergency(&c.ap); got != c.expected {
			t.Fatalf("IsEmergency(%q, %s): expected %v", c.ap.Reason, c.ap.Status, c.expected)
		}
	}
}
