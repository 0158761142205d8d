package appointment

import (
	"context"
	"time"

	"github.com/IBilba/pet-a-vet/internal/models"
)

// Filter narrows appointment listings. Zero values mean "no filter";
// Date restricts to the calendar day containing it.
type Filter struct {
	Date       *time.Time
	PetID      uint
	OwnerID    uint
	ProviderID uint
	Status     Status
}

type Repository interface {
	// -------- Related entities --------
	GetPet(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindProviderByRole(
		ctx context.Context,
		role string,
	) (*models.User, error)

	// -------- Appointment (create / reschedule) --------
	// Both run the conflict check and the write atomically and return
	// ErrBusiness("time_conflict") when the slot is taken.
	CreateScheduled(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Reschedule(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / read) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		f Filter,
	) ([]models.Appointment, error)
}
