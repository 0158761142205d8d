package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBilba/pet-a-vet/internal/audit"
	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	infraRepo "github.com/IBilba/pet-a-vet/internal/infra/repository"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
	ucAppointment "github.com/IBilba/pet-a-vet/internal/usecase/appointment"
)

const (
	ownerID    = uint(100)
	strangerID = uint(200)
	vetID      = uint(10)
	groomerID  = uint(11)
	petID      = uint(1)
)

func newFixture(t *testing.T) (*infraRepo.AppointmentMemoryRepository, *audit.Dispatcher, *time.Location) {
	t.Helper()

	repo := infraRepo.NewAppointmentMemoryRepository()
	repo.PutUser(models.User{ID: ownerID, Name: "Maria", Role: string(roles.Customer)})
	repo.PutUser(models.User{ID: vetID, Name: "Dr. Nikos", Role: string(roles.Veterinarian)})
	repo.PutUser(models.User{ID: groomerID, Name: "Eleni", Role: string(roles.PetGroomer)})
	repo.PutPet(models.Pet{ID: petID, OwnerID: ownerID, Name: "Rex", Species: "Dog"})

	dispatcher := audit.NewDispatcher(audit.New(nil))

	loc, err := time.LoadLocation("Europe/Athens")
	require.NoError(t, err)

	return repo, dispatcher, loc
}

func createInput() ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		ActorID:   ownerID,
		ActorRole: roles.Customer,
		PetID:     petID,
		Date:      "2025-06-02",
		Time:      "10:00",
		Type:      "checkup",
		Reason:    "annual checkup",
	}
}

func TestCreateAppointment(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	ap, err := uc.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, string(domain.ServiceMedical), ap.ServiceType)
	assert.Equal(t, vetID, ap.ProviderID, "should default to the first veterinarian")
	assert.Equal(t, ucAppointment.DefaultDurationMin, ap.DurationMin)
	assert.Equal(t, "10:00", ap.StartTime.Format("15:04"))
}

func TestCreateAppointmentNormalizesTwelveHourClock(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.Time = "2:30 PM"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "14:30", ap.StartTime.Format("15:04"))
}

func TestCreateAppointmentRoutesGroomingToGroomer(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.Type = "grooming"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, groomerID, ap.ProviderID)
	assert.Equal(t, string(domain.ServiceGrooming), ap.ServiceType)
}

func TestCreateAppointmentRejectsConflictWithinWindow(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	_, err := uc.Execute(context.Background(), createInput())
	require.NoError(t, err)

	in := createInput()
	in.Time = "10:20"
	_, err = uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// Exactly 30 minutes apart is allowed.
	in.Time = "10:30"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentAfterCancellationSucceeds(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	cancel := ucAppointment.NewCancelAppointment(repo, dispatcher)

	ap, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), ownerID, roles.Customer, ap.ID)
	require.NoError(t, err)

	// The cancelled appointment no longer blocks the slot.
	_, err = create.Execute(context.Background(), createInput())
	assert.NoError(t, err)
}

func TestCreateAppointmentDeniesForeignPet(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.ActorID = strangerID

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_pet_owner"))
}

func TestCreateAppointmentStaffCanBookAnyPet(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.ActorID = vetID
	in.ActorRole = roles.Veterinarian

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentEmergencyFlag(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.IsEmergency = true
	in.Reason = "hit by car"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusEmergency), ap.Status)
	assert.Equal(t, "EMERGENCY: hit by car", ap.Reason)
	assert.True(t, domain.IsEmergency(ap))
}

func TestCreateAppointmentUnknownPet(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	uc := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)

	in := createInput()
	in.PetID = 999

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "pet_not_found"))
}
