package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
	ucAppointment "github.com/IBilba/pet-a-vet/internal/usecase/appointment"
)

func TestListAppointmentsScopesCustomersToOwnPets(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	repo.PutUser(models.User{ID: strangerID, Name: "Giorgos", Role: string(roles.Customer)})
	repo.PutPet(models.Pet{ID: 2, OwnerID: strangerID, Name: "Luna", Species: "Cat"})

	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	list := ucAppointment.NewListAppointments(repo, loc)

	_, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	other := createInput()
	other.ActorID = strangerID
	other.PetID = 2
	other.Time = "12:00"
	_, err = create.Execute(context.Background(), other)
	require.NoError(t, err)

	// A customer sees only their own pets' appointments, even when they
	// try to filter for somebody else's.
	views, err := list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   ownerID,
		ActorRole: roles.Customer,
		OwnerID:   strangerID,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Rex", views[0].PetName)

	// Staff see everything.
	views, err = list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   vetID,
		ActorRole: roles.Veterinarian,
	})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestListAppointmentsFilters(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	list := ucAppointment.NewListAppointments(repo, loc)

	first := createInput()
	_, err := create.Execute(context.Background(), first)
	require.NoError(t, err)

	second := createInput()
	second.Date = "2025-06-03"
	second.Type = "grooming"
	_, err = create.Execute(context.Background(), second)
	require.NoError(t, err)

	views, err := list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   vetID,
		ActorRole: roles.Veterinarian,
		Date:      "2025-06-03",
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2025-06-03", views[0].Date)
	assert.Equal(t, "GROOMING", views[0].ServiceType)

	views, err = list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:    vetID,
		ActorRole:  roles.Veterinarian,
		ProviderID: groomerID,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)

	views, err = list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   vetID,
		ActorRole: roles.Veterinarian,
		Status:    "scheduled",
	})
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestListAppointmentsRejectsBadInput(t *testing.T) {
	repo, _, loc := newFixture(t)
	list := ucAppointment.NewListAppointments(repo, loc)

	_, err := list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   vetID,
		ActorRole: roles.Veterinarian,
		Date:      "03/06/2025",
	})
	assert.Error(t, err)

	_, err = list.Execute(context.Background(), ucAppointment.ListAppointmentsInput{
		ActorID:   vetID,
		ActorRole: roles.Veterinarian,
		Status:    "pending",
	})
	assert.Error(t, err)
}
