package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/roles"
	ucAppointment "github.com/IBilba/pet-a-vet/internal/usecase/appointment"
)

func strptr(s string) *string { return &s }

func TestUpdateAppointmentReschedule(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	update := ucAppointment.NewUpdateAppointment(repo, dispatcher, loc)

	ap, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	moved, err := update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       ownerID,
		ActorRole:     roles.Customer,
		AppointmentID: ap.ID,
		Time:          strptr("3:00 PM"),
	})
	require.NoError(t, err)
	assert.Equal(t, "15:00", moved.StartTime.Format("15:04"))
	assert.Equal(t, "2025-06-02", moved.StartTime.Format("2006-01-02"))
}

func TestUpdateAppointmentRescheduleConflicts(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	update := ucAppointment.NewUpdateAppointment(repo, dispatcher, loc)

	first, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	second := createInput()
	second.Time = "11:00"
	ap, err := create.Execute(context.Background(), second)
	require.NoError(t, err)

	_, err = update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       ownerID,
		ActorRole:     roles.Customer,
		AppointmentID: ap.ID,
		Time:          strptr("10:15"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// Moving onto its own slot is not a conflict with itself.
	_, err = update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       ownerID,
		ActorRole:     roles.Customer,
		AppointmentID: first.ID,
		Time:          strptr("10:05"),
	})
	assert.NoError(t, err)
}

func TestUpdateAppointmentStatusTransitions(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	update := ucAppointment.NewUpdateAppointment(repo, dispatcher, loc)

	ap, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	done, err := update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       vetID,
		ActorRole:     roles.Veterinarian,
		AppointmentID: ap.ID,
		Status:        strptr("completed"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	require.NotNil(t, done.CompletedAt)

	// Terminal appointments cannot be moved.
	_, err = update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       vetID,
		ActorRole:     roles.Veterinarian,
		AppointmentID: ap.ID,
		Time:          strptr("16:00"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateAppointmentForeignPetDenied(t *testing.T) {
	repo, dispatcher, loc := newFixture(t)
	create := ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
	update := ucAppointment.NewUpdateAppointment(repo, dispatcher, loc)

	ap, err := create.Execute(context.Background(), createInput())
	require.NoError(t, err)

	_, err = update.Execute(context.Background(), ucAppointment.UpdateAppointmentInput{
		ActorID:       strangerID,
		ActorRole:     roles.Customer,
		AppointmentID: ap.ID,
		Notes:         strptr("sneaky"),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "not_pet_owner"))
}
