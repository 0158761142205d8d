package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/IBilba/pet-a-vet/internal/audit"
	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
)

const DefaultDurationMin = 30

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ActorID   uint
	ActorRole roles.Role

	PetID      uint
	ProviderID uint // 0 = pick the first provider matching the service type

	Date string // YYYY-MM-DD
	Time string // HH:mm or h:mm AM/PM

	Type        string
	Reason      string
	Notes       string
	IsEmergency bool
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	if in.ActorRole == roles.Customer && pet.OwnerID != in.ActorID {
		return nil, httperr.ErrBusiness("not_pet_owner")
	}

	start, err := parseStart(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, err
	}

	serviceType := domain.ServiceTypeFor(in.Type)

	provider, err := uc.resolveProvider(ctx, in.ProviderID, serviceType)
	if err != nil {
		return nil, err
	}

	reason := in.Reason
	if in.IsEmergency && !strings.Contains(strings.ToLower(reason), "emergency") {
		reason = strings.TrimSpace("EMERGENCY: " + reason)
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = DefaultDurationMin
	}

	ap := &models.Appointment{
		PetID:       pet.ID,
		ProviderID:  provider.ID,
		ServiceType: string(serviceType),
		StartTime:   start,
		DurationMin: duration,
		Status:      string(domain.InitialStatus(in.IsEmergency)),
		Reason:      reason,
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateScheduled(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveProvider(
	ctx context.Context,
	providerID uint,
	serviceType domain.ServiceType,
) (*models.User, error) {

	if providerID != 0 {
		user, err := uc.repo.GetUser(ctx, providerID)
		if err != nil {
			return nil, httperr.ErrBusiness("provider_not_found")
		}
		role, ok := roles.Normalize(user.Role)
		if !ok || !roles.IsProvider(role) {
			return nil, httperr.ErrBusiness("provider_not_found")
		}
		return user, nil
	}

	want := roles.Veterinarian
	if serviceType == domain.ServiceGrooming {
		want = roles.PetGroomer
	}

	user, err := uc.repo.FindProviderByRole(ctx, string(want))
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}
	return user, nil
}

func parseStart(date, clock string, loc *time.Location) (time.Time, error) {
	hm, err := domain.To24Hour(clock)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return start, nil
}
