package appointment

import (
	"context"
	"time"

	"github.com/IBilba/pet-a-vet/internal/audit"
	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
	"github.com/IBilba/pet-a-vet/internal/timezone"
)

type UpdateAppointmentInput struct {
	ActorID   uint
	ActorRole roles.Role

	AppointmentID uint

	Date   *string
	Time   *string
	Type   *string
	Notes  *string
	Status *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := assertCanTouch(ap, in.ActorID, in.ActorRole); err != nil {
		return nil, err
	}

	if in.Type != nil {
		ap.ServiceType = string(domain.ServiceTypeFor(*in.Type))
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if in.Status != nil {
		next, ok := domain.ParseStatus(*in.Status)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		if err := domain.CanTransition(domain.Status(ap.Status), next); err != nil {
			return nil, err
		}

		now := timezone.Now()
		switch next {
		case domain.StatusCancelled:
			ap.CancelledAt = &now
		case domain.StatusCompleted:
			ap.CompletedAt = &now
		}
		ap.Status = string(next)
	}

	rescheduled := false
	if in.Date != nil || in.Time != nil {
		if domain.Status(ap.Status).IsTerminal() {
			return nil, httperr.ErrBusiness("invalid_state")
		}

		date := ap.StartTime.Format("2006-01-02")
		clock := ap.StartTime.Format("15:04")
		if in.Date != nil {
			date = *in.Date
		}
		if in.Time != nil {
			clock = *in.Time
		}

		start, err := parseStart(date, clock, uc.loc)
		if err != nil {
			return nil, err
		}
		ap.StartTime = start
		rescheduled = true
	}

	if rescheduled {
		err = uc.repo.Reschedule(ctx, ap)
	} else {
		err = uc.repo.UpdateAppointment(ctx, ap)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// assertCanTouch lets staff act on any appointment and customers only on
// appointments of pets they own.
func assertCanTouch(
	ap *models.Appointment,
	actorID uint,
	actorRole roles.Role,
) error {
	if roles.IsStaff(actorRole) {
		return nil
	}
	if ap.Pet.OwnerID != actorID {
		return httperr.ErrBusiness("not_pet_owner")
	}
	return nil
}
