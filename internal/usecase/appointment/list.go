package appointment

import (
	"context"
	"time"

	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/dto"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/roles"
)

type ListAppointmentsInput struct {
	ActorID   uint
	ActorRole roles.Role

	Date       string // YYYY-MM-DD, optional
	PetID      uint
	OwnerID    uint
	ProviderID uint
	Status     string
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentView, error) {

	f := domain.Filter{
		PetID:      in.PetID,
		OwnerID:    in.OwnerID,
		ProviderID: in.ProviderID,
	}

	// Customers only ever see appointments for pets they own, whatever
	// other filters they supply.
	if in.ActorRole == roles.Customer {
		f.OwnerID = in.ActorID
	}

	if in.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		f.Date = &date
	}

	if in.Status != "" {
		status, ok := domain.ParseStatus(in.Status)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		f.Status = status
	}

	appointments, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentView, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewAppointmentView(&appointments[i]))
	}

	return out, nil
}
