package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/models"
)

// AppointmentMemoryRepository is an in-memory domain.Repository used by
// the use-case tests and local demos.
type AppointmentMemoryRepository struct {
	mu sync.Mutex

	pets         map[uint]models.Pet
	users        map[uint]models.User
	appointments map[uint]models.Appointment
	nextID       uint
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		pets:         make(map[uint]models.Pet),
		users:        make(map[uint]models.User),
		appointments: make(map[uint]models.Appointment),
		nextID:       1,
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *AppointmentMemoryRepository) PutPet(p models.Pet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[p.ID] = p
}

func (r *AppointmentMemoryRepository) PutUser(u models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

// --------------------------------------------------
// Related entities
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetPet(
	_ context.Context,
	id uint,
) (*models.Pet, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, httperr.ErrBusiness("pet_not_found")
	}
	return &pet, nil
}

func (r *AppointmentMemoryRepository) GetUser(
	_ context.Context,
	id uint,
) (*models.User, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, httperr.ErrBusiness("provider_not_found")
	}
	return &user, nil
}

func (r *AppointmentMemoryRepository) FindProviderByRole(
	_ context.Context,
	role string,
) (*models.User, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if u := r.users[id]; u.Role == role {
			return &u, nil
		}
	}
	return nil, httperr.ErrBusiness("provider_not_found")
}

// --------------------------------------------------
// Create / reschedule
// --------------------------------------------------

func (r *AppointmentMemoryRepository) CreateScheduled(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if domain.HasConflict(r.providerDayLocked(ap.ProviderID, ap.StartTime), ap.StartTime, 0) {
		return httperr.ErrBusiness("time_conflict")
	}

	ap.ID = r.nextID
	r.nextID++
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	r.hydrateLocked(ap)
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) Reschedule(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if domain.HasConflict(r.providerDayLocked(ap.ProviderID, ap.StartTime), ap.StartTime, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}

	ap.UpdatedAt = time.Now()
	r.hydrateLocked(ap)
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) providerDayLocked(
	providerID uint,
	start time.Time,
) []models.Appointment {

	dayStart := time.Date(
		start.Year(), start.Month(), start.Day(),
		0, 0, 0, 0,
		start.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProviderID != providerID {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}
	return out
}

func (r *AppointmentMemoryRepository) hydrateLocked(ap *models.Appointment) {
	if pet, ok := r.pets[ap.PetID]; ok {
		ap.Pet = pet
	}
	if provider, ok := r.users[ap.ProviderID]; ok {
		ap.Provider = provider
	}
}

// --------------------------------------------------
// Read / state change
// --------------------------------------------------

func (r *AppointmentMemoryRepository) GetAppointment(
	_ context.Context,
	id uint,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) UpdateAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	ap.UpdatedAt = time.Now()
	r.hydrateLocked(ap)
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) ListAppointments(
	_ context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.Date != nil {
			dayStart := time.Date(
				f.Date.Year(), f.Date.Month(), f.Date.Day(),
				0, 0, 0, 0,
				f.Date.Location(),
			)
			if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayStart.Add(24*time.Hour)) {
				continue
			}
		}
		if f.PetID != 0 && ap.PetID != f.PetID {
			continue
		}
		if f.ProviderID != 0 && ap.ProviderID != f.ProviderID {
			continue
		}
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		if f.OwnerID != 0 {
			pet, ok := r.pets[ap.PetID]
			if !ok || pet.OwnerID != f.OwnerID {
				continue
			}
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)
