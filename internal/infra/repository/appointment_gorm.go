package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Related entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) FindProviderByRole(
	ctx context.Context,
	role string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("UPPER(role) = ?", role).
		Order("id ASC").
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Create / reschedule (conflict-checked)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateScheduled(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.withConflictCheck(ctx, ap, 0, func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) Reschedule(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.withConflictCheck(ctx, ap, ap.ID, func(tx *gorm.DB) error {
		return tx.Save(ap).Error
	})
}

// withConflictCheck locks the provider's same-day rows so two concurrent
// bookings cannot both pass the spacing check.
func (r *AppointmentGormRepository) withConflictCheck(
	ctx context.Context,
	ap *models.Appointment,
	excludeID uint,
	write func(tx *gorm.DB) error,
) error {

	dayStart := time.Date(
		ap.StartTime.Year(), ap.StartTime.Month(), ap.StartTime.Day(),
		0, 0, 0, 0,
		ap.StartTime.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var sameDay []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"provider_id = ? AND start_time >= ? AND start_time < ?",
				ap.ProviderID, dayStart, dayEnd,
			).
			Find(&sameDay).Error; err != nil {
			return err
		}

		if domain.HasConflict(sameDay, ap.StartTime, excludeID) {
			return httperr.ErrBusiness("time_conflict")
		}

		return write(tx)
	})
}

// --------------------------------------------------
// Read / state change
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Provider").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Preload("Pet").
		Preload("Provider")

	if f.Date != nil {
		dayStart := time.Date(
			f.Date.Year(), f.Date.Month(), f.Date.Day(),
			0, 0, 0, 0,
			f.Date.Location(),
		)
		q = q.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	if f.PetID != 0 {
		q = q.Where("pet_id = ?", f.PetID)
	}

	if f.ProviderID != 0 {
		q = q.Where("provider_id = ?", f.ProviderID)
	}

	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	if f.OwnerID != 0 {
		q = q.Joins("JOIN pets ON pets.id = appointments.pet_id").
			Where("pets.owner_id = ?", f.OwnerID)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
