package reports

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/IBilba/pet-a-vet/internal/models"
)

// ======================================================
// ROW TYPES
// ======================================================

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type TypeCount struct {
	ServiceType string `json:"service_type"`
	Count       int    `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type SpeciesCount struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}

type AgeBucket struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type RevenueTotals struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Source supplies the raw aggregates behind each report. A zero `from`
// means all time; species is an optional filter.
type Source interface {
	AppointmentsPerDay(ctx context.Context, from time.Time, species string) ([]DayCount, error)
	AppointmentsByType(ctx context.Context, from time.Time, species string) ([]TypeCount, error)
	DiagnosisCounts(ctx context.Context, from time.Time, species string) ([]CategoryCount, error)
	RevenueTotals(ctx context.Context, from time.Time) (RevenueTotals, error)
	RevenueByCategory(ctx context.Context, from time.Time) ([]CategoryRevenue, error)
	SpeciesCounts(ctx context.Context, species string) ([]SpeciesCount, error)
	AgeBuckets(ctx context.Context, species string) ([]AgeBucket, error)
}

// ======================================================
// GORM SOURCE
// ======================================================

// GormSource runs the aggregates against Postgres. Every filter is
// parameter-bound; nothing from the query string is concatenated into SQL.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) appointmentBase(ctx context.Context, from time.Time, species string) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Appointment{})

	if !from.IsZero() {
		q = q.Where("appointments.start_time >= ?", from)
	}
	if species != "" {
		q = q.Joins("JOIN pets ON pets.id = appointments.pet_id").
			Where("LOWER(pets.species) = ?", strings.ToLower(species))
	}
	return q
}

func (s *GormSource) AppointmentsPerDay(
	ctx context.Context,
	from time.Time,
	species string,
) ([]DayCount, error) {

	var rows []DayCount
	err := s.appointmentBase(ctx, from, species).
		Select("to_char(appointments.start_time, 'YYYY-MM-DD') AS day, COUNT(*) AS count").
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormSource) AppointmentsByType(
	ctx context.Context,
	from time.Time,
	species string,
) ([]TypeCount, error) {

	var rows []TypeCount
	err := s.appointmentBase(ctx, from, species).
		Select("appointments.service_type AS service_type, COUNT(*) AS count").
		Group("appointments.service_type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormSource) DiagnosisCounts(
	ctx context.Context,
	from time.Time,
	species string,
) ([]CategoryCount, error) {

	q := s.db.WithContext(ctx).Model(&models.MedicalRecord{})

	if !from.IsZero() {
		q = q.Where("medical_records.visit_date >= ?", from)
	}
	if species != "" {
		q = q.Joins("JOIN pets ON pets.id = medical_records.pet_id").
			Where("LOWER(pets.species) = ?", strings.ToLower(species))
	}

	var rows []CategoryCount
	err := q.
		Select("medical_records.diagnosis AS category, COUNT(*) AS count").
		Where("medical_records.diagnosis <> ''").
		Group("medical_records.diagnosis").
		Order("count DESC").
		Limit(20).
		Scan(&rows).Error
	return rows, err
}

func (s *GormSource) RevenueTotals(
	ctx context.Context,
	from time.Time,
) (RevenueTotals, error) {

	q := s.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status <> ?", "CANCELLED")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}

	var totals RevenueTotals
	err := q.
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Scan(&totals).Error
	return totals, err
}

func (s *GormSource) RevenueByCategory(
	ctx context.Context,
	from time.Time,
) ([]CategoryRevenue, error) {

	q := s.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status <> ?", "CANCELLED")
	if !from.IsZero() {
		q = q.Where("orders.created_at >= ?", from)
	}

	var rows []CategoryRevenue
	err := q.
		Select("products.category AS category, COALESCE(SUM(order_items.quantity * order_items.unit_price), 0) AS revenue").
		Group("products.category").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormSource) SpeciesCounts(
	ctx context.Context,
	species string,
) ([]SpeciesCount, error) {

	q := s.db.WithContext(ctx).Model(&models.Pet{})
	if species != "" {
		q = q.Where("LOWER(species) = ?", strings.ToLower(species))
	}

	var rows []SpeciesCount
	err := q.
		Select("species, COUNT(*) AS count").
		Group("species").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormSource) AgeBuckets(
	ctx context.Context,
	species string,
) ([]AgeBucket, error) {

	q := s.db.WithContext(ctx).Model(&models.Pet{})
	if species != "" {
		q = q.Where("LOWER(species) = ?", strings.ToLower(species))
	}

	var rows []AgeBucket
	err := q.
		Select(`CASE
			WHEN birth_date IS NULL THEN 'unknown'
			WHEN birth_date > now() - interval '2 years' THEN '0-2'
			WHEN birth_date > now() - interval '7 years' THEN '3-7'
			ELSE '8+'
		END AS bucket, COUNT(*) AS count`).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	return rows, err
}

// Compile-time check
var _ Source = (*GormSource)(nil)
