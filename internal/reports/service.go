package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/IBilba/pet-a-vet/internal/httperr"
)

const cacheTTL = 5 * time.Minute

// ======================================================
// REPORT PAYLOADS
// ======================================================

type AppointmentsReport struct {
	PerDay []DayCount  `json:"per_day"`
	ByType []TypeCount `json:"by_type"`
}

type DiagnosesReport struct {
	Categories []CategoryCount `json:"categories"`
}

type RevenueReport struct {
	Totals     RevenueTotals     `json:"totals"`
	ByCategory []CategoryRevenue `json:"by_category"`
}

type DemographicsReport struct {
	Species    []SpeciesCount `json:"species"`
	AgeBuckets []AgeBucket    `json:"age_buckets"`
}

type Report struct {
	Type      string `json:"type"`
	DateRange string `json:"date_range"`
	Species   string `json:"species,omitempty"`

	Appointments *AppointmentsReport `json:"appointments,omitempty"`
	Diagnoses    *DiagnosesReport    `json:"diagnoses,omitempty"`
	Revenue      *RevenueReport      `json:"revenue,omitempty"`
	Demographics *DemographicsReport `json:"demographics,omitempty"`
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	source Source
	cache  *redis.Client // nil disables caching
	loc    *time.Location
}

func NewService(source Source, cache *redis.Client, loc *time.Location) *Service {
	return &Service{
		source: source,
		cache:  cache,
		loc:    loc,
	}
}

// rangeStart maps a named date range onto a concrete lower bound.
// allTime yields the zero time, which the source treats as unbounded.
func (s *Service) rangeStart(dateRange string, now time.Time) (time.Time, error) {
	switch dateRange {
	case "", "last30days":
		return now.AddDate(0, 0, -30), nil
	case "last7days":
		return now.AddDate(0, 0, -7), nil
	case "last90days":
		return now.AddDate(0, 0, -90), nil
	case "lastYear":
		return now.AddDate(-1, 0, 0), nil
	case "allTime":
		return time.Time{}, nil
	}
	return time.Time{}, httperr.ErrBusiness("invalid_date_range")
}

func (s *Service) Build(
	ctx context.Context,
	reportType string,
	dateRange string,
	species string,
) (*Report, error) {

	if reportType == "" {
		reportType = "all"
	}
	if dateRange == "" {
		dateRange = "last30days"
	}

	if cached, ok := s.cacheGet(ctx, reportType, dateRange, species); ok {
		return cached, nil
	}

	from, err := s.rangeStart(dateRange, time.Now().In(s.loc))
	if err != nil {
		return nil, err
	}

	out := &Report{
		Type:      reportType,
		DateRange: dateRange,
		Species:   species,
	}

	switch reportType {
	case "appointments":
		out.Appointments, err = s.appointments(ctx, from, species)
	case "diagnoses":
		out.Diagnoses, err = s.diagnoses(ctx, from, species)
	case "revenue":
		out.Revenue, err = s.revenue(ctx, from)
	case "demographics":
		out.Demographics, err = s.demographics(ctx, species)
	case "all":
		if out.Appointments, err = s.appointments(ctx, from, species); err != nil {
			break
		}
		if out.Diagnoses, err = s.diagnoses(ctx, from, species); err != nil {
			break
		}
		if out.Revenue, err = s.revenue(ctx, from); err != nil {
			break
		}
		out.Demographics, err = s.demographics(ctx, species)
	default:
		return nil, httperr.ErrBusiness("invalid_report_type")
	}

	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, reportType, dateRange, species, out)
	return out, nil
}

// ======================================================
// PER-TYPE BUILDERS (fallback samples on empty results)
// ======================================================

func (s *Service) appointments(
	ctx context.Context,
	from time.Time,
	species string,
) (*AppointmentsReport, error) {

	perDay, err := s.source.AppointmentsPerDay(ctx, from, species)
	if err != nil {
		return nil, err
	}
	byType, err := s.source.AppointmentsByType(ctx, from, species)
	if err != nil {
		return nil, err
	}

	if len(perDay) == 0 {
		perDay = sampleAppointmentsPerDay()
	}
	if len(byType) == 0 {
		byType = sampleAppointmentsByType()
	}

	return &AppointmentsReport{PerDay: perDay, ByType: byType}, nil
}

func (s *Service) diagnoses(
	ctx context.Context,
	from time.Time,
	species string,
) (*DiagnosesReport, error) {

	categories, err := s.source.DiagnosisCounts(ctx, from, species)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		categories = sampleDiagnoses()
	}

	return &DiagnosesReport{Categories: categories}, nil
}

func (s *Service) revenue(
	ctx context.Context,
	from time.Time,
) (*RevenueReport, error) {

	totals, err := s.source.RevenueTotals(ctx, from)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.source.RevenueByCategory(ctx, from)
	if err != nil {
		return nil, err
	}

	if totals.Orders == 0 {
		totals = sampleRevenueTotals()
	}
	if len(byCategory) == 0 {
		byCategory = sampleRevenueByCategory()
	}

	return &RevenueReport{Totals: totals, ByCategory: byCategory}, nil
}

func (s *Service) demographics(
	ctx context.Context,
	species string,
) (*DemographicsReport, error) {

	speciesCounts, err := s.source.SpeciesCounts(ctx, species)
	if err != nil {
		return nil, err
	}
	ageBuckets, err := s.source.AgeBuckets(ctx, species)
	if err != nil {
		return nil, err
	}

	if len(speciesCounts) == 0 {
		speciesCounts = sampleSpecies()
	}
	if len(ageBuckets) == 0 {
		ageBuckets = sampleAgeBuckets()
	}

	return &DemographicsReport{Species: speciesCounts, AgeBuckets: ageBuckets}, nil
}

// ======================================================
// CACHE (best effort, Redis outages fall back to queries)
// ======================================================

func cacheKey(reportType, dateRange, species string) string {
	return fmt.Sprintf("reports:%s:%s:%s", reportType, dateRange, species)
}

func (s *Service) cacheGet(
	ctx context.Context,
	reportType, dateRange, species string,
) (*Report, bool) {

	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, cacheKey(reportType, dateRange, species)).Bytes()
	if err != nil {
		return nil, false
	}

	var out Report
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (s *Service) cacheSet(
	ctx context.Context,
	reportType, dateRange, species string,
	report *Report,
) {
	if s.cache == nil {
		return
	}

	if b, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, cacheKey(reportType, dateRange, species), b, cacheTTL)
	}
}
