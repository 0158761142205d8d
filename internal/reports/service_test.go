package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBilba/pet-a-vet/internal/httperr"
)

// stubSource returns canned aggregates so the service can be exercised
// without Postgres.
type stubSource struct {
	perDay     []DayCount
	byType     []TypeCount
	diagnoses  []CategoryCount
	totals     RevenueTotals
	byCategory []CategoryRevenue
	species    []SpeciesCount
	ageBuckets []AgeBucket

	lastFrom    time.Time
	lastSpecies string
}

func (s *stubSource) AppointmentsPerDay(_ context.Context, from time.Time, species string) ([]DayCount, error) {
	s.lastFrom, s.lastSpecies = from, species
	return s.perDay, nil
}

func (s *stubSource) AppointmentsByType(_ context.Context, from time.Time, species string) ([]TypeCount, error) {
	return s.byType, nil
}

func (s *stubSource) DiagnosisCounts(_ context.Context, from time.Time, species string) ([]CategoryCount, error) {
	return s.diagnoses, nil
}

func (s *stubSource) RevenueTotals(_ context.Context, from time.Time) (RevenueTotals, error) {
	return s.totals, nil
}

func (s *stubSource) RevenueByCategory(_ context.Context, from time.Time) ([]CategoryRevenue, error) {
	return s.byCategory, nil
}

func (s *stubSource) SpeciesCounts(_ context.Context, species string) ([]SpeciesCount, error) {
	return s.species, nil
}

func (s *stubSource) AgeBuckets(_ context.Context, species string) ([]AgeBucket, error) {
	return s.ageBuckets, nil
}

var _ Source = (*stubSource)(nil)

func newTestService(src Source) *Service {
	loc, _ := time.LoadLocation("Europe/Athens")
	return NewService(src, nil, loc)
}

func TestBuildFallsBackOnEmptyData(t *testing.T) {
	svc := newTestService(&stubSource{})

	report, err := svc.Build(context.Background(), "all", "last30days", "")
	require.NoError(t, err)

	require.NotNil(t, report.Appointments)
	assert.Equal(t, sampleAppointmentsPerDay(), report.Appointments.PerDay)
	assert.Equal(t, sampleAppointmentsByType(), report.Appointments.ByType)

	require.NotNil(t, report.Diagnoses)
	assert.Equal(t, sampleDiagnoses(), report.Diagnoses.Categories)

	require.NotNil(t, report.Revenue)
	assert.Equal(t, sampleRevenueTotals(), report.Revenue.Totals)
	assert.Equal(t, sampleRevenueByCategory(), report.Revenue.ByCategory)

	require.NotNil(t, report.Demographics)
	assert.Equal(t, sampleSpecies(), report.Demographics.Species)
	assert.Equal(t, sampleAgeBuckets(), report.Demographics.AgeBuckets)
}

func TestBuildPassesRealDataThrough(t *testing.T) {
	src := &stubSource{
		perDay: []DayCount{{Day: "2025-06-01", Count: 4}},
		byType: []TypeCount{{ServiceType: "MEDICAL", Count: 4}},
	}
	svc := newTestService(src)

	report, err := svc.Build(context.Background(), "appointments", "last7days", "Dog")
	require.NoError(t, err)

	assert.Equal(t, src.perDay, report.Appointments.PerDay)
	assert.Equal(t, src.byType, report.Appointments.ByType)
	assert.Equal(t, "Dog", src.lastSpecies)
	assert.Nil(t, report.Revenue)
	assert.Nil(t, report.Diagnoses)
	assert.Nil(t, report.Demographics)
}

func TestBuildDefaults(t *testing.T) {
	svc := newTestService(&stubSource{})

	report, err := svc.Build(context.Background(), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "all", report.Type)
	assert.Equal(t, "last30days", report.DateRange)
}

func TestBuildRejectsUnknownType(t *testing.T) {
	svc := newTestService(&stubSource{})

	_, err := svc.Build(context.Background(), "payroll", "last30days", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_report_type"))
}

func TestBuildRejectsUnknownDateRange(t *testing.T) {
	svc := newTestService(&stubSource{})

	_, err := svc.Build(context.Background(), "revenue", "fortnight", "")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestRangeStart(t *testing.T) {
	svc := newTestService(&stubSource{})
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		dateRange string
		want      time.Time
	}{
		{"last7days", now.AddDate(0, 0, -7)},
		{"last30days", now.AddDate(0, 0, -30)},
		{"last90days", now.AddDate(0, 0, -90)},
		{"lastYear", now.AddDate(-1, 0, 0)},
		{"allTime", time.Time{}},
	}
	for _, tc := range cases {
		got, err := svc.rangeStart(tc.dateRange, now)
		require.NoError(t, err, tc.dateRange)
		assert.Equal(t, tc.want, got, tc.dateRange)
	}
}
