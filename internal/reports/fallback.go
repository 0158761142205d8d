package reports

// Sample datasets returned when an aggregate query yields no rows, so a
// fresh install still renders populated dashboard charts.

func sampleAppointmentsPerDay() []DayCount {
	return []DayCount{
		{Day: "2025-01-06", Count: 4},
		{Day: "2025-01-07", Count: 6},
		{Day: "2025-01-08", Count: 3},
		{Day: "2025-01-09", Count: 7},
		{Day: "2025-01-10", Count: 5},
	}
}

func sampleAppointmentsByType() []TypeCount {
	return []TypeCount{
		{ServiceType: "MEDICAL", Count: 18},
		{ServiceType: "GROOMING", Count: 7},
	}
}

func sampleDiagnoses() []CategoryCount {
	return []CategoryCount{
		{Category: "Otitis externa", Count: 9},
		{Category: "Dermatitis", Count: 7},
		{Category: "Gastroenteritis", Count: 5},
		{Category: "Dental disease", Count: 4},
		{Category: "Arthritis", Count: 2},
	}
}

func sampleRevenueTotals() RevenueTotals {
	return RevenueTotals{Orders: 32, Revenue: 1845.50}
}

func sampleRevenueByCategory() []CategoryRevenue {
	return []CategoryRevenue{
		{Category: "food", Revenue: 920.00},
		{Category: "medication", Revenue: 540.50},
		{Category: "accessories", Revenue: 385.00},
	}
}

func sampleSpecies() []SpeciesCount {
	return []SpeciesCount{
		{Species: "Dog", Count: 42},
		{Species: "Cat", Count: 31},
		{Species: "Rabbit", Count: 6},
		{Species: "Bird", Count: 4},
	}
}

func sampleAgeBuckets() []AgeBucket {
	return []AgeBucket{
		{Bucket: "0-2", Count: 25},
		{Bucket: "3-7", Count: 38},
		{Bucket: "8+", Count: 16},
		{Bucket: "unknown", Count: 4},
	}
}
