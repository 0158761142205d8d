package appointment

import "testing"

func TestServiceTypeFor(t *testing.T) {
	cases := []struct {
		in       string
		expected ServiceType
	}{
		{in: "grooming", expected: ServiceGrooming},
		{in: "GROOMING", expected: ServiceGrooming},
		{in: "Full groom and nail trim", expected: ServiceGrooming},
		{in: "checkup", expected: ServiceMedical},
		{in: "vaccination", expected: ServiceMedical},
		{in: "", expected: ServiceMedical},
		{in: "surgery", expected: ServiceMedical},
	}

	for _, c := range cases {
		if got := ServiceTypeFor(c.in); got != c.expected {
			t.Fatalf("ServiceTypeFor(%q): expected %s, got %s", c.in, c.expected, got)
		}
	}
}
