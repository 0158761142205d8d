package appointment

import "strings"

type ServiceType string

const (
	ServiceMedical  ServiceType = "MEDICAL"
	ServiceGrooming ServiceType = "GROOMING"
)

// ServiceTypeFor classifies a free-text appointment type. Anything that
// mentions grooming is GROOMING, everything else is MEDICAL.
func ServiceTypeFor(raw string) ServiceType {
	if strings.Contains(strings.ToLower(raw), "groom") {
		return ServiceGrooming
	}
	return ServiceMedical
}
