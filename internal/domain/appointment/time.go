package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IBilba/pet-a-vet/internal/httperr"
)

// To24Hour normalizes a clock string to 24-hour "HH:MM". Accepted inputs
// are "HH:MM" (already 24-hour) and "H:MM AM/PM".
//
//	To24Hour("2:30 PM")  == "14:30"
//	To24Hour("12:00 PM") == "12:00"
//	To24Hour("12:00 AM") == "00:00"
func To24Hour(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	meridiem := ""
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
		s = strings.TrimSpace(strings.TrimSuffix(s, "AM"))
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
		s = strings.TrimSpace(strings.TrimSuffix(s, "PM"))
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", httperr.ErrBusiness("invalid_time")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", httperr.ErrBusiness("invalid_time")
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return "", httperr.ErrBusiness("invalid_time")
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return "", httperr.ErrBusiness("invalid_time")
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return "", httperr.ErrBusiness("invalid_time")
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
