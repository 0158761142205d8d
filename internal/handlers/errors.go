package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/IBilba/pet-a-vet/internal/httperr"
)

// writeBusinessError maps use-case business codes onto the HTTP taxonomy:
// 404 missing entities, 403 ownership, 409 conflicts, 400 validation and
// 500 for anything unrecognized.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "pet_not_found":
		httperr.NotFound(c, code, "Pet not found.")
	case "provider_not_found":
		httperr.NotFound(c, code, "Provider not found.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "not_pet_owner":
		httperr.Forbidden(c, code, "You do not own this pet.")
	case "not_allowed":
		httperr.Forbidden(c, code, "Not allowed.")
	case "time_conflict":
		httperr.Conflict(c, code, "The provider already has an appointment within 30 minutes of this slot.")
	case "invalid_date_or_time", "invalid_time", "invalid_date":
		httperr.BadRequest(c, code, "Invalid date or time.")
	case "invalid_status":
		httperr.BadRequest(c, code, "Unknown appointment status.")
	case "invalid_state":
		httperr.BadRequest(c, code, "The appointment can no longer change state.")
	case "invalid_date_range":
		httperr.BadRequest(c, code, "Unknown date range.")
	case "invalid_report_type":
		httperr.BadRequest(c, code, "Unknown report type.")
	case "":
		httperr.Internal(c, "internal_error", "Unexpected error.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
