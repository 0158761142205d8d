package dto

import (
	"strconv"
	"strings"

	domain "github.com/IBilba/pet-a-vet/internal/domain/appointment"
	"github.com/IBilba/pet-a-vet/internal/models"
)

// AppointmentView is the client-facing shape: string IDs, lowercase
// status, split date/time and the derived emergency flag.
type AppointmentView struct {
	ID           string `json:"id"`
	PetID        string `json:"pet_id"`
	PetName      string `json:"pet_name"`
	ProviderID   string `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	DurationMin  int    `json:"duration_min"`
	ServiceType  string `json:"service_type"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	IsEmergency  bool   `json:"is_emergency"`
}

func NewAppointmentView(ap *models.Appointment) AppointmentView {
	return AppointmentView{
		ID:           strconv.FormatUint(uint64(ap.ID), 10),
		PetID:        strconv.FormatUint(uint64(ap.PetID), 10),
		PetName:      ap.Pet.Name,
		ProviderID:   strconv.FormatUint(uint64(ap.ProviderID), 10),
		ProviderName: ap.Provider.Name,
		Date:         ap.StartTime.Format("2006-01-02"),
		Time:         ap.StartTime.Format("15:04"),
		DurationMin:  ap.DurationMin,
		ServiceType:  ap.ServiceType,
		Status:       strings.ToLower(ap.Status),
		Reason:       ap.Reason,
		Notes:        ap.Notes,
		IsEmergency:  domain.IsEmergency(ap),
	}
}
