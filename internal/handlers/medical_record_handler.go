package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/middleware"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
)

type MedicalRecordHandler struct {
	db *gorm.DB
}

func NewMedicalRecordHandler(db *gorm.DB) *MedicalRecordHandler {
	return &MedicalRecordHandler{db: db}
}

type CreateMedicalRecordRequest struct {
	VisitDate    string `json:"visit_date"` // YYYY-MM-DD, defaults to today
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Treatment    string `json:"treatment"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// List returns a pet's clinical history, visible to the owner and staff.
func (h *MedicalRecordHandler) List(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)
	petID := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", petID).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	if role == roles.Customer && pet.OwnerID != actorID {
		httperr.Forbidden(c, "not_pet_owner", "You do not own this pet.")
		return
	}

	var records []models.MedicalRecord
	if err := h.db.
		Preload("Veterinarian").
		Where("pet_id = ?", pet.ID).
		Order("visit_date DESC").
		Find(&records).Error; err != nil {

		httperr.Internal(c, "failed_to_list_records", "Failed to list medical records.")
		return
	}

	c.JSON(http.StatusOK, records)
}

// Create is restricted to veterinarians by the route permission guard.
func (h *MedicalRecordHandler) Create(c *gin.Context) {
	actorID := middleware.ActorID(c)
	petID := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", petID).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	var req CreateMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid medical record payload.")
		return
	}

	visitDate := time.Now()
	if req.VisitDate != "" {
		parsed, err := time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_visit_date", "Invalid visit date.")
			return
		}
		visitDate = parsed
	}

	record := models.MedicalRecord{
		PetID:          pet.ID,
		VeterinarianID: actorID,
		VisitDate:      visitDate,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Prescription:   req.Prescription,
		Notes:          req.Notes,
	}

	if err := h.db.Create(&record).Error; err != nil {
		httperr.Internal(c, "failed_to_create_record", "Failed to create medical record.")
		return
	}

	c.JSON(http.StatusCreated, record)
}
