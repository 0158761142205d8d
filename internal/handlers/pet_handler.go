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

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// --------- Requests ---------

type CreatePetRequest struct {
	Name        string  `json:"name" binding:"required"`
	Species     string  `json:"species" binding:"required"`
	Breed       string  `json:"breed"`
	Gender      string  `json:"gender"`
	BirthDate   string  `json:"birth_date"` // YYYY-MM-DD
	WeightKg    float64 `json:"weight_kg"`
	MicrochipID string  `json:"microchip_id"`
	Allergies   string  `json:"allergies"`
	Notes       string  `json:"notes"`

	// Staff may register a pet on behalf of a customer.
	OwnerID uint `json:"owner_id"`
}

type UpdatePetRequest struct {
	Name        *string  `json:"name,omitempty"`
	Species     *string  `json:"species,omitempty"`
	Breed       *string  `json:"breed,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	BirthDate   *string  `json:"birth_date,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	MicrochipID *string  `json:"microchip_id,omitempty"`
	Allergies   *string  `json:"allergies,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *PetHandler) List(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)

	q := h.db.Preload("Owner")

	if role == roles.Customer {
		q = q.Where("owner_id = ?", actorID)
	} else if ownerID := c.Query("ownerId"); ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}

	var pets []models.Pet
	if err := q.Order("id ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Failed to list pets.")
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet payload.")
		return
	}

	ownerID := actorID
	if roles.IsStaff(role) && req.OwnerID != 0 {
		ownerID = req.OwnerID
	}

	var owner models.User
	if err := h.db.First(&owner, ownerID).Error; err != nil {
		httperr.NotFound(c, "owner_not_found", "Owner not found.")
		return
	}

	pet := models.Pet{
		OwnerID:     ownerID,
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Gender:      req.Gender,
		WeightKg:    req.WeightKg,
		MicrochipID: req.MicrochipID,
		Allergies:   req.Allergies,
		Notes:       req.Notes,
	}

	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Invalid birth date.")
			return
		}
		pet.BirthDate = &birth
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Failed to create pet.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) Get(c *gin.Context) {
	pet, ok := h.loadOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	pet, ok := h.loadOwned(c)
	if !ok {
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet payload.")
		return
	}

	if req.Name != nil {
		pet.Name = *req.Name
	}
	if req.Species != nil {
		pet.Species = *req.Species
	}
	if req.Breed != nil {
		pet.Breed = *req.Breed
	}
	if req.Gender != nil {
		pet.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		birth, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Invalid birth date.")
			return
		}
		pet.BirthDate = &birth
	}
	if req.WeightKg != nil {
		pet.WeightKg = *req.WeightKg
	}
	if req.MicrochipID != nil {
		pet.MicrochipID = *req.MicrochipID
	}
	if req.Allergies != nil {
		pet.Allergies = *req.Allergies
	}
	if req.Notes != nil {
		pet.Notes = *req.Notes
	}

	if err := h.db.Save(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Failed to update pet.")
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	pet, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.db.Delete(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Failed to delete pet.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// loadOwned fetches the pet in :id and enforces the owner-or-staff rule.
// It writes the error response itself when returning ok=false.
func (h *PetHandler) loadOwned(c *gin.Context) (*models.Pet, bool) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.Preload("Owner").First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet not found.")
		} else {
			httperr.Internal(c, "failed_to_get_pet", "Failed to load pet.")
		}
		return nil, false
	}

	if role == roles.Customer && pet.OwnerID != actorID {
		httperr.Forbidden(c, "not_pet_owner", "You do not own this pet.")
		return nil, false
	}

	return &pet, true
}
