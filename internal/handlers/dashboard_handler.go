package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IBilba/pet-a-vet/internal/middleware"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
	"github.com/IBilba/pet-a-vet/internal/timezone"
)

type DashboardHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewDashboardHandler(db *gorm.DB, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{db: db, loc: loc}
}

type StatCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Get assembles the role-dependent dashboard: the navigation subset from
// the shared role map plus a handful of stat cards.
func (h *DashboardHandler) Get(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)

	c.JSON(http.StatusOK, gin.H{
		"role":       role,
		"navigation": roles.NavigationFor(role),
		"cards":      h.cardsFor(actorID, role),
	})
}

func (h *DashboardHandler) cardsFor(actorID uint, role roles.Role) []StatCard {
	now := timezone.NowIn(h.loc.String())
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	var cards []StatCard

	if role == roles.Customer {
		var pets, upcoming, orders int64

		h.db.Model(&models.Pet{}).
			Where("owner_id = ?", actorID).
			Count(&pets)

		h.db.Model(&models.Appointment{}).
			Joins("JOIN pets ON pets.id = appointments.pet_id").
			Where("pets.owner_id = ? AND appointments.start_time >= ? AND appointments.status IN ?",
				actorID, now, []string{"SCHEDULED", "EMERGENCY"}).
			Count(&upcoming)

		h.db.Model(&models.Order{}).
			Where("customer_id = ?", actorID).
			Count(&orders)

		return append(cards,
			StatCard{Key: "pets", Label: "My Pets", Value: pets},
			StatCard{Key: "upcoming", Label: "Upcoming Appointments", Value: upcoming},
			StatCard{Key: "orders", Label: "My Orders", Value: orders},
		)
	}

	var today int64
	q := h.db.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd)
	if roles.IsProvider(role) {
		q = q.Where("provider_id = ?", actorID)
	}
	q.Count(&today)
	cards = append(cards, StatCard{Key: "today", Label: "Appointments Today", Value: today})

	if roles.Has(role, roles.PermManageCustomers) {
		var customers int64
		h.db.Model(&models.User{}).
			Where("UPPER(role) = ?", string(roles.Customer)).
			Count(&customers)
		cards = append(cards, StatCard{Key: "customers", Label: "Customers", Value: customers})
	}

	if roles.Has(role, roles.PermManageInventory) {
		var lowStock int64
		h.db.Model(&models.Product{}).
			Where("active = ? AND stock_quantity <= reorder_threshold", true).
			Count(&lowStock)
		cards = append(cards, StatCard{Key: "low_stock", Label: "Low Stock Products", Value: lowStock})
	}

	if roles.Has(role, roles.PermManageOrders) {
		var pending int64
		h.db.Model(&models.Order{}).
			Where("status = ?", "PENDING").
			Count(&pending)
		cards = append(cards, StatCard{Key: "pending_orders", Label: "Pending Orders", Value: pending})
	}

	return cards
}
