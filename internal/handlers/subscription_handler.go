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
	"github.com/IBilba/pet-a-vet/internal/timezone"
)

type SubscriptionHandler struct {
	db *gorm.DB
}

func NewSubscriptionHandler(db *gorm.DB) *SubscriptionHandler {
	return &SubscriptionHandler{db: db}
}

var planPrices = map[string]float64{
	"BASIC":   9.90,
	"PREMIUM": 19.90,
	"CLINIC":  49.90,
}

type CreateSubscriptionRequest struct {
	Plan      string `json:"plan" binding:"required"`
	AutoRenew *bool  `json:"auto_renew,omitempty"`
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)

	q := h.db.Preload("Customer")
	if !roles.IsStaff(role) {
		q = q.Where("customer_id = ?", actorID)
	}

	var subs []models.Subscription
	if err := q.Order("created_at DESC").Find(&subs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_subscriptions", "Failed to list subscriptions.")
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	actorID := middleware.ActorID(c)

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid subscription payload.")
		return
	}

	price, ok := planPrices[req.Plan]
	if !ok {
		httperr.BadRequest(c, "invalid_plan", "Unknown subscription plan.")
		return
	}

	// One active subscription per customer.
	var count int64
	h.db.Model(&models.Subscription{}).
		Where("customer_id = ? AND status = ?", actorID, "ACTIVE").
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "subscription_exists", "An active subscription already exists.")
		return
	}

	now := timezone.Now()
	sub := models.Subscription{
		CustomerID: actorID,
		Plan:       req.Plan,
		Price:      price,
		Status:     "ACTIVE",
		AutoRenew:  true,
		StartedAt:  now,
		ExpiresAt:  now.AddDate(0, 1, 0),
	}
	if req.AutoRenew != nil {
		sub.AutoRenew = *req.AutoRenew
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_create_subscription", "Failed to create subscription.")
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)
	id := c.Param("id")

	var sub models.Subscription
	if err := h.db.First(&sub, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "Subscription not found.")
		return
	}

	if !roles.IsStaff(role) && sub.CustomerID != actorID {
		httperr.Forbidden(c, "not_subscription_owner", "Not your subscription.")
		return
	}

	if sub.Status != "ACTIVE" {
		httperr.BadRequest(c, "invalid_state", "Subscription is not active.")
		return
	}

	now := time.Now()
	sub.Status = "CANCELLED"
	sub.AutoRenew = false
	sub.CancelledAt = &now

	if err := h.db.Save(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_cancel_subscription", "Failed to cancel subscription.")
		return
	}

	c.JSON(http.StatusOK, sub)
}
