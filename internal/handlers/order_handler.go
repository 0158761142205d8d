package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IBilba/pet-a-vet/internal/audit"
	"github.com/IBilba/pet-a-vet/internal/httperr"
	"github.com/IBilba/pet-a-vet/internal/middleware"
	"github.com/IBilba/pet-a-vet/internal/models"
	"github.com/IBilba/pet-a-vet/internal/roles"
)

type OrderHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{
		db:    db,
		audit: dispatcher,
	}
}

// --------- Requests ---------

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var orderStatuses = map[string]bool{
	"PENDING":    true,
	"PROCESSING": true,
	"SHIPPED":    true,
	"DELIVERED":  true,
	"CANCELLED":  true,
}

// --------- Handlers ---------

func (h *OrderHandler) Create(c *gin.Context) {
	customerID := middleware.ActorID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid order payload.")
		return
	}

	var created models.Order

	err := h.db.Transaction(func(tx *gorm.DB) error {
		order := models.Order{
			OrderNumber: uuid.NewString(),
			CustomerID:  customerID,
			Status:      "PENDING",
		}

		var items []models.OrderItem
		var total float64

		for _, it := range req.Items {
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND active = ?", it.ProductID, true).
				First(&product).Error; err != nil {
				return httperr.ErrBusiness("product_not_found")
			}

			if product.StockQuantity < it.Quantity {
				return httperr.ErrBusiness("insufficient_stock")
			}

			product.StockQuantity -= it.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
			})
			total += product.Price * float64(it.Quantity)
		}

		order.Total = total
		order.Items = items

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		created = order
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "product_not_found") {
			httperr.NotFound(c, "product_not_found", "Product not found or inactive.")
			return
		}
		if httperr.IsBusiness(err, "insufficient_stock") {
			httperr.Conflict(c, "insufficient_stock", "Not enough stock to fulfil the order.")
			return
		}
		httperr.Internal(c, "failed_to_create_order", "Failed to create order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &created.ID,
	})

	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) List(c *gin.Context) {
	actorID := middleware.ActorID(c)
	role := middleware.ActorRole(c)

	q := h.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer")

	if !roles.Has(role, roles.PermManageOrders) {
		q = q.Where("customer_id = ?", actorID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Failed to list orders.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actorID := middleware.ActorID(c)
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid order payload.")
		return
	}

	if !orderStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "Unknown order status.")
		return
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}

	if order.Status == "DELIVERED" || order.Status == "CANCELLED" {
		httperr.BadRequest(c, "invalid_state", "Order can no longer change state.")
		return
	}

	order.Status = req.Status
	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Failed to update order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]string{"status": order.Status},
	})

	c.JSON(http.StatusOK, order)
}
