package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/services"
	"github.com/antarcticanco/storefront-app/utils"
)

type OrderController struct {
	DB      *gorm.DB
	History *services.HistoryService
	Hub     *events.DashboardHub
}

func NewOrderController(db *gorm.DB, history *services.HistoryService, hub *events.DashboardHub) *OrderController {
	return &OrderController{DB: db, History: history, Hub: hub}
}

// GetAllOrders -> seluruh order aktif untuk dashboard
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Order("created_at asc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) findOrder(c *gin.Context) (models.Order, bool) {
	var order models.Order
	if err := oc.DB.First(&order, "code = ?", c.Param("order_code")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return models.Order{}, false
	}
	return order, true
}

// UpdateOrderStatus memindahkan status lewat selector dashboard; status
// terminal menolak semua perubahan.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	order, ok := oc.findOrder(c)
	if !ok {
		return
	}

	type request struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := order.SetStatus(req.Status); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder membatalkan order; order yang sudah dibayar otomatis refund.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	order, ok := oc.findOrder(c)
	if !ok {
		return
	}

	if err := order.Cancel(); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.BroadcastOrderUpdate(order)
	utils.InfoLogger.Printf("Order %s cancelled (payment: %s)", order.Code, order.PaymentStatus)
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// UpdatePaymentStatus mengganti status pembayaran; terkunci setelah
// Cancelled atau Refunded.
func (oc *OrderController) UpdatePaymentStatus(c *gin.Context) {
	order, ok := oc.findOrder(c)
	if !ok {
		return
	}

	type request struct {
		PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := order.SetPaymentStatus(req.PaymentStatus); err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	order.UpdatedAt = time.Now()
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.BroadcastOrderUpdate(order)
	utils.RespondJSON(c, http.StatusOK, "Payment status updated", order)
}

// ArchiveOrders memindahkan seluruh order aktif ke bucket hari ini.
// Arsip hari yang sama diganti, bukan ditambah.
func (oc *OrderController) ArchiveOrders(c *gin.Context) {
	bucket, err := oc.History.ArchiveToday(time.Now())
	if err != nil {
		if err == services.ErrNothingToArchive {
			utils.RespondJSON(c, http.StatusOK, "No orders to archive", nil)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	oc.Hub.BroadcastOrdersArchived(bucket)
	utils.RespondJSON(c, http.StatusOK, "Orders archived", bucket)
}
