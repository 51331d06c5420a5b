package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antarcticanco/storefront-app/cart"
	"github.com/antarcticanco/storefront-app/config"
	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/utils"
)

type CheckoutController struct {
	DB     *gorm.DB
	Config *config.Config
	Carts  *cart.Manager
	Hub    *events.DashboardHub
}

func NewCheckoutController(db *gorm.DB, cfg *config.Config, carts *cart.Manager, hub *events.DashboardHub) *CheckoutController {
	return &CheckoutController{DB: db, Config: cfg, Carts: carts, Hub: hub}
}

type deliveryInfo struct {
	Name                 string `json:"name" binding:"required"`
	Phone                string `json:"phone" binding:"required"`
	AddressLine1         string `json:"address_line1" binding:"required"`
	AddressLine2         string `json:"address_line2"`
	City                 string `json:"city" binding:"required"`
	PostalCode           string `json:"postal_code" binding:"required"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

type tipSelection struct {
	Type       string  `json:"type" binding:"required,oneof=preset custom none"`
	Percentage float64 `json:"percentage"` // mis. 0.15 untuk preset 15%
	Amount     float64 `json:"amount"`     // nominal bebas untuk custom
}

func (cc *CheckoutController) tipAmount(subtotal float64, tip tipSelection) float64 {
	switch tip.Type {
	case "preset":
		return cart.PresetTip(subtotal, tip.Percentage)
	case "custom":
		return cart.CustomTip(tip.Amount)
	default:
		return 0
	}
}

// GetSummary -> rincian total cart sesi ini dengan tip pilihan via query
// (?tip_type=preset&tip_percentage=0.15) tanpa submit apapun.
func (cc *CheckoutController) GetSummary(c *gin.Context) {
	store := cc.Carts.GetOrCreate(c.GetHeader(SessionHeader))
	subtotal := store.Total()

	tip := tipSelection{Type: c.DefaultQuery("tip_type", "none")}
	fmt.Sscanf(c.Query("tip_percentage"), "%f", &tip.Percentage)
	fmt.Sscanf(c.Query("tip_amount"), "%f", &tip.Amount)

	totals := cart.CalculateTotals(subtotal, cc.Config.DeliveryFee, cc.Config.TaxRate, cc.tipAmount(subtotal, tip))
	utils.RespondJSON(c, http.StatusOK, "Order summary", gin.H{
		"lines":  store.Lines(),
		"totals": totals,
	})
}

// SubmitOrder memvalidasi form delivery, menghitung total, mensimulasikan
// delay submit, membuat order (Waiting/Pending) lalu mengosongkan cart.
func (cc *CheckoutController) SubmitOrder(c *gin.Context) {
	type request struct {
		Delivery deliveryInfo `json:"delivery" binding:"required"`
		Tip      tipSelection `json:"tip" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		utils.RespondError(c, http.StatusConflict, ErrEmptyCart)
		return
	}
	store := cc.Carts.GetOrCreate(sessionID)

	lines := store.Lines()
	if len(lines) == 0 {
		// Ekuivalen redirect-with-notice kembali ke katalog
		utils.RespondJSON(c, http.StatusConflict, ErrEmptyCart.Error(), gin.H{
			"redirect": "/menus",
		})
		return
	}

	subtotal := store.Total()
	totals := cart.CalculateTotals(subtotal, cc.Config.DeliveryFee, cc.Config.TaxRate, cc.tipAmount(subtotal, req.Tip))

	// Simulasi delay submit seperti demo aslinya; hormati disconnect client
	if cc.Config.CheckoutDelayMS > 0 {
		select {
		case <-time.After(time.Duration(cc.Config.CheckoutDelayMS) * time.Millisecond):
		case <-c.Request.Context().Done():
			return
		}
	}

	order := models.Order{
		Code:          newOrderCode(),
		CustomerName:  req.Delivery.Name,
		Total:         totals.GrandTotal,
		ItemCount:     store.ItemCount(),
		Status:        models.StatusWaiting,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := cc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	store.Clear()
	cc.Hub.BroadcastOrderCreated(order)
	utils.InfoLogger.Printf("Order %s placed by %s, total %s", order.Code, order.CustomerName, utils.FormatCurrency(order.Total))

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully!", gin.H{
		"order":  order,
		"totals": totals,
	})
}

func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:6])
}
