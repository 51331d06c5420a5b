package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/antarcticanco/storefront-app/models"
)

func validCheckoutPayload() map[string]interface{} {
	return map[string]interface{}{
		"delivery": map[string]interface{}{
			"name":          "Nansen",
			"phone":         "555-0199",
			"address_line1": "1 Ice Shelf Way",
			"city":          "McMurdo",
			"postal_code":   "00001",
		},
		"tip": map[string]interface{}{
			"type":       "preset",
			"percentage": 0.15,
		},
	}
}

func addPunch(t *testing.T, r *gin.Engine, sessionID string, qty int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/cart/items", map[string]interface{}{
		"item_id":  "polar_punch",
		"quantity": qty,
	}, session(sessionID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutSummary(t *testing.T) {
	r, _ := newTestRouter(t)
	addPunch(t, r, "sess-1", 2) // subtotal 520

	w := doJSON(t, r, http.MethodGet, "/checkout/summary?tip_type=preset&tip_percentage=0.15", nil, session("sess-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	totals := dataMap(t, w)["totals"].(map[string]interface{})
	assert.Equal(t, 520.00, totals["subtotal"])
	assert.Equal(t, 5.00, totals["delivery_fee"])
	assert.InDelta(t, 41.60, totals["tax"].(float64), 1e-9)
	assert.Equal(t, 78.00, totals["tip"])
	assert.InDelta(t, 644.60, totals["grand_total"].(float64), 1e-9)
}

func TestCheckoutSummaryCustomTip(t *testing.T) {
	r, _ := newTestRouter(t)
	addPunch(t, r, "sess-1", 1)

	w := doJSON(t, r, http.MethodGet, "/checkout/summary?tip_type=custom&tip_amount=12.346", nil, session("sess-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	totals := dataMap(t, w)["totals"].(map[string]interface{})
	assert.Equal(t, 12.35, totals["tip"])
}

func TestSubmitOrder(t *testing.T) {
	r, deps := newTestRouter(t)
	addPunch(t, r, "sess-1", 2)

	w := doJSON(t, r, http.MethodPost, "/checkout", validCheckoutPayload(), session("sess-1"))
	assert.Equal(t, http.StatusCreated, w.Code)

	data := dataMap(t, w)
	order := data["order"].(map[string]interface{})
	code, _ := order["code"].(string)
	assert.Regexp(t, `^ORD-[0-9A-F]{6}$`, code)
	assert.Equal(t, "Nansen", order["customer_name"])
	assert.Equal(t, string(models.StatusWaiting), order["status"])
	assert.Equal(t, string(models.PaymentPending), order["payment_status"])

	// subtotal 520 + fee 5 + tax 41.60 + tip 78 = 644.60
	assert.InDelta(t, 644.60, order["total"].(float64), 1e-9)

	// Order tersimpan di DB
	var count int64
	assert.NoError(t, deps.DB.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Cart dikosongkan setelah submit sukses
	w = doJSON(t, r, http.MethodGet, "/cart", nil, session("sess-1"))
	assert.Equal(t, float64(0), dataMap(t, w)["item_count"])
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/checkout", validCheckoutPayload(), session("sess-1"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "/menus", dataMap(t, w)["redirect"])

	// Tanpa session sama sekali juga konflik, bukan order kosong.
	w = doJSON(t, r, http.MethodPost, "/checkout", validCheckoutPayload(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitOrderValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	addPunch(t, r, "sess-1", 1)

	// Form delivery tanpa field wajib
	payload := validCheckoutPayload()
	payload["delivery"].(map[string]interface{})["phone"] = ""
	w := doJSON(t, r, http.MethodPost, "/checkout", payload, session("sess-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tipe tip di luar enum
	payload = validCheckoutPayload()
	payload["tip"].(map[string]interface{})["type"] = "generous"
	w = doJSON(t, r, http.MethodPost, "/checkout", payload, session("sess-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Validasi gagal tidak menyentuh cart
	w = doJSON(t, r, http.MethodGet, "/cart", nil, session("sess-1"))
	assert.Equal(t, float64(1), dataMap(t, w)["item_count"])
}
