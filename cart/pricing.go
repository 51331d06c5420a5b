package cart

import (
	"math"

	"github.com/antarcticanco/storefront-app/catalog"
)

// PricingOptions mengatur kebijakan harga yang belum final di demo asli.
type PricingOptions struct {
	// ClampNonNegative mengaktifkan floor nol untuk harga efektif.
	ClampNonNegative bool
}

// EffectiveUnitPrice menghitung harga satuan efektif: harga dasar item
// ditambah seluruh price adjustment dari opsi yang dipilih.
func EffectiveUnitPrice(item catalog.MenuItem, sel Selection, opts PricingOptions) float64 {
	price := item.Price
	for _, choice := range sel {
		for _, opt := range choice.selectedOptions() {
			price += opt.PriceAdjustment
		}
	}
	if opts.ClampNonNegative && price < 0 {
		return 0
	}
	return price
}

// Totals adalah rincian total sebuah order di checkout.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Tip         float64 `json:"tip"`
	GrandTotal  float64 `json:"grand_total"`
}

// CalculateTotals menghitung rincian checkout dari subtotal cart.
// tip diasumsikan sudah dibulatkan dua desimal (lihat PresetTip/CustomTip).
func CalculateTotals(subtotal, deliveryFee, taxRate, tip float64) Totals {
	tax := subtotal * taxRate
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Tip:         tip,
		GrandTotal:  subtotal + deliveryFee + tax + tip,
	}
}

// PresetTip menghitung tip dari persentase preset (mis. 0.15 untuk 15%).
func PresetTip(subtotal, percentage float64) float64 {
	return round2(subtotal * percentage)
}

// CustomTip membulatkan tip bebas masukan user; nilai negatif dianggap nol.
func CustomTip(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	return round2(amount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
