package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antarcticanco/storefront-app/catalog"
	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/services"
	"github.com/antarcticanco/storefront-app/utils"
)

// mockOrderHistory adalah riwayat pesanan contoh untuk pengunjung demo
// tanpa riwayat sendiri.
var mockOrderHistory = []models.OrderHistoryItem{
	{DishName: "Penguin Pepperoni Blast", Quantity: 1, Date: "2024-07-15T10:30:00Z"},
	{DishName: "Glacial Spring Water", Quantity: 2, Date: "2024-07-15T10:30:00Z"},
	{DishName: "The Antarctic Classic Burger", Quantity: 1, Date: "2024-07-08T18:00:00Z"},
	{DishName: "Polar Punch", Quantity: 1, Date: "2024-07-08T18:00:00Z"},
	{DishName: "Glacial Veggie Delight", Quantity: 1, Date: "2024-06-20T12:15:00Z"},
	{DishName: "Penguin Pepperoni Blast", Quantity: 2, Date: "2024-06-10T19:45:00Z"},
	{DishName: "Glacial Spring Water", Quantity: 4, Date: "2024-06-10T19:45:00Z"},
}

type RecommendationController struct {
	Catalog     *catalog.Store
	Recommender *services.RecommendationService
}

func NewRecommendationController(cat *catalog.Store, rec *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Catalog: cat, Recommender: rec}
}

// GetMockHistory -> riwayat contoh yang dipakai kalau client tidak
// mengirim riwayatnya sendiri.
func (rc *RecommendationController) GetMockHistory(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Mock order history", mockOrderHistory)
}

// Recommend meminta saran dish dari layanan rekomendasi, lalu mencocokkan
// nama ke katalog (case-insensitive). Nama yang tidak dikenal dibuang
// diam-diam; semua kegagalan berdegradasi ke daftar kosong.
func (rc *RecommendationController) Recommend(c *gin.Context) {
	type request struct {
		OrderHistory []models.OrderHistoryItem `json:"order_history"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	history := req.OrderHistory
	if len(history) == 0 {
		history = mockOrderHistory
	}

	if !rc.Recommender.Configured() {
		utils.RespondJSON(c, http.StatusOK, "Recommendations are not configured", gin.H{
			"recommendations": []catalog.MenuItem{},
		})
		return
	}

	names, err := rc.Recommender.RecommendDishes(c.Request.Context(), history)
	if err != nil {
		// Gagal memanggil layanan bukan error blocking untuk storefront
		utils.ErrorLogger.Printf("recommendation call failed: %v", err)
		utils.RespondJSON(c, http.StatusOK, "Could not fetch recommendations at this time", gin.H{
			"recommendations": []catalog.MenuItem{},
		})
		return
	}

	matched := make([]catalog.MenuItem, 0, len(names))
	for _, name := range names {
		if item, ok := rc.Catalog.FindItemByName(name); ok {
			matched = append(matched, item)
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Chef's suggestions", gin.H{
		"recommendations": matched,
	})
}
