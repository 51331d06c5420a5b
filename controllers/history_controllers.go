package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antarcticanco/storefront-app/services"
	"github.com/antarcticanco/storefront-app/utils"
)

type HistoryController struct {
	History *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{History: history}
}

// GetHistory -> seluruh bucket arsip, terurut menurun per tanggal.
// Blob korup di-reset ke kosong dan dilaporkan sebagai notice, bukan error.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	buckets, recovered, err := hc.History.Load()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := "Order history"
	if recovered {
		message = "Could not load order history; it has been reset"
	}
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"days":      buckets,
		"recovered": recovered,
	})
}

// ClearHistory menghapus seluruh arsip.
func (hc *HistoryController) ClearHistory(c *gin.Context) {
	if err := hc.History.Clear(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history cleared", nil)
}
