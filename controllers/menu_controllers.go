package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antarcticanco/storefront-app/catalog"
	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/utils"
)

type MenuController struct {
	Catalog *catalog.Store
	Hub     *events.DashboardHub
}

func NewMenuController(cat *catalog.Store, hub *events.DashboardHub) *MenuController {
	return &MenuController{Catalog: cat, Hub: hub}
}

// GetAllMenus -> seluruh katalog per kategori
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menus", mc.Catalog.Categories())
}

// GetMenuByCategory -> item dari satu kategori (?category_id=...)
func (mc *MenuController) GetMenuByCategory(c *gin.Context) {
	categoryID := c.Query("category_id")
	cat, ok := mc.Catalog.FindCategory(categoryID)
	if !ok {
		utils.RespondJSON(c, http.StatusNotFound, "Category not found", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menus in category", cat)
}

// GetMenuByID -> detail 1 item termasuk customizations
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	item, ok := mc.Catalog.FindItem(c.Param("menu_id"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, catalog.ErrItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", item)
}

/*
========================================
 MENU MANAGEMENT (employee)
 Perubahan hanya hidup selama proses — demo, tidak dipersist.
========================================
*/

// CreateMenu menambahkan item baru ke sebuah kategori.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	type request struct {
		CategoryID  string  `json:"category_id" binding:"required"`
		ID          string  `json:"id" binding:"required"`
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"gte=0"`
		ImageURL    string  `json:"image_url"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := catalog.MenuItem{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := mc.Catalog.CreateItem(req.CategoryID, item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, item.ID)
	mc.Hub.BroadcastMenuUpdate(item)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", item)
}

// UpdateMenu mengubah nama/deskripsi/harga/gambar sebuah item.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	type request struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"gte=0"`
		ImageURL    string  `json:"image_url"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Catalog.UpdateItem(c.Param("menu_id"), req.Name, req.Description, req.Price, req.ImageURL)
	if err != nil {
		code := http.StatusBadRequest
		if err == catalog.ErrItemNotFound {
			code = http.StatusNotFound
		}
		utils.RespondError(c, code, err)
		return
	}

	mc.Hub.BroadcastMenuUpdate(item)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", item)
}

// DeleteMenu menghapus item dari katalog in-memory.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	menuID := c.Param("menu_id")
	if err := mc.Catalog.DeleteItem(menuID); err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	mc.Hub.BroadcastMenuUpdate(gin.H{"deleted": menuID})
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": menuID})
}
