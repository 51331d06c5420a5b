package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/antarcticanco/storefront-app/cart"
	"github.com/antarcticanco/storefront-app/catalog"
	"github.com/antarcticanco/storefront-app/utils"
)

// SessionHeader membawa id sesi cart milik satu tab/pengunjung.
const SessionHeader = "X-Session-ID"

type CartController struct {
	Catalog *catalog.Store
	Carts   *cart.Manager
}

func NewCartController(cat *catalog.Store, carts *cart.Manager) *CartController {
	return &CartController{Catalog: cat, Carts: carts}
}

// sessionCart mengambil cart milik sesi request. Request tanpa session id
// mendapat id baru; id selalu di-echo balik lewat header.
func (cc *CartController) sessionCart(c *gin.Context) *cart.Store {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)
	return cc.Carts.GetOrCreate(sessionID)
}

type choiceRequest struct {
	OptionID  string   `json:"option_id,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// buildSelection menerjemahkan selections dari request body jadi
// cart.Selection, resolve id opsi ke definisi katalog.
func buildSelection(item catalog.MenuItem, applyDefaults bool, raw map[string]choiceRequest) (cart.Selection, error) {
	sel := cart.Selection{}
	if applyDefaults {
		sel = cart.DefaultSelection(item)
	}

	for czID, choice := range raw {
		cz, ok := item.FindCustomization(czID)
		if !ok {
			return nil, fmt.Errorf("unknown customization %q for item %s", czID, item.ID)
		}

		switch cz.Kind {
		case catalog.KindSingle:
			opt, ok := cz.FindOption(choice.OptionID)
			if !ok {
				return nil, fmt.Errorf("unknown option %q for customization %q", choice.OptionID, czID)
			}
			sel[czID] = cart.SingleChoice(opt)
		case catalog.KindMultiple:
			opts := make([]catalog.CustomizationOption, 0, len(choice.OptionIDs))
			for _, optID := range choice.OptionIDs {
				opt, ok := cz.FindOption(optID)
				if !ok {
					return nil, fmt.Errorf("unknown option %q for customization %q", optID, czID)
				}
				opts = append(opts, opt)
			}
			sel[czID] = cart.MultiChoice(opts...)
		}
	}

	if err := sel.Validate(item); err != nil {
		return nil, err
	}
	return sel, nil
}

type cartView struct {
	Lines     []cart.Line `json:"lines"`
	ItemCount int         `json:"item_count"`
	Total     float64     `json:"total"`
}

func viewOf(store *cart.Store) cartView {
	return cartView{
		Lines:     store.Lines(),
		ItemCount: store.ItemCount(),
		Total:     store.Total(),
	}
}

// GetCart -> isi cart sesi ini
func (cc *CartController) GetCart(c *gin.Context) {
	store := cc.sessionCart(c)
	utils.RespondJSON(c, http.StatusOK, "Cart contents", viewOf(store))
}

// AddToCart menambahkan item (plus customizations) ke cart. Item yang sama
// dengan signature sama di-merge; signature beda jadi line terpisah.
func (cc *CartController) AddToCart(c *gin.Context) {
	type request struct {
		ItemID        string                   `json:"item_id" binding:"required"`
		Quantity      int                      `json:"quantity" binding:"required,gte=1"`
		ApplyDefaults bool                     `json:"apply_defaults"`
		Selections    map[string]choiceRequest `json:"selections"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := cc.Catalog.FindItem(req.ItemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, catalog.ErrItemNotFound)
		return
	}

	sel, err := buildSelection(item, req.ApplyDefaults, req.Selections)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store := cc.sessionCart(c)
	line := store.Add(item, req.Quantity, sel)

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%s added to cart!", item.Name), gin.H{
		"line": line,
		"cart": viewOf(store),
	})
}

// UpdateCartItem mengganti quantity satu line; 0 atau kurang menghapusnya.
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	type request struct {
		Signature string `json:"signature" binding:"required"`
		Quantity  *int   `json:"quantity" binding:"required"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	store := cc.sessionCart(c)
	itemID := c.Param("item_id")

	if *req.Quantity <= 0 {
		store.Remove(itemID, req.Signature)
		utils.RespondJSON(c, http.StatusOK, "Item removed from cart", viewOf(store))
		return
	}

	line, ok := store.UpdateQuantity(itemID, req.Signature, *req.Quantity)
	if !ok {
		utils.RespondJSON(c, http.StatusNotFound, "Cart line not found", viewOf(store))
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Updated %s quantity to %d", line.ItemName, line.Quantity), gin.H{
		"line": line,
		"cart": viewOf(store),
	})
}

// RemoveCartItem menghapus satu line; no-op kalau sudah tidak ada.
func (cc *CartController) RemoveCartItem(c *gin.Context) {
	signature := c.Query("signature")
	if signature == "" {
		signature = cart.DefaultSignature
	}

	store := cc.sessionCart(c)
	store.Remove(c.Param("item_id"), signature)
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", viewOf(store))
}

// ClearCart mengosongkan cart sesi ini.
func (cc *CartController) ClearCart(c *gin.Context) {
	store := cc.sessionCart(c)
	store.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared!", viewOf(store))
}
