package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAllMenus(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menus", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := parseResponse(t, w)
	categories, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, categories, 4)
}

func TestGetMenuByCategory(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menus/by-category?category_id=drinks", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, w)
	assert.Equal(t, "Frosty Beverages", data["name"])

	w = doJSON(t, r, http.MethodGet, "/menus/by-category?category_id=desserts", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenuByID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/menus/penguin_pepperoni", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := dataMap(t, w)
	assert.Equal(t, "Penguin Pepperoni Blast", data["name"])
	// Detail menyertakan customizations untuk dialog customize
	assert.Len(t, data["customizations"].([]interface{}), 3)

	w = doJSON(t, r, http.MethodGet, "/menus/krill_smoothie", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuManagementRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employee/menus", map[string]interface{}{
		"category_id": "drinks",
		"id":          "krill_smoothie",
		"name":        "Krill Smoothie",
		"description": "An acquired taste.",
		"price":       310.00,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuManagementCRUD(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginEmployee(t, r)

	// Create
	w := doJSON(t, r, http.MethodPost, "/employee/menus", map[string]interface{}{
		"category_id": "drinks",
		"id":          "krill_smoothie",
		"name":        "Krill Smoothie",
		"description": "An acquired taste.",
		"price":       310.00,
		"image_url":   "/pic8.png",
	}, authHeader(token))
	assert.Equal(t, http.StatusCreated, w.Code)

	// Item baru terlihat di katalog publik
	w = doJSON(t, r, http.MethodGet, "/menus/krill_smoothie", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Frosty Beverages", dataMap(t, w)["category"])

	// Update
	w = doJSON(t, r, http.MethodPatch, "/employee/menus/krill_smoothie", map[string]interface{}{
		"name":        "Krill Smoothie Supreme",
		"description": "Still an acquired taste.",
		"price":       330.00,
	}, authHeader(token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 330.00, dataMap(t, w)["price"])

	// Delete
	w = doJSON(t, r, http.MethodDelete, "/employee/menus/krill_smoothie", nil, authHeader(token))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/menus/krill_smoothie", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuManagementValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginEmployee(t, r)

	// Field wajib kosong
	w := doJSON(t, r, http.MethodPost, "/employee/menus", map[string]interface{}{
		"category_id": "drinks",
		"id":          "krill_smoothie",
		"price":       310.00,
	}, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Harga negatif
	w = doJSON(t, r, http.MethodPost, "/employee/menus", map[string]interface{}{
		"category_id": "drinks",
		"id":          "krill_smoothie",
		"name":        "Krill Smoothie",
		"description": "d",
		"price":       -1.00,
	}, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// ID duplikat
	w = doJSON(t, r, http.MethodPost, "/employee/menus", map[string]interface{}{
		"category_id": "drinks",
		"id":          "polar_punch",
		"name":        "Polar Punch Clone",
		"description": "d",
		"price":       1.00,
	}, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Update item yang tidak ada
	w = doJSON(t, r, http.MethodPatch, "/employee/menus/krill_smoothie", map[string]interface{}{
		"name":        "n",
		"description": "d",
		"price":       1.00,
	}, authHeader(token))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Delete item yang tidak ada
	w = doJSON(t, r, http.MethodDelete, "/employee/menus/krill_smoothie", nil, authHeader(token))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
