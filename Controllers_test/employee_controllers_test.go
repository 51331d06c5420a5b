package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/antarcticanco/storefront-app/router"
)

func TestEmployeeLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	token := loginEmployee(t, r)
	assert.NotEmpty(t, token)
}

func TestEmployeeLoginWrongCode(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employee/login", map[string]string{"code": "0000"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, parseResponse(t, w).Message, "incorrect access code")
}

func TestEmployeeLoginMissingCode(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employee/login", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeLoginBcryptHash(t *testing.T) {
	deps := newTestDeps(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("iceberg-right-ahead"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	deps.Config.EmployeeAccessHash = string(hash)
	r := router.SetupRouter(deps)

	// Hash di-set -> plaintext code dari env diabaikan
	w := doJSON(t, r, http.MethodPost, "/employee/login", map[string]string{"code": "2724"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/employee/login", map[string]string{"code": "iceberg-right-ahead"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/employee/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/employee/orders", nil, authHeader("not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployeeLogoutBlacklistsToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token := loginEmployee(t, r)

	w := doJSON(t, r, http.MethodGet, "/employee/orders", nil, authHeader(token))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/employee/logout", nil, authHeader(token))
	assert.Equal(t, http.StatusOK, w.Code)

	// Token yang sudah logout tidak bisa dipakai lagi
	w = doJSON(t, r, http.MethodGet, "/employee/orders", nil, authHeader(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployeeLoginRateLimited(t *testing.T) {
	r, _ := newTestRouter(t)

	// Limit ketat: 5 percobaan per menit, setelah itu 429
	var last int
	for i := 0; i < 6; i++ {
		w := doJSON(t, r, http.MethodPost, "/employee/login", map[string]string{"code": "0000"}, nil)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
