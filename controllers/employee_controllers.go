package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/antarcticanco/storefront-app/config"
	"github.com/antarcticanco/storefront-app/utils"
)

// EmployeeController menjaga gerbang dashboard employee. Ini shared access
// code, bukan kredensial per-user — cukup untuk demo, bukan access control
// sungguhan.
type EmployeeController struct {
	Config *config.Config
}

func NewEmployeeController(cfg *config.Config) *EmployeeController {
	return &EmployeeController{Config: cfg}
}

func (ec *EmployeeController) codeMatches(code string) bool {
	// Kalau hash bcrypt di-set, pakai itu; kalau tidak, bandingkan dengan
	// access code plaintext dari env.
	if ec.Config.EmployeeAccessHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(ec.Config.EmployeeAccessHash), []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(ec.Config.EmployeeAccessCode), []byte(code)) == 1
}

// Login menukar access code dengan token sesi employee.
func (ec *EmployeeController) Login(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !ec.codeMatches(input.Code) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("incorrect access code"))
		return
	}

	token, err := utils.GenerateToken(uuid.NewString(), "employee")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Employee session opened")
	utils.RespondJSON(c, http.StatusOK, "Access granted", gin.H{
		"token": token,
	})
}

// Logout mem-blacklist token sesi supaya tidak bisa dipakai lagi.
func (ec *EmployeeController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no session token provided"))
		return
	}

	utils.BlacklistToken(token)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}
