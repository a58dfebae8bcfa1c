package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zascript/qrlink-core/internal/accounts"
	"github.com/zascript/qrlink-core/internal/api"
	"github.com/zascript/qrlink-core/internal/qr"
)

type loginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

// LoginHandler verifies credentials and returns the account together with
// its full profile projection. There is no session or token: mutating
// requests re-send credentials every time. Unknown username and wrong
// password deliberately produce the same error message.
func LoginHandler(c *gin.Context) {
	var body loginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		api.Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	a, err := accounts.FindByUsername(body.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("error during login: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	if !a.IsActive {
		api.Fail(c, http.StatusForbidden, "Account is disabled")
		return
	}

	if !accounts.CheckPassword(a.PasswordHash, body.Password) {
		api.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	var profile *qr.OwnerView
	p, err := qr.FindByAccountID(a.ID)
	switch {
	case err == nil:
		v := qr.NewOwnerView(p)
		profile = &v
	case errors.Is(err, gorm.ErrRecordNotFound):
		// accounts are always created with a profile; tolerate a missing row
		// rather than failing the login
	default:
		log.Printf("error during login: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	api.OK(c, gin.H{
		"user":      userSummary{ID: a.ID, Username: a.Username, Email: a.Email},
		"qrProfile": profile,
	})
}
