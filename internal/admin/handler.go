// Package admin implements the account provisioning surface. Creating an
// account also creates its QR profile in the same transaction, so the two
// rows either both exist or neither does.
package admin

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zascript/qrlink-core/internal/accounts"
	"github.com/zascript/qrlink-core/internal/api"
	"github.com/zascript/qrlink-core/internal/database"
	"github.com/zascript/qrlink-core/internal/links"
	"github.com/zascript/qrlink-core/internal/qr"
	"github.com/zascript/qrlink-core/internal/qrimage"
)

type Handler struct {
	links *links.Builder
}

func NewHandler(b *links.Builder) *Handler {
	return &Handler{links: b}
}

type createAccountDTO struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createAccountResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Email       *string     `json:"email"`
	EditURL     string      `json:"editUrl"`
	QRCode      string      `json:"qrCode"`
	UUID        string      `json:"uuid"`
	Credentials credentials `json:"credentials"`
}

// CreateAccount provisions an account with an unpublished profile and a
// freshly rendered QR image. The response echoes the plaintext password once
// so the admin can hand it to the user; it is never retrievable again.
func (h *Handler) CreateAccount(c *gin.Context) {
	var body createAccountDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		api.Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	var existing accounts.Account
	err := database.DB.First(&existing, "username = ?", body.Username).Error
	if err == nil {
		api.Fail(c, http.StatusBadRequest, "Username already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("error creating user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	hashed, err := accounts.HashPassword(body.Password)
	if err != nil {
		log.Printf("error creating user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// The QR image always encodes the edit URL, never the scan URL: the code
	// handed to the owner must open the editor regardless of publish state.
	token := uuid.NewString()
	editURL := h.links.EditURL(token)
	qrCode, err := qrimage.DataURL(editURL)
	if err != nil {
		log.Printf("error creating user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	account := accounts.Account{
		Username:     body.Username,
		PasswordHash: hashed,
		Email:        body.Email,
		IsActive:     true,
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		profile := qr.Profile{
			Token:       token,
			AccountID:   account.ID,
			Name:        body.Username,
			IsPublished: false,
			QRCode:      qrCode,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Printf("error creating user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	api.OK(c, createAccountResponse{
		ID:          account.ID,
		Username:    account.Username,
		Email:       account.Email,
		EditURL:     editURL,
		QRCode:      qrCode,
		UUID:        token,
		Credentials: credentials{Username: body.Username, Password: body.Password},
	})
}

type profileSummary struct {
	UUID          string  `json:"uuid"`
	Name          string  `json:"name"`
	IsPublished   bool    `json:"isPublished"`
	QRCode        string  `json:"qrCode"`
	EditURL       string  `json:"editUrl"`
	ViewURL       *string `json:"viewUrl"`
	MobileEditURL *string `json:"mobileEditUrl"`
	MobileViewURL *string `json:"mobileViewUrl"`
}

type accountSummary struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Email     *string         `json:"email"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	QRProfile *profileSummary `json:"qrProfile"`
}

// ListAccounts returns every account newest-first, each joined with its
// profile projected into edit/scan URLs. Scan URLs appear only once the
// profile is published; mobile URLs only when a mobile base is configured.
func (h *Handler) ListAccounts(c *gin.Context) {
	var accts []accounts.Account
	if err := database.DB.Order("created_at DESC").Find(&accts).Error; err != nil {
		log.Printf("error fetching users: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	var profiles []qr.Profile
	if err := database.DB.Find(&profiles).Error; err != nil {
		log.Printf("error fetching users: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	byAccount := make(map[uint]*qr.Profile, len(profiles))
	for i := range profiles {
		byAccount[profiles[i].AccountID] = &profiles[i]
	}

	out := make([]accountSummary, 0, len(accts))
	for i := range accts {
		a := &accts[i]
		out = append(out, accountSummary{
			ID:        a.ID,
			Username:  a.Username,
			Email:     a.Email,
			IsActive:  a.IsActive,
			CreatedAt: a.CreatedAt,
			QRProfile: h.profileSummary(byAccount[a.ID]),
		})
	}

	api.OK(c, out)
}

func (h *Handler) profileSummary(p *qr.Profile) *profileSummary {
	if p == nil {
		return nil
	}
	s := &profileSummary{
		UUID:          p.Token,
		Name:          p.Name,
		IsPublished:   p.IsPublished,
		QRCode:        p.QRCode,
		EditURL:       h.links.EditURL(p.Token),
		MobileEditURL: nilIfEmpty(h.links.MobileEditURL(p.Token)),
	}
	if p.IsPublished {
		s.ViewURL = nilIfEmpty(h.links.ScanURL(p.Token))
		s.MobileViewURL = nilIfEmpty(h.links.MobileScanURL(p.Token))
	}
	return s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToggleStatus flips the account's active flag. The profile's publish flag
// is left alone: reactivating an account restores visibility as it was.
func (h *Handler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	a, err := accounts.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("error toggling user status: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to toggle user status")
		return
	}

	active := !a.IsActive
	if err := database.DB.Model(a).Update("is_active", active).Error; err != nil {
		log.Printf("error toggling user status: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to toggle user status")
		return
	}

	api.OK(c, gin.H{
		"id":       a.ID,
		"username": a.Username,
		"isActive": active,
	})
}

// DeleteAccount removes the account and its profile in one transaction. The
// cascade is explicit rather than left to the ORM so the one-profile-per-
// account invariant holds mechanically.
func (h *Handler) DeleteAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	a, err := accounts.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("error deleting user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", a.ID).Delete(&qr.Profile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&accounts.Account{}, a.ID).Error
	})
	if err != nil {
		log.Printf("error deleting user: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	api.Message(c, "User deleted successfully")
}

// RegenerateQR re-renders the cached image with the same parameters used at
// creation. No other profile field changes.
func (h *Handler) RegenerateQR(c *gin.Context) {
	p, err := qr.FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "QR Profile not found")
			return
		}
		log.Printf("error regenerating QR: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to regenerate QR code")
		return
	}

	editURL := h.links.EditURL(p.Token)
	qrCode, err := qrimage.DataURL(editURL)
	if err != nil {
		log.Printf("error regenerating QR: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to regenerate QR code")
		return
	}

	if err := database.DB.Model(p).Update("qr_code", qrCode).Error; err != nil {
		log.Printf("error regenerating QR: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to regenerate QR code")
		return
	}

	api.OK(c, gin.H{
		"uuid":    p.Token,
		"qrCode":  qrCode,
		"editUrl": editURL,
	})
}
