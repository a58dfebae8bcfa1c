package qr

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zascript/qrlink-core/internal/accounts"
	"github.com/zascript/qrlink-core/internal/api"
	"github.com/zascript/qrlink-core/internal/database"
)

type ownerSummary struct {
	Username string `json:"username"`
	IsActive bool   `json:"isActive"`
}

type editorResponse struct {
	View
	User ownerSummary `json:"user"`
}

type updateResponse struct {
	View
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetProfileHandler serves the edit page prefill. No credential check: the
// editor UI loads the profile before the owner has authenticated. The cached
// QR image is not included.
func GetProfileHandler(c *gin.Context) {
	p, err := FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "QR Profile not found")
			return
		}
		log.Printf("error fetching QR profile: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch QR profile")
		return
	}

	api.OK(c, editorResponse{
		View: NewView(p),
		User: ownerSummary{Username: p.Account.Username, IsActive: p.Account.IsActive},
	})
}

type updateProfileDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`

	Name        Optional[string] `json:"name"`
	Bio         Optional[string] `json:"bio"`
	Avatar      Optional[string] `json:"avatar"`
	Instagram   Optional[string] `json:"instagram"`
	Twitter     Optional[string] `json:"twitter"`
	TikTok      Optional[string] `json:"tiktok"`
	YouTube     Optional[string] `json:"youtube"`
	LinkedIn    Optional[string] `json:"linkedin"`
	Facebook    Optional[string] `json:"facebook"`
	Website     Optional[string] `json:"website"`
	IsPublished Optional[bool]   `json:"isPublished"`
}

// UpdateProfileHandler applies a credential-gated partial update. Fields
// absent from the body keep their stored values; explicit null or "" clears
// a nullable field. Name is the exception: an empty or null incoming name
// falls back to the stored name, since a profile always displays something.
// The token itself is never mutable here.
func UpdateProfileHandler(c *gin.Context) {
	p, err := FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "QR Profile not found")
			return
		}
		log.Printf("error fetching QR profile: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to update QR profile")
		return
	}

	var body updateProfileDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if body.Username == "" || body.Password == "" {
		api.Fail(c, http.StatusUnauthorized, "Username and password are required")
		return
	}
	if p.Account.Username != body.Username || !accounts.CheckPassword(p.Account.PasswordHash, body.Password) {
		api.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !p.Account.IsActive {
		api.Fail(c, http.StatusForbidden, "Account is disabled")
		return
	}

	if v := body.Name; v.Set && v.Value != nil && *v.Value != "" {
		p.Name = *v.Value
	}
	applyString(&p.Bio, body.Bio)
	applyString(&p.Avatar, body.Avatar)
	applyString(&p.Instagram, body.Instagram)
	applyString(&p.Twitter, body.Twitter)
	applyString(&p.TikTok, body.TikTok)
	applyString(&p.YouTube, body.YouTube)
	applyString(&p.LinkedIn, body.LinkedIn)
	applyString(&p.Facebook, body.Facebook)
	applyString(&p.Website, body.Website)
	if v := body.IsPublished; v.Set && v.Value != nil {
		p.IsPublished = *v.Value
	}

	if err := database.DB.Omit(clause.Associations).Save(p).Error; err != nil {
		log.Printf("error updating QR profile: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to update QR profile")
		return
	}

	api.OK(c, updateResponse{View: NewView(p), UpdatedAt: p.UpdatedAt})
}

func applyString(dst **string, src Optional[string]) {
	if src.Set {
		*dst = src.Value
	}
}

// PublicProfileHandler gates the public read path: a profile is visible only
// when it is published and its owner is active.
func PublicProfileHandler(c *gin.Context) {
	p, err := FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			api.Fail(c, http.StatusNotFound, "Profile not found")
			return
		}
		log.Printf("error fetching public profile: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if !p.IsPublished {
		api.Fail(c, http.StatusForbidden, "Profile is not published")
		return
	}
	if !p.Account.IsActive {
		api.Fail(c, http.StatusForbidden, "Profile is inactive")
		return
	}

	api.OK(c, NewPublicView(p))
}
