// Package redirect is the gateway behind /edit/:uuid and /scan/:uuid. Every
// request is evaluated independently: resolve the profile, apply the gating
// rules, then 302 to the web or mobile destination. Gating failures render a
// standalone HTML interstitial instead of a redirect.
package redirect

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zascript/qrlink-core/internal/device"
	"github.com/zascript/qrlink-core/internal/links"
	"github.com/zascript/qrlink-core/internal/qr"
)

type Handler struct {
	links *links.Builder
}

func NewHandler(b *links.Builder) *Handler {
	return &Handler{links: b}
}

const (
	colorError   = "#e74c3c"
	colorWarning = "#f39c12"
)

var interstitialTmpl = template.Must(template.New("interstitial").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
  </head>
  <body style="font-family: Arial; text-align: center; padding: 50px; background: #f5f5f5;">
    <div style="background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); max-width: 400px; margin: 0 auto;">
      <h2 style="color: {{.Color}}; margin-bottom: 20px;">{{.Heading}}</h2>
      <p style="color: #666;">{{.Message}}</p>
    </div>
  </body>
</html>
`))

type interstitialData struct {
	Title   string
	Color   string
	Heading string
	Message string
}

func interstitial(c *gin.Context, status int, d interstitialData) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := interstitialTmpl.Execute(c.Writer, d); err != nil {
		log.Printf("error rendering interstitial: %v", err)
	}
}

func serverError(c *gin.Context) {
	interstitial(c, http.StatusInternalServerError, interstitialData{
		Title:   "Something Went Wrong",
		Color:   colorError,
		Heading: "Something went wrong",
		Message: "Please try again later.",
	})
}

// Edit routes an owner to the editor. Publish state is irrelevant here; only
// existence and an active owner are required.
func (h *Handler) Edit(c *gin.Context) {
	p, err := qr.FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			interstitial(c, http.StatusNotFound, interstitialData{
				Title:   "Edit Link Not Found",
				Color:   colorError,
				Heading: "Edit link not found",
				Message: "No QR profile exists for this code.",
			})
			return
		}
		log.Printf("error in edit redirect: %v", err)
		serverError(c)
		return
	}

	if !p.Account.IsActive {
		interstitial(c, http.StatusForbidden, interstitialData{
			Title:   "Account Disabled",
			Color:   colorError,
			Heading: "Account disabled",
			Message: "This account has been deactivated by an administrator.",
		})
		return
	}

	c.Redirect(http.StatusFound, h.target(c, h.links.MobileEditURL(p.Token), h.links.EditURL(p.Token)))
}

// Scan routes the public to a published profile.
func (h *Handler) Scan(c *gin.Context) {
	p, err := qr.FindByToken(c.Param("uuid"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			interstitial(c, http.StatusNotFound, interstitialData{
				Title:   "Profile Not Found",
				Color:   colorError,
				Heading: "Profile not found",
				Message: "This QR code is not valid.",
			})
			return
		}
		log.Printf("error in scan redirect: %v", err)
		serverError(c)
		return
	}

	if !p.IsPublished {
		interstitial(c, http.StatusForbidden, interstitialData{
			Title:   "Profile Not Published",
			Color:   colorWarning,
			Heading: "Profile not published yet",
			Message: "The owner has not set up this profile.",
		})
		return
	}

	if !p.Account.IsActive {
		interstitial(c, http.StatusForbidden, interstitialData{
			Title:   "Profile Inactive",
			Color:   colorError,
			Heading: "Profile inactive",
			Message: "This profile has been deactivated.",
		})
		return
	}

	c.Redirect(http.StatusFound, h.target(c, h.links.MobileScanURL(p.Token), h.links.ScanURL(p.Token)))
}

// target picks the mobile destination for mobile user agents when a mobile
// base URL is configured, and the web destination otherwise.
func (h *Handler) target(c *gin.Context, mobileURL, webURL string) string {
	if mobileURL != "" && device.IsMobile(c.GetHeader("User-Agent")) {
		return mobileURL
	}
	return webURL
}
