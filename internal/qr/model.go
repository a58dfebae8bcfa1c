package qr

import (
	"time"

	"github.com/zascript/qrlink-core/internal/accounts"
)

// Profile is the editable QR profile owned by an account. Token is the
// opaque public UUID embedded in edit/scan URLs; it never changes after
// creation. QRCode caches the rendered image for the edit URL so it is not
// recomputed on every read.
type Profile struct {
	ID          uint   `gorm:"primaryKey"`
	Token       string `gorm:"size:36;uniqueIndex;not null"`
	AccountID   uint   `gorm:"uniqueIndex;not null"`
	Account     accounts.Account
	Name        string `gorm:"size:100;not null"`
	Bio         *string
	Avatar      *string
	Instagram   *string
	Twitter     *string
	TikTok      *string
	YouTube     *string
	LinkedIn    *string
	Facebook    *string
	Website     *string
	IsPublished bool   `gorm:"not null;default:false"`
	QRCode      string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
