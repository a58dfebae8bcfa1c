package accounts

import "time"

// Account is an admin-provisioned login. Every account owns exactly one QR
// profile, created in the same transaction.
type Account struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Email        *string `gorm:"size:100"`
	IsActive     bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
