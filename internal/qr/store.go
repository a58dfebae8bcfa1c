package qr

import "github.com/zascript/qrlink-core/internal/database"

// FindByToken resolves a profile by its public token, with the owning
// account loaded.
func FindByToken(token string) (*Profile, error) {
	var p Profile
	if err := database.DB.Preload("Account").First(&p, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindByAccountID(accountID uint) (*Profile, error) {
	var p Profile
	if err := database.DB.First(&p, "account_id = ?", accountID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
