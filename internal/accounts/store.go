package accounts

import "github.com/zascript/qrlink-core/internal/database"

func FindByUsername(username string) (*Account, error) {
	var a Account
	if err := database.DB.First(&a, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func FindByID(id uint) (*Account, error) {
	var a Account
	if err := database.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
