package utils

import (
	"github.com/dongans/billiard-app/models"
)

// LogActivity mencatat aksi admin ke tabel activity_logs. Kegagalan hanya
// dilog, tidak mengganggu request yang sedang berjalan.
func LogActivity(userID uint, action, description string) {
	database := GetDB()
	if database == nil {
		return
	}

	entry := models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
	}
	if err := database.Create(&entry).Error; err != nil {
		if ErrorLogger != nil {
			ErrorLogger.Printf("failed to write activity log: %v", err)
		}
	}
}
