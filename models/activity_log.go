package models

import "time"

// ActivityLog mencatat aksi admin pada data master (CREATE/UPDATE/DELETE/RESTORE).
type ActivityLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Action      string    `gorm:"type:varchar(20);not null" json:"action"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
