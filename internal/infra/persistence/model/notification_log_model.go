package model

import (
	"time"
)

// NotificationLogModel is the GORM-specific struct for the
// 'notification_logs' table. Rows are append-only; the engine never updates
// or deletes them.
type NotificationLogModel struct {
	LogID       string    `gorm:"type:varchar(160);primary_key"`
	CustomerID  string    `gorm:"type:varchar(64);not null;index"`
	SentAt      time.Time `gorm:"not null;index:idx_notification_logs_sent_at,sort:desc"`
	Message     string    `gorm:"type:text;not null"`
	TriggerType string    `gorm:"type:varchar(16);not null"`
	Status      string    `gorm:"type:varchar(16);not null"`
	ErrorDetail string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
