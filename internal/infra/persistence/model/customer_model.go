// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"
)

// CustomerModel is the GORM-specific struct for the 'customers' table. It
// carries the plan timing, usage counters, and push registration state of
// one subscriber.
type CustomerModel struct {
	CustomerID           string     `gorm:"type:varchar(64);primary_key"`
	Name                 string     `gorm:"type:varchar(255);not null"`
	FCMToken             *string    `gorm:"type:varchar(512)"`
	PlanStartDate        *time.Time `gorm:"type:date"`
	PlanEndDate          *time.Time `gorm:"type:date;index"`
	CurrentTotalHours    float64    `gorm:"not null;default:0"`
	CycleMaxHours        float64    `gorm:"not null;default:0"`
	NotifiedFor90Percent bool       `gorm:"not null;default:false"`
	NotifiedFor80Percent bool       `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
