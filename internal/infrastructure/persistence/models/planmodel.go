package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanModel is the database persistence model for plans. It is the
// anti-corruption layer between the domain and the database schema.
type PlanModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	Name          string          `gorm:"uniqueIndex;not null;size:100"`
	PriceAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PriceCurrency string          `gorm:"not null;size:3"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}
