package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserAccountModel is the database persistence model for user accounts.
// The billing address is stored as a JSON document.
type UserAccountModel struct {
	ID             string         `gorm:"primaryKey;size:36"`
	IAMUserID      string         `gorm:"column:iam_user_id;uniqueIndex;not null;size:64"`
	Name           string         `gorm:"not null;size:100"`
	Email          string         `gorm:"uniqueIndex;not null;size:255"`
	BillingAddress datatypes.JSON `gorm:"not null"`
	IsActive       bool           `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (UserAccountModel) TableName() string {
	return "user_accounts"
}
