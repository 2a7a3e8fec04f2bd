package models

import "time"

// SubscriptionModel is the database persistence model for subscriptions.
// Rows are never deleted; cancellation is recorded in the status column.
type SubscriptionModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:36;index:idx_user_subscription"`
	PlanID    string    `gorm:"not null;size:36;index:idx_plan_subscription"`
	Status    string    `gorm:"not null;size:20;index:idx_status"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index:idx_end_date"`
	IsTrial   bool      `gorm:"not null;default:false"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
