package schema

import "time"

// NotificationKind identifies what produced a notification
type NotificationKind string

const (
	// NotificationKindPriceTarget is created when a coin reaches the holder's desired sell price
	NotificationKindPriceTarget NotificationKind = "price_target"
)

// Notification represents the notifications table
type Notification struct {
	// ID is a ULID so notifications sort by creation time
	ID      string           `gorm:"column:id;primaryKey;type:text"`
	UserID  string           `gorm:"column:user_id;not null;type:text;index"`
	Kind    NotificationKind `gorm:"column:kind;not null;type:text"`
	CoinID  *string          `gorm:"column:coin_id;type:text"`
	Title   string           `gorm:"column:title;not null;type:text"`
	Message string           `gorm:"column:message;not null;type:text"`
	Read    bool             `gorm:"column:read;not null;default:false"`
	// CreatedAt drives both expiry and the repeat-alert cooldown
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
