package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the users table. Rows are owned by the authentication system;
// this service only upserts the subject and email it sees in verified tokens.
type User struct {
	ID        string    `gorm:"column:id;primaryKey;type:text"`
	Email     string    `gorm:"column:email;not null;type:text;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// UserCoin represents the user_coins table - a user's holding of one coin with its derived aggregate
type UserCoin struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_user_coins_user_coin,priority:1"`
	CoinID string `gorm:"column:coin_id;not null;type:text;uniqueIndex:idx_user_coins_user_coin,priority:2"`
	// TotalQuantity, TotalCost and AveragePrice are recomputed from the transaction log
	TotalQuantity decimal.Decimal `gorm:"column:total_quantity;not null;type:numeric;default:0"`
	TotalCost     decimal.Decimal `gorm:"column:total_cost;not null;type:numeric;default:0"`
	AveragePrice  decimal.Decimal `gorm:"column:average_price;not null;type:numeric;default:0"`
	// DesiredSellPrice is the price target; null or 0 disables the alert
	DesiredSellPrice decimal.NullDecimal `gorm:"column:desired_sell_price;type:numeric"`
	CreatedAt        time.Time           `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	User *User           `gorm:"foreignKey:UserID"`
	Coin *Coin           `gorm:"foreignKey:CoinID"`
	Info *CoinsListIDMap `gorm:"foreignKey:CoinID"`
}

// TableName specifies the table name for the UserCoin model
func (UserCoin) TableName() string {
	return "user_coins"
}

// UserCoinTransaction represents the user_coin_transactions table.
// Quantity is positive for a buy and negative for a sell.
type UserCoinTransaction struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserCoinID int64           `gorm:"column:user_coin_id;not null;index"`
	Quantity   decimal.Decimal `gorm:"column:quantity;not null;type:numeric"`
	Price      decimal.Decimal `gorm:"column:price;not null;type:numeric"`
	Date       time.Time       `gorm:"column:date;not null;type:timestamptz"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserCoinTransaction model
func (UserCoinTransaction) TableName() string {
	return "user_coin_transactions"
}
