package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of POST /api/v1/me/coins/:coin_id/transactions.
// Quantity is positive for a buy and negative for a sell.
type CreateTransactionRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Date     time.Time       `json:"date"`
}

// Validate validates the request body
func (r *CreateTransactionRequest) Validate() error {
	if r.Quantity.IsZero() {
		return fmt.Errorf("quantity must not be zero")
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// SetTargetRequest is the body of PUT /api/v1/me/coins/:coin_id/target.
// A null or non-positive price clears the target.
type SetTargetRequest struct {
	DesiredSellPrice decimal.NullDecimal `json:"desired_sell_price"`
}
