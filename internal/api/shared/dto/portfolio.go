package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/portfolio"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// HoldingResponse represents a user's position in one coin
type HoldingResponse struct {
	ID                   int64               `json:"id"`
	CoinID               string              `json:"coin_id"`
	TotalQuantity        decimal.Decimal     `json:"total_quantity"`
	TotalCost            decimal.Decimal     `json:"total_cost"`
	AveragePrice         decimal.Decimal     `json:"average_price"`
	DesiredSellPrice     decimal.NullDecimal `json:"desired_sell_price"`
	CurrentValue         decimal.Decimal     `json:"current_value"`
	ProfitLoss           decimal.Decimal     `json:"profit_loss"`
	ProfitLossPercentage decimal.Decimal     `json:"profit_loss_percentage"`
	Coin                 *CoinResponse       `json:"coin,omitempty"`
}

// TransactionResponse represents one buy or sell
type TransactionResponse struct {
	ID        int64           `json:"id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionListResponse represents a holding's transaction log and its replayed summary
type TransactionListResponse struct {
	CoinID       string                `json:"coin_id"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      portfolio.Summary     `json:"summary"`
}

// NotificationResponse represents one user notification
type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CoinID    *string   `json:"coin_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MapUserCoinToDTO maps a holding row without valuation
func MapUserCoinToDTO(userCoin *schema.UserCoin) *HoldingResponse {
	resp := &HoldingResponse{
		ID:               userCoin.ID,
		CoinID:           userCoin.CoinID,
		TotalQuantity:    userCoin.TotalQuantity,
		TotalCost:        userCoin.TotalCost,
		AveragePrice:     userCoin.AveragePrice,
		DesiredSellPrice: userCoin.DesiredSellPrice,
	}
	if userCoin.Coin != nil {
		coin := *userCoin.Coin
		if coin.Info == nil {
			coin.Info = userCoin.Info
		}
		resp.Coin = MapCoinToDTO(&coin)
	}
	return resp
}

// MapHoldingsToDTO maps valued holdings to their response
func MapHoldingsToDTO(holdings []portfolio.Holding) []HoldingResponse {
	items := make([]HoldingResponse, 0, len(holdings))
	for i := range holdings {
		resp := MapUserCoinToDTO(&holdings[i].UserCoin)
		resp.CurrentValue = holdings[i].CurrentValue
		resp.ProfitLoss = holdings[i].ProfitLoss
		resp.ProfitLossPercentage = holdings[i].ProfitLossPercentage
		items = append(items, *resp)
	}
	return items
}

// MapTransactionListToDTO maps a transaction log to its response
func MapTransactionListToDTO(list *portfolio.TransactionList) *TransactionListResponse {
	txs := make([]TransactionResponse, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		txs = append(txs, TransactionResponse{
			ID:        tx.ID,
			Quantity:  tx.Quantity,
			Price:     tx.Price,
			Date:      tx.Date,
			CreatedAt: tx.CreatedAt,
		})
	}
	return &TransactionListResponse{
		CoinID:       list.Holding.CoinID,
		Transactions: txs,
		Summary:      list.Summary,
	}
}

// MapNotificationsToDTO maps notifications to their response
func MapNotificationsToDTO(notifications []schema.Notification) []NotificationResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, NotificationResponse{
			ID:        n.ID,
			Kind:      string(n.Kind),
			CoinID:    n.CoinID,
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	return items
}
