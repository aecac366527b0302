package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/marketdata"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// ErrInvalidTransaction is returned for a transaction with a zero quantity or a negative price
var ErrInvalidTransaction = errors.New("invalid transaction")

// TransactionInput is a buy (positive quantity) or sell (negative quantity) entered by a user
type TransactionInput struct {
	CoinID   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

// Validate checks the input without touching the database
func (in TransactionInput) Validate() error {
	if in.CoinID == "" {
		return fmt.Errorf("%w: coin id is required", ErrInvalidTransaction)
	}
	if in.Quantity.IsZero() {
		return fmt.Errorf("%w: quantity must not be zero", ErrInvalidTransaction)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidTransaction)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	return nil
}

// Holding is a user's position in one coin valued at the cached price
type Holding struct {
	schema.UserCoin
	// CurrentValue and ProfitLoss are zero while the coin has no known price
	CurrentValue         decimal.Decimal
	ProfitLoss           decimal.Decimal
	ProfitLossPercentage decimal.Decimal
}

// TransactionList is the transaction log of a holding with its replayed summary
type TransactionList struct {
	Holding      schema.UserCoin
	Transactions []schema.UserCoinTransaction
	Summary      Summary
}

// Service manages user holdings. Every change to a transaction log recomputes the holding's
// aggregate inside the database transaction that changed the log.
//
//go:generate mockgen -source=service.go -destination=../mocks/portfolio_service.go -package=mocks -mock_names=Service=MockPortfolioService
type Service interface {
	// AddTransaction appends a transaction, creating the holding on first use.
	// Returns domain.ErrCoinNotFound for a coin that cannot be resolved.
	AddTransaction(ctx context.Context, userID string, input TransactionInput) (*schema.UserCoin, error)
	// DeleteTransaction removes a transaction owned by the user.
	// Returns domain.ErrTransactionNotFound when the user owns no such transaction.
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) (*schema.UserCoin, error)
	// ListTransactions returns the transaction log of a holding.
	// Returns domain.ErrCoinNotFound when the user does not hold the coin.
	ListTransactions(ctx context.Context, userID string, coinID string) (*TransactionList, error)
	// SetDesiredSellPrice sets the price target of a holding; an invalid or non-positive price clears it
	SetDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error
	// ListHoldings returns the user's holdings valued at up to date prices
	ListHoldings(ctx context.Context, userID string) ([]Holding, error)
}

type service struct {
	store      store.Store
	marketData marketdata.Service
}

// NewService creates a new portfolio service
func NewService(st store.Store, md marketdata.Service) Service {
	return &service{store: st, marketData: md}
}

func (s *service) AddTransaction(ctx context.Context, userID string, input TransactionInput) (*schema.UserCoin, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureCoin(ctx, input.CoinID); err != nil {
		return nil, err
	}

	holding, err := s.store.AddUserCoinTransaction(ctx, store.CreateTransactionInput{
		UserID:   userID,
		CoinID:   input.CoinID,
		Quantity: input.Quantity,
		Price:    input.Price,
		Date:     input.Date.UTC(),
	}, s.recompute(ctx, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}

	return holding, nil
}

func (s *service) DeleteTransaction(ctx context.Context, userID string, transactionID int64) (*schema.UserCoin, error) {
	holding, err := s.store.DeleteUserCoinTransaction(ctx, userID, transactionID, s.recompute(ctx, userID))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return holding, nil
}

func (s *service) ListTransactions(ctx context.Context, userID string, coinID string) (*TransactionList, error) {
	holding, err := s.store.GetUserCoin(ctx, userID, coinID)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, domain.ErrCoinNotFound
	}

	txs, err := s.store.GetUserCoinTransactions(ctx, holding.ID)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []schema.UserCoinTransaction{}
	}

	return &TransactionList{
		Holding:      *holding,
		Transactions: txs,
		Summary:      ComputeHolding(txs),
	}, nil
}

func (s *service) SetDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error {
	if price.Valid && !price.Decimal.IsPositive() {
		price = decimal.NullDecimal{}
	}
	return s.store.UpdateDesiredSellPrice(ctx, userID, coinID, price)
}

func (s *service) ListHoldings(ctx context.Context, userID string) ([]Holding, error) {
	userCoins, err := s.marketData.GetUserCoins(ctx, userID)
	if err != nil {
		return nil, err
	}

	holdings := make([]Holding, 0, len(userCoins))
	for _, userCoin := range userCoins {
		holdings = append(holdings, valueHolding(userCoin))
	}

	return holdings, nil
}

// recompute returns the aggregate function run by the store, reporting clamped sells
func (s *service) recompute(ctx context.Context, userID string) store.RecomputeFunc {
	return func(txs []schema.UserCoinTransaction) store.HoldingTotals {
		summary := ComputeHolding(txs)
		if summary.Oversold() {
			logger.WarnCtx(ctx, "Sell exceeds holding, excess ignored",
				zap.String("user_id", userID),
				zap.String("oversold_quantity", summary.OversoldQuantity.String()),
			)
		}
		return summary.Totals()
	}
}

// ensureCoin makes sure the coin has metadata and a market row before a holding references it
func (s *service) ensureCoin(ctx context.Context, coinID string) error {
	info, err := s.store.GetCoinInfo(ctx, coinID)
	if err != nil {
		return err
	}
	if info != nil {
		return nil
	}

	// Unknown locally, the market data read caches it when upstream knows it
	coin, err := s.marketData.GetCoinData(ctx, coinID)
	if err != nil {
		return err
	}
	if coin == nil || coin.Info == nil || coin.Info.Name == "" {
		return fmt.Errorf("%w: %s", domain.ErrCoinNotFound, coinID)
	}
	return nil
}

func valueHolding(userCoin schema.UserCoin) Holding {
	holding := Holding{UserCoin: userCoin}
	if userCoin.Coin == nil || !userCoin.Coin.CurrentPrice.Valid {
		return holding
	}

	holding.CurrentValue = userCoin.TotalQuantity.Mul(userCoin.Coin.CurrentPrice.Decimal)
	holding.ProfitLoss = holding.CurrentValue.Sub(userCoin.TotalCost)
	if userCoin.TotalCost.IsPositive() {
		holding.ProfitLossPercentage = holding.ProfitLoss.Div(userCoin.TotalCost).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return holding
}
