package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// Summary is the aggregate of a holding's transaction log
type Summary struct {
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	AveragePrice  decimal.Decimal `json:"average_price"`
	// OversoldQuantity is the part of the sells that exceeded the quantity held at the time.
	// It is ignored by the aggregate; a positive value signals an inconsistent log.
	OversoldQuantity decimal.Decimal `json:"oversold_quantity"`
}

// Oversold reports whether any sell was clamped
func (s Summary) Oversold() bool {
	return s.OversoldQuantity.IsPositive()
}

// Totals returns the aggregate columns stored on the holding
func (s Summary) Totals() store.HoldingTotals {
	return store.HoldingTotals{
		TotalQuantity: s.TotalQuantity,
		TotalCost:     s.TotalCost,
		AveragePrice:  s.AveragePrice,
	}
}

// ComputeHolding replays transactions in ascending date order with weighted average cost.
// A buy adds quantity*price to the cost. A sell removes the sold quantity at the average cost
// before the sell; selling more than is held sells everything and records the excess in
// OversoldQuantity. The total quantity is never negative.
func ComputeHolding(txs []schema.UserCoinTransaction) Summary {
	ordered := make([]schema.UserCoinTransaction, len(txs))
	copy(ordered, txs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	var summary Summary
	for _, tx := range ordered {
		switch {
		case tx.Quantity.IsPositive():
			summary.TotalQuantity = summary.TotalQuantity.Add(tx.Quantity)
			summary.TotalCost = summary.TotalCost.Add(tx.Quantity.Mul(tx.Price))

		case tx.Quantity.IsNegative():
			requested := tx.Quantity.Abs()
			sellQty := decimal.Min(requested, summary.TotalQuantity)
			summary.OversoldQuantity = summary.OversoldQuantity.Add(requested.Sub(sellQty))
			if !sellQty.IsPositive() {
				continue
			}

			if sellQty.Equal(summary.TotalQuantity) {
				// Selling out leaves no rounding residue in the cost
				summary.TotalQuantity = decimal.Zero
				summary.TotalCost = decimal.Zero
				continue
			}
			avgBefore := summary.TotalCost.Div(summary.TotalQuantity)
			summary.TotalCost = summary.TotalCost.Sub(sellQty.Mul(avgBefore))
			summary.TotalQuantity = summary.TotalQuantity.Sub(sellQty)
		}
	}

	if summary.TotalQuantity.IsPositive() {
		summary.AveragePrice = summary.TotalCost.Div(summary.TotalQuantity)
	} else {
		summary.AveragePrice = decimal.Zero
	}

	return summary
}
