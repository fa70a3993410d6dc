package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// buildWalletCashflow derives per-wallet totals plus the merged daily series.
// walletID narrows the report to a single wallet; with no filter every wallet
// in the snapshot is reported and transfers bucket as outgoing only, so a
// transfer between two in-scope wallets is not counted twice.
func buildWalletCashflow(snapshot CashflowSnapshot, walletID *uuid.UUID) WalletCashflowReport {
	wallets := snapshot.Wallets
	if walletID != nil {
		filtered := wallets[:0:0]
		for _, w := range wallets {
			if w.ID == *walletID {
				filtered = append(filtered, w)
			}
		}
		wallets = filtered
	}

	perWallet := make([]WalletCashflow, 0, len(wallets))
	for _, wallet := range wallets {
		flow := WalletCashflow{
			WalletID:         wallet.ID,
			WalletName:       wallet.Name,
			IncomeTotal:      decimal.Zero,
			ExpenseTotal:     decimal.Zero,
			TransferInTotal:  decimal.Zero,
			TransferOutTotal: decimal.Zero,
			AdjustmentTotal:  decimal.Zero,
		}
		for _, rec := range snapshot.Records {
			switch rec.Kind {
			case enums.RecordKindIncome:
				if rec.WalletID == wallet.ID {
					flow.IncomeTotal = flow.IncomeTotal.Add(rec.Amount)
				}
			case enums.RecordKindExpense:
				if rec.WalletID == wallet.ID {
					flow.ExpenseTotal = flow.ExpenseTotal.Add(rec.Amount)
				}
			case enums.RecordKindTransfer:
				if rec.WalletID == wallet.ID {
					flow.TransferOutTotal = flow.TransferOutTotal.Add(rec.Amount)
				}
				if rec.CounterpartyWalletID != nil && *rec.CounterpartyWalletID == wallet.ID {
					flow.TransferInTotal = flow.TransferInTotal.Add(rec.Amount)
				}
			case enums.RecordKindAdjustment:
				if rec.WalletID == wallet.ID {
					flow.AdjustmentTotal = flow.AdjustmentTotal.Add(rec.Amount)
				}
			}
		}
		flow.NetChange = flow.IncomeTotal.
			Add(flow.TransferInTotal).
			Add(flow.AdjustmentTotal).
			Sub(flow.ExpenseTotal).
			Sub(flow.TransferOutTotal)
		perWallet = append(perWallet, flow)
	}

	return WalletCashflowReport{
		Wallets: perWallet,
		Series:  buildDailySeries(snapshot.Records, walletID),
	}
}

// buildDailySeries merges all four record kinds into per-day in/out buckets,
// sorted by date. Signed adjustments split by sign. Transfer direction
// depends on the filter: with a wallet filter a transfer is incoming when the
// wallet is the destination and outgoing when it is the source; with no
// filter transfers always bucket as outgoing.
func buildDailySeries(records []models.LedgerRecord, walletID *uuid.UUID) []DailyCashflow {
	buckets := make(map[time.Time]*DailyCashflow)

	add := func(date time.Time, in, out decimal.Decimal) {
		day := date.UTC().Truncate(24 * time.Hour)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DailyCashflow{Date: day, InTotal: decimal.Zero, OutTotal: decimal.Zero}
			buckets[day] = bucket
		}
		bucket.InTotal = bucket.InTotal.Add(in)
		bucket.OutTotal = bucket.OutTotal.Add(out)
	}

	for _, rec := range records {
		if walletID != nil && !touchesWallet(rec, *walletID) {
			continue
		}
		switch rec.Kind {
		case enums.RecordKindIncome:
			add(rec.Date, rec.Amount, decimal.Zero)
		case enums.RecordKindExpense:
			add(rec.Date, decimal.Zero, rec.Amount)
		case enums.RecordKindAdjustment:
			if rec.Amount.IsNegative() {
				add(rec.Date, decimal.Zero, rec.Amount.Neg())
			} else {
				add(rec.Date, rec.Amount, decimal.Zero)
			}
		case enums.RecordKindTransfer:
			if walletID != nil && rec.CounterpartyWalletID != nil && *rec.CounterpartyWalletID == *walletID {
				add(rec.Date, rec.Amount, decimal.Zero)
				continue
			}
			add(rec.Date, decimal.Zero, rec.Amount)
		}
	}

	series := make([]DailyCashflow, 0, len(buckets))
	for _, bucket := range buckets {
		bucket.Net = bucket.InTotal.Sub(bucket.OutTotal)
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

func touchesWallet(rec models.LedgerRecord, walletID uuid.UUID) bool {
	if rec.WalletID == walletID {
		return true
	}
	return rec.CounterpartyWalletID != nil && *rec.CounterpartyWalletID == walletID
}
