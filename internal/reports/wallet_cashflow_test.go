package reports

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

func walletRecord(kind enums.RecordKind, walletID uuid.UUID, amount, date string) models.LedgerRecord {
	return models.LedgerRecord{
		ID:       uuid.New(),
		Kind:     kind,
		Amount:   money(amount),
		Date:     day(date),
		WalletID: walletID,
	}
}

func TestBuildWalletCashflowTotals(t *testing.T) {
	cash := models.Wallet{ID: uuid.New(), Name: "Cash"}
	bank := models.Wallet{ID: uuid.New(), Name: "Bank"}

	transfer := walletRecord(enums.RecordKindTransfer, cash.ID, "400000", "2026-03-03")
	transfer.CounterpartyWalletID = &bank.ID

	snapshot := CashflowSnapshot{
		Wallets: []models.Wallet{cash, bank},
		Records: []models.LedgerRecord{
			walletRecord(enums.RecordKindIncome, cash.ID, "1000000", "2026-03-01"),
			walletRecord(enums.RecordKindExpense, cash.ID, "250000", "2026-03-02"),
			transfer,
			walletRecord(enums.RecordKindAdjustment, bank.ID, "-50000", "2026-03-04"),
		},
	}

	report := buildWalletCashflow(snapshot, nil)
	require.Len(t, report.Wallets, 2)

	cashFlow := report.Wallets[0]
	require.Equal(t, cash.ID, cashFlow.WalletID)
	assert.True(t, cashFlow.IncomeTotal.Equal(money("1000000")))
	assert.True(t, cashFlow.ExpenseTotal.Equal(money("250000")))
	assert.True(t, cashFlow.TransferOutTotal.Equal(money("400000")))
	assert.True(t, cashFlow.TransferInTotal.IsZero())
	assert.True(t, cashFlow.NetChange.Equal(money("350000")), "net change %s", cashFlow.NetChange)

	bankFlow := report.Wallets[1]
	require.Equal(t, bank.ID, bankFlow.WalletID)
	assert.True(t, bankFlow.TransferInTotal.Equal(money("400000")))
	assert.True(t, bankFlow.AdjustmentTotal.Equal(money("-50000")))
	assert.True(t, bankFlow.NetChange.Equal(money("350000")))
}

func TestBuildWalletCashflowNetChangeMatchesSeries(t *testing.T) {
	wallet := models.Wallet{ID: uuid.New(), Name: "Cash"}
	snapshot := CashflowSnapshot{
		Wallets: []models.Wallet{wallet},
		Records: []models.LedgerRecord{
			walletRecord(enums.RecordKindIncome, wallet.ID, "900000", "2026-03-01"),
			walletRecord(enums.RecordKindExpense, wallet.ID, "300000", "2026-03-01"),
			walletRecord(enums.RecordKindAdjustment, wallet.ID, "-100000", "2026-03-02"),
			walletRecord(enums.RecordKindAdjustment, wallet.ID, "25000", "2026-03-02"),
		},
	}

	report := buildWalletCashflow(snapshot, &wallet.ID)
	require.Len(t, report.Wallets, 1)

	// summing the daily nets reproduces the wallet's net change
	seriesNet := money("0")
	for _, bucket := range report.Series {
		seriesNet = seriesNet.Add(bucket.Net)
	}
	assert.True(t, seriesNet.Equal(report.Wallets[0].NetChange),
		"series %s vs wallet %s", seriesNet, report.Wallets[0].NetChange)
}

func TestBuildDailySeriesBucketsAndSorts(t *testing.T) {
	wallet := uuid.New()
	records := []models.LedgerRecord{
		walletRecord(enums.RecordKindExpense, wallet, "100000", "2026-03-05"),
		walletRecord(enums.RecordKindIncome, wallet, "700000", "2026-03-01"),
		walletRecord(enums.RecordKindIncome, wallet, "200000", "2026-03-05"),
	}
	// same calendar day at a different hour lands in the same bucket
	late := walletRecord(enums.RecordKindIncome, wallet, "50000", "2026-03-01")
	late.Date = late.Date.Add(23 * time.Hour)
	records = append(records, late)

	series := buildDailySeries(records, nil)
	require.Len(t, series, 2)

	assert.Equal(t, day("2026-03-01"), series[0].Date)
	assert.True(t, series[0].InTotal.Equal(money("750000")))
	assert.Equal(t, day("2026-03-05"), series[1].Date)
	assert.True(t, series[1].InTotal.Equal(money("200000")))
	assert.True(t, series[1].OutTotal.Equal(money("100000")))
	assert.True(t, series[1].Net.Equal(money("100000")))
}

func TestBuildDailySeriesAdjustmentSignSplit(t *testing.T) {
	wallet := uuid.New()
	series := buildDailySeries([]models.LedgerRecord{
		walletRecord(enums.RecordKindAdjustment, wallet, "120000", "2026-03-01"),
		walletRecord(enums.RecordKindAdjustment, wallet, "-80000", "2026-03-01"),
	}, nil)

	require.Len(t, series, 1)
	assert.True(t, series[0].InTotal.Equal(money("120000")))
	assert.True(t, series[0].OutTotal.Equal(money("80000")))
	assert.True(t, series[0].Net.Equal(money("40000")))
}

func TestBuildDailySeriesTransferDirection(t *testing.T) {
	source := uuid.New()
	destination := uuid.New()

	transfer := walletRecord(enums.RecordKindTransfer, source, "500000", "2026-03-01")
	transfer.CounterpartyWalletID = &destination
	records := []models.LedgerRecord{transfer}

	t.Run("incoming for the destination wallet", func(t *testing.T) {
		series := buildDailySeries(records, &destination)
		require.Len(t, series, 1)
		assert.True(t, series[0].InTotal.Equal(money("500000")))
		assert.True(t, series[0].OutTotal.IsZero())
	})

	t.Run("outgoing for the source wallet", func(t *testing.T) {
		series := buildDailySeries(records, &source)
		require.Len(t, series, 1)
		assert.True(t, series[0].OutTotal.Equal(money("500000")))
	})

	t.Run("outgoing with no filter", func(t *testing.T) {
		series := buildDailySeries(records, nil)
		require.Len(t, series, 1)
		assert.True(t, series[0].OutTotal.Equal(money("500000")))
		assert.True(t, series[0].InTotal.IsZero())
	})

	t.Run("skipped for an unrelated wallet", func(t *testing.T) {
		other := uuid.New()
		assert.Empty(t, buildDailySeries(records, &other))
	})
}
