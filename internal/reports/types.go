package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// Range bounds a report by record date. Either side may be nil for an open
// interval.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether the date falls inside the range.
func (r Range) Contains(date time.Time) bool {
	if r.Start != nil && date.Before(*r.Start) {
		return false
	}
	if r.End != nil && date.After(*r.End) {
		return false
	}
	return true
}

// ProjectFinancialSummary is the money position of one project: income split
// by classification, expenses split between subcontracted work and direct
// spend, and the resulting profit and customer debt.
type ProjectFinancialSummary struct {
	ProjectID          uuid.UUID       `json:"project_id"`
	DepositTotal       decimal.Decimal `json:"deposit_total"`
	PaymentTotal       decimal.Decimal `json:"payment_total"`
	FinalTotal         decimal.Decimal `json:"final_total"`
	IncomeTotal        decimal.Decimal `json:"income_total"`
	WorkshopTotal      decimal.Decimal `json:"workshop_total"`
	DirectExpenseTotal decimal.Decimal `json:"direct_expense_total"`
	ExpenseTotal       decimal.Decimal `json:"expense_total"`
	OrderTotal         decimal.Decimal `json:"order_total"`
	Profit             decimal.Decimal `json:"profit"`
	PaidTotal          decimal.Decimal `json:"paid_total"`
	CustomerDebt       decimal.Decimal `json:"customer_debt"`
}

// WalletCashflow is the per-wallet movement breakdown.
type WalletCashflow struct {
	WalletID         uuid.UUID       `json:"wallet_id"`
	WalletName       string          `json:"wallet_name"`
	IncomeTotal      decimal.Decimal `json:"income_total"`
	ExpenseTotal     decimal.Decimal `json:"expense_total"`
	TransferInTotal  decimal.Decimal `json:"transfer_in_total"`
	TransferOutTotal decimal.Decimal `json:"transfer_out_total"`
	AdjustmentTotal  decimal.Decimal `json:"adjustment_total"`
	NetChange        decimal.Decimal `json:"net_change"`
}

// DailyCashflow is one bucket of the merged per-day series.
type DailyCashflow struct {
	Date     time.Time       `json:"date"`
	InTotal  decimal.Decimal `json:"in_total"`
	OutTotal decimal.Decimal `json:"out_total"`
	Net      decimal.Decimal `json:"net"`
}

// WalletCashflowReport bundles per-wallet totals with the merged daily
// series.
type WalletCashflowReport struct {
	Wallets []WalletCashflow `json:"wallets"`
	Series  []DailyCashflow  `json:"series"`
}

// JobDebt is the settlement state of one workshop job.
type JobDebt struct {
	JobID   uuid.UUID       `json:"job_id"`
	JobCode string          `json:"job_code"`
	Net     decimal.Decimal `json:"net"`
	Paid    decimal.Decimal `json:"paid"`
	Debt    decimal.Decimal `json:"debt"`
}

// WorkshopDebt is the outstanding balance owed to one workshop.
type WorkshopDebt struct {
	WorkshopID   uuid.UUID       `json:"workshop_id"`
	WorkshopName string          `json:"workshop_name"`
	Debt         decimal.Decimal `json:"debt"`
	Jobs         []JobDebt       `json:"jobs"`
}

// KanbanCard is one project on the board with its headline figures.
type KanbanCard struct {
	ProjectID      uuid.UUID       `json:"project_id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	IncomeTotal    decimal.Decimal `json:"income_total"`
	WorkshopTotal  decimal.Decimal `json:"workshop_total"`
	ExpenseTotal   decimal.Decimal `json:"expense_total"`
	EstimatedTotal decimal.Decimal `json:"estimated_total"`
}

// KanbanColumn is one pipeline stage and its projects, in board order.
type KanbanColumn struct {
	Stage    enums.ProjectStage `json:"stage"`
	Projects []KanbanCard       `json:"projects"`
}

// KanbanFilters narrows the projects placed on the board.
type KanbanFilters struct {
	CustomerID *uuid.UUID
}

// ProjectSnapshot is the immutable input set for one project summary: the
// project with its items and jobs, the project's live ledger records inside
// the range, and the categories those records reference.
type ProjectSnapshot struct {
	Project    *models.Project
	Records    []models.LedgerRecord
	Categories map[uuid.UUID]models.Category
}

// CashflowSnapshot is the input set for the wallet cashflow report.
type CashflowSnapshot struct {
	Wallets []models.Wallet
	Records []models.LedgerRecord
}

// WorkshopSnapshot is the input set for the workshop debt report. Payments
// are the live expense records referencing any of the jobs.
type WorkshopSnapshot struct {
	Workshops []models.Workshop
	Jobs      []models.WorkshopJob
	Payments  []models.LedgerRecord
}

// KanbanSnapshot is the input set for the kanban board.
type KanbanSnapshot struct {
	Projects   []models.Project
	Records    []models.LedgerRecord
	Categories map[uuid.UUID]models.Category
}
