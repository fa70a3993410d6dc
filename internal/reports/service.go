// Package reports derives financial aggregates from the ledger on demand.
// Nothing here writes: every report is a pure fold over a snapshot of live
// rows, so repeated calls over unchanged data return identical results.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hoangminh/atelier-backend/internal/classify"
	pkgerrors "github.com/hoangminh/atelier-backend/pkg/errors"
	"github.com/hoangminh/atelier-backend/pkg/logger"
	"github.com/hoangminh/atelier-backend/pkg/metrics"
)

// Service defines the aggregation reports.
type Service interface {
	// ProjectFinancialSummary computes the money position of one project.
	// An unknown project yields an all-zero summary.
	ProjectFinancialSummary(ctx context.Context, projectID uuid.UUID, rng Range) (ProjectFinancialSummary, error)
	// WalletCashflow computes per-wallet totals and the merged daily series,
	// optionally narrowed to one wallet.
	WalletCashflow(ctx context.Context, walletID *uuid.UUID, rng Range) (WalletCashflowReport, error)
	// WorkshopDebt lists workshops with outstanding balances, largest first.
	WorkshopDebt(ctx context.Context, workshopID *uuid.UUID, rng Range) ([]WorkshopDebt, error)
	// Kanban groups projects into the stage pipeline with headline figures.
	Kanban(ctx context.Context, filters KanbanFilters) ([]KanbanColumn, error)
}

type service struct {
	source     Source
	classifier classify.Classifier
	logg       *logger.Logger
	metrics    *metrics.ReportMetrics
}

// NewService wires a report service with the required dependencies.
func NewService(source Source, classifier classify.Classifier, logg *logger.Logger, m *metrics.ReportMetrics) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("report source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		source:     source,
		classifier: classifier,
		logg:       logg,
		metrics:    m,
	}, nil
}

func (s *service) ProjectFinancialSummary(ctx context.Context, projectID uuid.UUID, rng Range) (ProjectFinancialSummary, error) {
	defer s.observe("project_financial_summary", time.Now())
	ctx = s.logg.WithProjectID(ctx, projectID.String())

	snapshot, err := s.source.ProjectSnapshot(ctx, projectID, rng)
	if err != nil {
		s.logg.Error(ctx, "loading project snapshot", err)
		return ProjectFinancialSummary{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading project snapshot")
	}

	return buildProjectSummary(projectID, snapshot, s.classifier), nil
}

func (s *service) WalletCashflow(ctx context.Context, walletID *uuid.UUID, rng Range) (WalletCashflowReport, error) {
	defer s.observe("wallet_cashflow", time.Now())
	if walletID != nil {
		ctx = s.logg.WithWalletID(ctx, walletID.String())
	}

	snapshot, err := s.source.CashflowSnapshot(ctx, walletID, rng)
	if err != nil {
		s.logg.Error(ctx, "loading cashflow snapshot", err)
		return WalletCashflowReport{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cashflow snapshot")
	}

	return buildWalletCashflow(snapshot, walletID), nil
}

func (s *service) WorkshopDebt(ctx context.Context, workshopID *uuid.UUID, rng Range) ([]WorkshopDebt, error) {
	defer s.observe("workshop_debt", time.Now())

	snapshot, err := s.source.WorkshopSnapshot(ctx, workshopID, rng)
	if err != nil {
		s.logg.Error(ctx, "loading workshop snapshot", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading workshop snapshot")
	}

	return buildWorkshopDebt(snapshot, workshopID), nil
}

func (s *service) Kanban(ctx context.Context, filters KanbanFilters) ([]KanbanColumn, error) {
	defer s.observe("kanban", time.Now())

	snapshot, err := s.source.KanbanSnapshot(ctx, filters)
	if err != nil {
		s.logg.Error(ctx, "loading kanban snapshot", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading kanban snapshot")
	}

	return buildKanban(snapshot, nil, filters, s.classifier), nil
}

func (s *service) observe(report string, started time.Time) {
	s.metrics.ObserveDuration(report, time.Since(started))
}
