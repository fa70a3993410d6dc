package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangminh/atelier-backend/pkg/db/models"
	pkgerrors "github.com/hoangminh/atelier-backend/pkg/errors"
	"github.com/hoangminh/atelier-backend/pkg/logger"
)

type fakeSource struct {
	project  ProjectSnapshot
	cashflow CashflowSnapshot
	workshop WorkshopSnapshot
	kanban   KanbanSnapshot
	err      error
}

func (f *fakeSource) ProjectSnapshot(ctx context.Context, projectID uuid.UUID, rng Range) (ProjectSnapshot, error) {
	return f.project, f.err
}

func (f *fakeSource) CashflowSnapshot(ctx context.Context, walletID *uuid.UUID, rng Range) (CashflowSnapshot, error) {
	return f.cashflow, f.err
}

func (f *fakeSource) WorkshopSnapshot(ctx context.Context, workshopID *uuid.UUID, rng Range) (WorkshopSnapshot, error) {
	return f.workshop, f.err
}

func (f *fakeSource) KanbanSnapshot(ctx context.Context, filters KanbanFilters) (KanbanSnapshot, error) {
	return f.kanban, f.err
}

func newTestReportService(t *testing.T, source Source) Service {
	t.Helper()
	svc, err := NewService(source, defaultClassifier(), logger.New(logger.Options{ServiceName: "reports-test"}), nil)
	require.NoError(t, err)
	return svc
}

func TestServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(nil, defaultClassifier(), logger.New(logger.Options{ServiceName: "t"}), nil)
	assert.Error(t, err)

	_, err = NewService(&fakeSource{}, defaultClassifier(), nil, nil)
	assert.Error(t, err)
}

func TestServiceProjectFinancialSummary(t *testing.T) {
	projectID := uuid.New()
	source := &fakeSource{
		project: ProjectSnapshot{
			Project: &models.Project{
				ID:         projectID,
				OrderItems: []models.OrderItem{plannedItem(projectID, "2", "1000000")},
			},
			Records: []models.LedgerRecord{incomeRecord(projectID, "500000", nil)},
		},
	}
	svc := newTestReportService(t, source)

	summary, err := svc.ProjectFinancialSummary(context.Background(), projectID, Range{})
	require.NoError(t, err)
	assert.True(t, summary.OrderTotal.Equal(money("2000000")))
	assert.True(t, summary.CustomerDebt.Equal(money("1500000")))
}

func TestServiceWrapsSourceErrors(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	svc := newTestReportService(t, source)
	ctx := context.Background()

	_, err := svc.ProjectFinancialSummary(ctx, uuid.New(), Range{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))

	_, err = svc.WalletCashflow(ctx, nil, Range{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))

	_, err = svc.WorkshopDebt(ctx, nil, Range{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))

	_, err = svc.Kanban(ctx, KanbanFilters{})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeInternal))
}

func TestServiceKanban(t *testing.T) {
	project := models.Project{
		ID: uuid.New(), Code: "CC0001", Name: "Apartment", CustomerID: uuid.New(),
		Stage: "no-such-stage",
	}
	svc := newTestReportService(t, &fakeSource{
		kanban: KanbanSnapshot{Projects: []models.Project{project}},
	})

	columns, err := svc.Kanban(context.Background(), KanbanFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, columns)
	require.Len(t, columns[0].Projects, 1)
	assert.Equal(t, project.ID, columns[0].Projects[0].ProjectID)
}
