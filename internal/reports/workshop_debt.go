package reports

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hoangminh/atelier-backend/internal/netting"
	"github.com/hoangminh/atelier-backend/pkg/db/models"
	"github.com/hoangminh/atelier-backend/pkg/enums"
)

// buildWorkshopDebt derives outstanding balances per workshop. Only workshops
// with debt above zero are returned, largest debt first.
func buildWorkshopDebt(snapshot WorkshopSnapshot, workshopID *uuid.UUID) []WorkshopDebt {
	paidByJob := make(map[uuid.UUID]decimal.Decimal)
	for _, rec := range snapshot.Payments {
		if rec.Kind != enums.RecordKindExpense || rec.WorkshopJobID == nil {
			continue
		}
		paidByJob[*rec.WorkshopJobID] = paidByJob[*rec.WorkshopJobID].Add(rec.Amount)
	}

	jobsByWorkshop := make(map[uuid.UUID][]models.WorkshopJob)
	for _, job := range snapshot.Jobs {
		jobsByWorkshop[job.WorkshopID] = append(jobsByWorkshop[job.WorkshopID], job)
	}

	debts := make([]WorkshopDebt, 0, len(snapshot.Workshops))
	for _, workshop := range snapshot.Workshops {
		if workshopID != nil && workshop.ID != *workshopID {
			continue
		}

		entry := WorkshopDebt{
			WorkshopID:   workshop.ID,
			WorkshopName: workshop.Name,
			Debt:         decimal.Zero,
		}
		for _, job := range jobsByWorkshop[workshop.ID] {
			net := netting.JobNet(job)
			paid := paidByJob[job.ID]
			debt := netting.Amount(net, paid)
			entry.Jobs = append(entry.Jobs, JobDebt{
				JobID:   job.ID,
				JobCode: job.Code,
				Net:     net,
				Paid:    paid,
				Debt:    debt,
			})
			entry.Debt = entry.Debt.Add(debt)
		}

		if entry.Debt.IsPositive() {
			debts = append(debts, entry)
		}
	}

	sort.Slice(debts, func(i, j int) bool { return debts[i].Debt.GreaterThan(debts[j].Debt) })
	return debts
}
