// internal/app/system/ledger/ledger.go
//
// Package ledger derives financial summaries from the installment
// collection. All methods are pure reads.
//
// The declared valor_total on a financial record is advisory: installments
// are created, edited and deleted independently and are never reconciled
// against it. Outstanding amounts are computed as valor_total - recebido on
// purpose, so they can diverge from the literal sum of pending installments
// when the record's terms drift. Revenue figures, by contrast, come only
// from paid installments.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/institutojk/mentoria/internal/app/store"
	"github.com/institutojk/mentoria/internal/app/system/apperr"
	"github.com/institutojk/mentoria/internal/domain/models"
)

// Summary is the per-record breakdown of paid and outstanding amounts.
type Summary struct {
	RecordID         string  `json:"financeiro_id"`
	TotalAmount      float64 `json:"valor_total"`
	Received         float64 `json:"recebido"`
	Outstanding      float64 `json:"pendente"`
	PaidCount        int     `json:"parcelas_pagas"`
	PendingCount     int     `json:"parcelas_pendentes"`
	InstallmentCount int     `json:"total_parcelas"`
}

// OverviewRow is a Summary joined with the names a back-office listing
// needs: who owes it and for which program.
type OverviewRow struct {
	Summary
	EnrollmentID string `json:"mentorada_mentoria_id"`
	UserName     string `json:"mentorada_nome"`
	ProgramName  string `json:"mentoria_nome"`
}

// Aggregator computes ledger figures by reading through the store.
type Aggregator struct {
	store store.Store
}

// NewAggregator creates an Aggregator backed by the given store.
func NewAggregator(s store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// Summarize loads all installments of a financial record and partitions
// them by status. Returns NotFound when the record does not exist.
func (a *Aggregator) Summarize(ctx context.Context, recordID string) (*Summary, error) {
	record, err := a.store.GetFinancialRecord(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Informações financeiras não encontradas")
		}
		return nil, err
	}

	installments, err := a.store.InstallmentsByRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	return summarize(record, installments), nil
}

func summarize(record *models.FinancialRecord, installments []models.Installment) *Summary {
	s := &Summary{
		RecordID:         record.ID,
		TotalAmount:      record.TotalAmount,
		InstallmentCount: len(installments),
	}
	for _, installment := range installments {
		if installment.Status == models.InstallmentPaid {
			s.PaidCount++
			s.Received += installment.Amount
		} else {
			s.PendingCount++
		}
	}
	s.Outstanding = s.TotalAmount - s.Received
	return s
}

// Overview returns one row per financial record, joined with the mentee and
// program names, ordered by record creation. Records whose enrollment no
// longer resolves are skipped: a concurrent cascade may have removed the
// enrollment before the record, and a half-deleted row is worse than none.
func (a *Aggregator) Overview(ctx context.Context) ([]OverviewRow, error) {
	records, err := a.store.ListFinancialRecords(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]OverviewRow, 0, len(records))
	for i := range records {
		record := &records[i]

		enrollment, err := a.store.GetEnrollment(ctx, record.EnrollmentID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}

		row := OverviewRow{EnrollmentID: enrollment.ID}
		if user, err := a.store.GetUser(ctx, enrollment.UserID); err == nil {
			row.UserName = user.Name
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if program, err := a.store.GetProgram(ctx, enrollment.ProgramID); err == nil {
			row.ProgramName = program.Name
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}

		installments, err := a.store.InstallmentsByRecord(ctx, record.ID)
		if err != nil {
			return nil, err
		}
		row.Summary = *summarize(record, installments)
		rows = append(rows, row)
	}
	return rows, nil
}

// MonthlyRevenue sums paid installments whose paid date falls within
// [first of asOf's month 00:00 UTC, asOf]. The month boundary is always
// computed in UTC regardless of the caller's timezone.
func (a *Aggregator) MonthlyRevenue(ctx context.Context, asOf time.Time) (float64, error) {
	asOf = asOf.UTC()
	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	paid, err := a.store.PaidInstallments(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, installment := range paid {
		if installment.PaidDate == nil {
			continue
		}
		paidAt := installment.PaidDate.UTC()
		if paidAt.Before(monthStart) || paidAt.After(asOf) {
			continue
		}
		total += installment.Amount
	}
	return total, nil
}

// LifetimeRevenue sums every paid installment with no date bound.
func (a *Aggregator) LifetimeRevenue(ctx context.Context) (float64, error) {
	paid, err := a.store.PaidInstallments(ctx)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, installment := range paid {
		total += installment.Amount
	}
	return total, nil
}
