package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/platform/resilience"
)

// reportingService derives balances and summary figures from posted
// journal lines. Nothing is cached: every call re-aggregates, so a report
// always reflects a consistent snapshot of the ledger.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	policies      resilience.Policies
}

// NewReportingService creates a new ReportingSvc.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, policies resilience.Policies) portssvc.ReportingSvc {
	return &reportingService{
		reportingRepo: reportingRepo,
		policies:      policies,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) activity(ctx context.Context) ([]domain.AccountBalance, error) {
	var balances []domain.AccountBalance
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		var err error
		balances, err = s.reportingRepo.GetAccountActivity(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// AccountBalances returns per-account totals grouped by category. Every
// active account appears, including ones with no activity, and every
// category bucket is present even when empty.
func (s *reportingService) AccountBalances(ctx context.Context) (*domain.BalanceReport, error) {
	balances, err := s.activity(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceReport{
		Assets:      []domain.AccountBalance{},
		Liabilities: []domain.AccountBalance{},
		Equity:      []domain.AccountBalance{},
		Revenue:     []domain.AccountBalance{},
		Expenses:    []domain.AccountBalance{},
	}
	for _, b := range balances {
		bucket := report.Bucket(b.Category)
		if bucket == nil {
			continue
		}
		*bucket = append(*bucket, b)
	}
	return report, nil
}

// Overview returns one summary figure per category plus net income
// (revenue minus expenses). Each figure is the sum of the balances of the
// category's accounts, so the overview always agrees with AccountBalances
// computed over the same ledger state.
func (s *reportingService) Overview(ctx context.Context) (*domain.Overview, error) {
	balances, err := s.activity(ctx)
	if err != nil {
		return nil, err
	}

	totals := map[domain.AccountCategory]decimal.Decimal{}
	for _, b := range balances {
		totals[b.Category] = totals[b.Category].Add(b.Balance)
	}

	return &domain.Overview{
		TotalAssets:      totals[domain.Assets],
		TotalLiabilities: totals[domain.Liabilities],
		TotalEquity:      totals[domain.Equity],
		TotalRevenue:     totals[domain.Revenue],
		TotalExpenses:    totals[domain.Expenses],
		NetIncome:        totals[domain.Revenue].Sub(totals[domain.Expenses]),
	}, nil
}
