package pgsql

import (
	"context"

	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository derives balances by summing raw journal lines.
// There is no cached running balance anywhere: every call recomputes from
// the full line set, which trades read latency for immunity to drift.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountActivity returns one row per active account with its total
// debit, total credit and balance (debit - credit), ordered by code.
// The LEFT JOIN keeps accounts with no lines in the result with zero totals.
func (r *reportingRepository) GetAccountActivity(ctx context.Context) ([]domain.AccountBalance, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.category,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM accounts a
		LEFT JOIN journal_entry_lines l ON l.account_id = a.account_id
		WHERE a.is_active
		GROUP BY a.account_id, a.code, a.name, a.category
		ORDER BY a.code ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, classify(err, "failed to query account activity")
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var b domain.AccountBalance
		var totalDebit, totalCredit decimal.Decimal
		err := rows.Scan(
			&b.AccountID,
			&b.Code,
			&b.Name,
			&b.Category,
			&totalDebit,
			&totalCredit,
		)
		if err != nil {
			return nil, classify(err, "failed to scan account activity row")
		}
		b.TotalDebit = totalDebit
		b.TotalCredit = totalCredit
		b.Balance = totalDebit.Sub(totalCredit)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "error iterating account activity rows")
	}

	return balances, nil
}
