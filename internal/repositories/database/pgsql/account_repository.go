package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	"github.com/bizledger/backoffice/internal/models"
	"github.com/bizledger/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, category, subcategory, is_active, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Code,
		&m.Name,
		&m.Category,
		&m.Subcategory,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAccounts returns accounts ordered by code ascending, optionally
// filtered by category.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, category *domain.AccountCategory) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	args := []interface{}{}
	if category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*category))
	}
	query += ` ORDER BY code ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "failed to query accounts")
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, classify(err, "failed to scan account row")
		}
		accounts = append(accounts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "error iterating account rows")
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}

// FindAccountByID retrieves an account by its surrogate id.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return nil, classify(err, "failed to find account by ID "+accountID)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// FindAccountByCode retrieves an account by its external code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account with code " + code + " not found")
		}
		return nil, classify(err, "failed to find account by code "+code)
	}
	acc := mapping.ToDomainAccount(*m)
	return &acc, nil
}

// CountAccounts returns the number of accounts in the registry. The seed
// operation uses it to stay idempotent.
func (r *PgxAccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts;`).Scan(&count); err != nil {
		return 0, classify(err, "failed to count accounts")
	}
	return count, nil
}

// SaveAccounts inserts the given accounts within one transaction.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO accounts (account_id, code, name, category, subcategory, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		batch.Queue(query,
			m.AccountID,
			m.Code,
			m.Name,
			m.Category,
			m.Subcategory,
			m.IsActive,
			m.CreatedAt,
			m.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return apperrors.New(apperrors.KindValidation, "account code already exists", err)
		}
		return classify(err, "failed to insert accounts")
	}

	return r.Commit(ctx, tx)
}

// DeactivateAccount marks an account inactive. The code stays reserved;
// accounts are never physically deleted once referenced.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, at time.Time) error {
	query := `UPDATE accounts SET is_active = FALSE, last_updated_at = $2 WHERE account_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, at)
	if err != nil {
		return classify(err, "failed to deactivate account "+accountID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return nil
}

// DeleteAccount removes an account. The FK from journal lines is
// delete-restrict, so an account referenced by any line cannot be removed.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return apperrors.NewReferentialIntegrityError("account "+accountID+" is referenced by journal lines", err)
		}
		return classify(err, "failed to delete account "+accountID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return nil
}
