// Package repositories defines the storage contracts consumed by the core
// services. Implementations live under internal/repositories.
package repositories

import (
	"context"
	"time"

	"github.com/bizledger/backoffice/internal/core/domain"
)

// AccountRepository persists the chart of accounts.
type AccountRepository interface {
	// ListAccounts returns accounts ordered by code ascending, optionally
	// filtered by category.
	ListAccounts(ctx context.Context, category *domain.AccountCategory) ([]domain.Account, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	CountAccounts(ctx context.Context) (int64, error)
	// SaveAccounts inserts the given accounts in one transaction. Used both
	// for administrative additions and the bootstrap seed.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, at time.Time) error
	// DeleteAccount removes an account; it fails with a referential
	// integrity error when journal lines still reference it.
	DeleteAccount(ctx context.Context, accountID string) error
}

// JournalRepository persists journal entries and their lines.
type JournalRepository interface {
	// SaveEntry inserts the entry header and every line as one atomic
	// transaction; any line failure leaves storage unchanged.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns entry headers, most recent first (entry date
	// descending, insertion order descending as tie-break), capped at limit.
	ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	// FindLinesByEntryID returns the lines of one entry in insertion order,
	// each enriched with its account's code and name.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// ReportingRepository derives balances from raw lines. No cached running
// balance exists anywhere; every call recomputes.
type ReportingRepository interface {
	// GetAccountActivity returns one row per ACTIVE account with its total
	// debit, total credit and balance, ordered by account code ascending.
	// Accounts with no lines are included with zero totals.
	GetAccountActivity(ctx context.Context) ([]domain.AccountBalance, error)
}

// RepositoryProvider bundles the repositories for dependency injection.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	ReportingRepo ReportingRepository
}
