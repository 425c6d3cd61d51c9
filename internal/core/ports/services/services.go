// Package services defines the service contracts exposed to the HTTP layer.
package services

import (
	"context"

	"github.com/bizledger/backoffice/internal/core/domain"
	"github.com/bizledger/backoffice/internal/dto"
)

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	ListAccounts(ctx context.Context, category *domain.AccountCategory) ([]domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string) error
	DeleteAccount(ctx context.Context, accountID string) error
	// SeedStandardChart inserts the standard small-business chart when the
	// registry is empty; it is a no-op otherwise. Returns the number of
	// accounts created (0 when already seeded).
	SeedStandardChart(ctx context.Context) (int, error)
}

// LedgerSvc orchestrates validation, atomic persistence and read composition
// for journal entries. It holds no state of its own.
type LedgerSvc interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error)
	ListEntryLines(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// ReportingSvc derives balances and overview KPIs from persisted lines.
type ReportingSvc interface {
	AccountBalances(ctx context.Context) (*domain.BalanceReport, error)
	Overview(ctx context.Context) (*domain.Overview, error)
}

// ServiceContainer bundles the services for route registration.
type ServiceContainer struct {
	Account   AccountSvc
	Ledger    LedgerSvc
	Reporting ReportingSvc
}
