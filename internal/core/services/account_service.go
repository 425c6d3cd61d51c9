package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
	"github.com/bizledger/backoffice/internal/middleware"
	"github.com/bizledger/backoffice/internal/platform/resilience"
)

// accountService manages the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepository
	policies    resilience.Policies
}

// NewAccountService creates a new AccountSvc.
func NewAccountService(accountRepo portsrepo.AccountRepository, policies resilience.Policies) portssvc.AccountSvc {
	return &accountService{
		accountRepo: accountRepo,
		policies:    policies,
	}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

// ListAccounts returns accounts ordered by code ascending, optionally
// filtered by category.
func (s *accountService) ListAccounts(ctx context.Context, category *domain.AccountCategory) ([]domain.Account, error) {
	if category != nil && !category.Valid() {
		return nil, apperrors.NewValidationError([]string{"unknown account category: " + string(*category)})
	}

	var accounts []domain.Account
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		var err error
		accounts, err = s.accountRepo.ListAccounts(ctx, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccountByCode retrieves a single account by its external code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	var account *domain.Account
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		var err error
		account, err = s.accountRepo.FindAccountByCode(ctx, code)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// CreateAccount adds a single account to the chart. Codes are unique and
// immutable; a duplicate code surfaces as a validation error.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Category.Valid() {
		return nil, apperrors.NewValidationError([]string{"unknown account category: " + string(req.Category)})
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := resilience.Do(ctx, s.policies.Write, func(ctx context.Context) error {
		return s.accountRepo.SaveAccounts(ctx, []domain.Account{account})
	})
	if err != nil {
		logger.Error("Failed to create account", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// DeactivateAccount soft-disables an account; its history stays intact.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	return resilience.Do(ctx, s.policies.Write, func(ctx context.Context) error {
		return s.accountRepo.DeactivateAccount(ctx, accountID, time.Now().UTC())
	})
}

// DeleteAccount removes an account that has never been used. Accounts
// referenced by journal lines cannot be removed (delete-restrict); callers
// should deactivate instead.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	return resilience.Do(ctx, s.policies.Write, func(ctx context.Context) error {
		return s.accountRepo.DeleteAccount(ctx, accountID)
	})
}

// SeedStandardChart installs the standard small-business chart when the
// registry is empty, and is a no-op otherwise. The whole check-then-insert
// runs under the retrying bootstrap policy; re-running it never duplicates
// accounts.
func (s *accountService) SeedStandardChart(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	created := 0
	err := resilience.Do(ctx, s.policies.Bootstrap, func(ctx context.Context) error {
		count, err := s.accountRepo.CountAccounts(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Debug("Chart of accounts already seeded", slog.Int64("count", count))
			created = 0
			return nil
		}

		now := time.Now().UTC()
		accounts := make([]domain.Account, len(standardChart))
		for i, ca := range standardChart {
			accounts[i] = domain.Account{
				AccountID:   uuid.NewString(),
				Code:        ca.code,
				Name:        ca.name,
				Category:    ca.category,
				Subcategory: ca.subcategory,
				IsActive:    true,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
		}

		if err := s.accountRepo.SaveAccounts(ctx, accounts); err != nil {
			return err
		}
		created = len(accounts)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		logger.Info("Standard chart of accounts seeded", slog.Int("accounts", created))
	}
	return created, nil
}
