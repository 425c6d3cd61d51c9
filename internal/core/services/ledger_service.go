package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/dto"
	"github.com/bizledger/backoffice/internal/middleware"
	"github.com/bizledger/backoffice/internal/platform/resilience"
)

const (
	defaultEntryLimit = 20
	maxEntryLimit     = 100
)

// balanceTolerance absorbs rounding in submitted amounts: an entry is
// balanced when |sum(debit) - sum(credit)| <= 0.01.
var balanceTolerance = decimal.NewFromFloat(0.01)

// ledgerService orchestrates validation, atomic persistence and read
// composition for journal entries. It holds no state of its own.
type ledgerService struct {
	journalRepo portsrepo.JournalRepository
	policies    resilience.Policies
}

// NewLedgerService creates a new LedgerSvc.
func NewLedgerService(journalRepo portsrepo.JournalRepository, policies resilience.Policies) portssvc.LedgerSvc {
	return &ledgerService{
		journalRepo: journalRepo,
		policies:    policies,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// validateCreateEntry checks every precondition and returns the complete
// list of violations, not just the first one found. No persistence is
// attempted while the list is non-empty.
func validateCreateEntry(req dto.CreateEntryRequest) (time.Time, []string) {
	violations := []string{}

	var entryDate time.Time
	if strings.TrimSpace(req.EntryDate) == "" {
		violations = append(violations, "entry date is required")
	} else {
		parsed, err := time.Parse(dto.EntryDateFormat, req.EntryDate)
		if err != nil {
			violations = append(violations, "entry date must use the YYYY-MM-DD format")
		} else {
			entryDate = parsed
		}
	}

	if strings.TrimSpace(req.Description) == "" {
		violations = append(violations, "description is required")
	}

	if len(req.Lines) == 0 {
		violations = append(violations, "at least one line is required")
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range req.Lines {
		lineNo := i + 1
		if line.AccountID == "" {
			violations = append(violations, fmt.Sprintf("line %d: account is required", lineNo))
		}
		if line.Debit.IsNegative() {
			violations = append(violations, fmt.Sprintf("line %d: debit must not be negative", lineNo))
		}
		if line.Credit.IsNegative() {
			violations = append(violations, fmt.Sprintf("line %d: credit must not be negative", lineNo))
		}
		// Exactly one side of a line carries the amount.
		if line.Debit.IsZero() == line.Credit.IsZero() {
			violations = append(violations, fmt.Sprintf("line %d: exactly one of debit or credit must be non-zero", lineNo))
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if len(req.Lines) > 0 {
		if diff := totalDebit.Sub(totalCredit); diff.Abs().GreaterThan(balanceTolerance) {
			violations = append(violations, fmt.Sprintf(
				"entry is not balanced: total debit %s does not equal total credit %s (difference %s)",
				totalDebit.String(), totalCredit.String(), diff.String()))
		}
	}

	return entryDate, violations
}

// CreateEntry validates the payload, persists header and lines as one
// atomic transaction and returns the entry re-read from storage with its
// lines enriched with account code and name. The write runs under the
// single-attempt write policy: a journal entry must never be blindly
// retried, since a duplicate submission would double-book the amounts.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entryDate, violations := validateCreateEntry(req)
	if len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:         entryID,
		EntryDate:       entryDate,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		CreatedBy:       req.CreatedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Description: lineReq.Description,
			CreatedAt:   now,
		}
	}

	err := resilience.Do(ctx, s.policies.Write, func(ctx context.Context) error {
		return s.journalRepo.SaveEntry(ctx, entry, lines)
	})
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Journal entry created", slog.String("entry_id", entryID), slog.Int("lines", len(lines)))

	// Read back the persisted rows so generated ids and timestamps are
	// authoritative and lines carry account code/name.
	return s.getEntryWithLines(ctx, entryID)
}

func (s *ledgerService) getEntryWithLines(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	var lines []domain.JournalLine
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		var err error
		entry, err = s.journalRepo.FindEntryByID(ctx, entryID)
		if err != nil {
			return err
		}
		lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries returns entry headers, most recent first, capped at limit.
func (s *ledgerService) ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}

	var entries []domain.JournalEntry
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		var err error
		entries, err = s.journalRepo.ListEntries(ctx, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEntryLines returns all lines of one entry in insertion order, each
// enriched with its account's code and name.
func (s *ledgerService) ListEntryLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	var lines []domain.JournalLine
	err := resilience.Do(ctx, s.policies.Read, func(ctx context.Context) error {
		// Distinguish "entry has no lines" from "entry does not exist".
		if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
			return err
		}
		var err error
		lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
