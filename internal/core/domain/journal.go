package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single, balanced financial event composed of
// debit/credit lines. Entries are immutable once created; amendments are
// modelled as new offsetting entries, never as updates.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`         // Primary Key (UUID)
	EntryDate       time.Time     `json:"entryDate"`       // Date the event occurred
	Description     string        `json:"description"`     // Required free text
	ReferenceNumber string        `json:"referenceNumber"` // Optional external reference
	CreatedBy       string        `json:"createdBy"`       // Optional author label
	Lines           []JournalLine `json:"lines,omitempty"` // Owned lines, loaded on reads
	AuditFields
}

// JournalLine is a single line within an entry, affecting one account.
// Exactly one of Debit/Credit is non-zero and both are non-negative.
type JournalLine struct {
	LineID      string          `json:"lineID"`      // Primary Key (UUID)
	EntryID     string          `json:"entryID"`     // FK -> JournalEntry
	AccountID   string          `json:"accountID"`   // FK -> Account (delete-restrict)
	AccountCode string          `json:"accountCode"` // Enriched from the account on reads
	AccountName string          `json:"accountName"` // Enriched from the account on reads
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"` // Optional
	CreatedAt   time.Time       `json:"createdAt"`
}
