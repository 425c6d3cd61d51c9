package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database representation of an entry header.
type JournalEntry struct {
	EntryID         string    `db:"entry_id"`
	EntryDate       time.Time `db:"entry_date"`
	Description     string    `db:"description"`
	ReferenceNumber *string   `db:"reference_number"`
	CreatedBy       *string   `db:"created_by"`
	AuditFields
}

// JournalLine is the database representation of an entry line.
// AccountCode/AccountName are populated by joins on reads, not stored.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"-"`
	AccountName string          `db:"-"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description *string         `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
