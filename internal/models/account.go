package models

import "time"

// AccountCategory mirrors domain.AccountCategory for DB storage.
type AccountCategory string

// Account is the database representation of a chart-of-accounts row.
type Account struct {
	AccountID   string          `db:"account_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	Category    AccountCategory `db:"category"`
	Subcategory string          `db:"subcategory"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// AuditFields holds standard audit columns.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
