package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Assets      AccountCategory = "assets"
	Liabilities AccountCategory = "liabilities"
	Equity      AccountCategory = "equity"
	Revenue     AccountCategory = "revenue"
	Expenses    AccountCategory = "expenses"
)

// AccountCategories lists the five categories in reporting order.
var AccountCategories = []AccountCategory{Assets, Liabilities, Equity, Revenue, Expenses}

// Valid reports whether c is one of the five known categories.
func (c AccountCategory) Valid() bool {
	switch c {
	case Assets, Liabilities, Equity, Revenue, Expenses:
		return true
	}
	return false
}

// Account represents one entry in the chart of accounts.
// The code is externally meaningful (e.g. "1010"), unique and immutable;
// accounts are deactivated rather than deleted once referenced by lines.
type Account struct {
	AccountID   string          `json:"accountID"`   // Primary Key (UUID)
	Code        string          `json:"code"`        // Unique, immutable account number
	Name        string          `json:"name"`        // Display name
	Category    AccountCategory `json:"category"`    // assets, liabilities, equity, revenue, expenses
	Subcategory string          `json:"subcategory"` // Optional grouping label
	IsActive    bool            `json:"isActive"`
	AuditFields
}
