package domain

import (
	"github.com/shopspring/decimal"
)

// AccountBalance is the derived balance of one account, recomputed from its
// raw lines on every read. Balance = TotalDebit - TotalCredit for every
// category; no sign convention is applied per category.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    AccountCategory `json:"category"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceReport groups account balances into the five category buckets,
// each ordered by account code ascending. Active accounts with no lines
// appear with zero totals.
type BalanceReport struct {
	Assets      []AccountBalance `json:"assets"`
	Liabilities []AccountBalance `json:"liabilities"`
	Equity      []AccountBalance `json:"equity"`
	Revenue     []AccountBalance `json:"revenue"`
	Expenses    []AccountBalance `json:"expenses"`
}

// Bucket returns the slice for the given category, or nil for an unknown one.
func (r *BalanceReport) Bucket(c AccountCategory) *[]AccountBalance {
	switch c {
	case Assets:
		return &r.Assets
	case Liabilities:
		return &r.Liabilities
	case Equity:
		return &r.Equity
	case Revenue:
		return &r.Revenue
	case Expenses:
		return &r.Expenses
	}
	return nil
}

// Overview holds the top-level financial KPIs, all derived from
// AccountBalances; NetIncome = TotalRevenue - TotalExpenses.
type Overview struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetIncome        decimal.Decimal `json:"netIncome"`
}
