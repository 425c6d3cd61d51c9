package dto

import (
	"github.com/bizledger/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse represents one account's derived balance.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalancesResponse buckets account balances by category.
type BalancesResponse struct {
	Assets      []AccountBalanceResponse `json:"assets"`
	Liabilities []AccountBalanceResponse `json:"liabilities"`
	Equity      []AccountBalanceResponse `json:"equity"`
	Revenue     []AccountBalanceResponse `json:"revenue"`
	Expenses    []AccountBalanceResponse `json:"expenses"`
}

// OverviewResponse represents the top-level financial KPIs.
type OverviewResponse struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetIncome        decimal.Decimal `json:"netIncome"`
}

func toAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = AccountBalanceResponse{
			AccountID:   b.AccountID,
			Code:        b.Code,
			Name:        b.Name,
			TotalDebit:  b.TotalDebit,
			TotalCredit: b.TotalCredit,
			Balance:     b.Balance,
		}
	}
	return res
}

// ToBalancesResponse converts a domain BalanceReport to the response DTO
func ToBalancesResponse(report *domain.BalanceReport) BalancesResponse {
	return BalancesResponse{
		Assets:      toAccountBalanceResponses(report.Assets),
		Liabilities: toAccountBalanceResponses(report.Liabilities),
		Equity:      toAccountBalanceResponses(report.Equity),
		Revenue:     toAccountBalanceResponses(report.Revenue),
		Expenses:    toAccountBalanceResponses(report.Expenses),
	}
}

// ToOverviewResponse converts a domain Overview to the response DTO
func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	return OverviewResponse{
		TotalAssets:      o.TotalAssets,
		TotalLiabilities: o.TotalLiabilities,
		TotalEquity:      o.TotalEquity,
		TotalRevenue:     o.TotalRevenue,
		TotalExpenses:    o.TotalExpenses,
		NetIncome:        o.NetIncome,
	}
}
