package services

import "github.com/bizledger/backoffice/internal/core/domain"

type chartAccount struct {
	code        string
	name        string
	category    domain.AccountCategory
	subcategory string
}

// standardChart is the fixed small-business chart of accounts installed by
// SeedStandardChart on an empty registry. Codes follow the usual numbering:
// 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx revenue, 5xxx-6xxx
// expenses.
var standardChart = []chartAccount{
	// Assets
	{"1010", "Cash", domain.Assets, "Current Assets"},
	{"1020", "Checking Account", domain.Assets, "Current Assets"},
	{"1030", "Savings Account", domain.Assets, "Current Assets"},
	{"1100", "Accounts Receivable", domain.Assets, "Current Assets"},
	{"1200", "Inventory", domain.Assets, "Current Assets"},
	{"1300", "Prepaid Expenses", domain.Assets, "Current Assets"},
	{"1400", "Prepaid Insurance", domain.Assets, "Current Assets"},
	{"1500", "Office Equipment", domain.Assets, "Fixed Assets"},
	{"1510", "Computer Equipment", domain.Assets, "Fixed Assets"},
	{"1520", "Furniture and Fixtures", domain.Assets, "Fixed Assets"},
	{"1600", "Vehicles", domain.Assets, "Fixed Assets"},
	{"1700", "Accumulated Depreciation", domain.Assets, "Fixed Assets"},

	// Liabilities
	{"2010", "Accounts Payable", domain.Liabilities, "Current Liabilities"},
	{"2100", "Credit Card Payable", domain.Liabilities, "Current Liabilities"},
	{"2200", "Payroll Liabilities", domain.Liabilities, "Current Liabilities"},
	{"2210", "Payroll Taxes Payable", domain.Liabilities, "Current Liabilities"},
	{"2300", "Sales Tax Payable", domain.Liabilities, "Current Liabilities"},
	{"2400", "Unearned Revenue", domain.Liabilities, "Current Liabilities"},
	{"2500", "Line of Credit", domain.Liabilities, "Current Liabilities"},
	{"2600", "Notes Payable", domain.Liabilities, "Long-Term Liabilities"},
	{"2700", "Long-Term Debt", domain.Liabilities, "Long-Term Liabilities"},
	{"2800", "Income Tax Payable", domain.Liabilities, "Current Liabilities"},

	// Equity
	{"3010", "Owner's Capital", domain.Equity, ""},
	{"3020", "Owner's Draws", domain.Equity, ""},
	{"3100", "Common Stock", domain.Equity, ""},
	{"3200", "Retained Earnings", domain.Equity, ""},
	{"3300", "Additional Paid-In Capital", domain.Equity, ""},
	{"3900", "Opening Balance Equity", domain.Equity, ""},

	// Revenue
	{"4010", "Sales Revenue", domain.Revenue, "Operating Revenue"},
	{"4020", "Service Revenue", domain.Revenue, "Operating Revenue"},
	{"4100", "Consulting Revenue", domain.Revenue, "Operating Revenue"},
	{"4200", "Shipping Income", domain.Revenue, "Other Income"},
	{"4300", "Interest Income", domain.Revenue, "Other Income"},
	{"4400", "Discounts Given", domain.Revenue, "Operating Revenue"},
	{"4900", "Other Income", domain.Revenue, "Other Income"},

	// Expenses
	{"5010", "Cost of Goods Sold", domain.Expenses, "Cost of Sales"},
	{"5100", "Purchases", domain.Expenses, "Cost of Sales"},
	{"5200", "Freight In", domain.Expenses, "Cost of Sales"},
	{"6010", "Advertising and Marketing", domain.Expenses, "Operating Expenses"},
	{"6020", "Bank Fees", domain.Expenses, "Operating Expenses"},
	{"6030", "Depreciation Expense", domain.Expenses, "Operating Expenses"},
	{"6040", "Dues and Subscriptions", domain.Expenses, "Operating Expenses"},
	{"6050", "Insurance Expense", domain.Expenses, "Operating Expenses"},
	{"6060", "Interest Expense", domain.Expenses, "Operating Expenses"},
	{"6100", "Rent Expense", domain.Expenses, "Operating Expenses"},
	{"6110", "Repairs and Maintenance", domain.Expenses, "Operating Expenses"},
	{"6120", "Office Supplies", domain.Expenses, "Operating Expenses"},
	{"6130", "Software Expense", domain.Expenses, "Operating Expenses"},
	{"6200", "Salaries and Wages", domain.Expenses, "Operating Expenses"},
	{"6210", "Payroll Tax Expense", domain.Expenses, "Operating Expenses"},
	{"6220", "Employee Benefits", domain.Expenses, "Operating Expenses"},
	{"6300", "Professional Fees", domain.Expenses, "Operating Expenses"},
	{"6310", "Travel Expense", domain.Expenses, "Operating Expenses"},
	{"6320", "Meals and Entertainment", domain.Expenses, "Operating Expenses"},
	{"6400", "Utilities", domain.Expenses, "Operating Expenses"},
}
