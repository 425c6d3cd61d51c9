package dto

import (
	"time"

	"github.com/bizledger/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryDateFormat is the wire format for entry dates.
const EntryDateFormat = "2006-01-02"

// CreateEntryLineRequest is one debit/credit line of a new entry.
type CreateEntryLineRequest struct {
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateEntryRequest defines the payload for creating a journal entry.
// Semantic preconditions (date/description present, lines non-empty,
// balance) are checked by the ledger service, which reports every violated
// condition together rather than failing on the first.
type CreateEntryRequest struct {
	EntryDate       string                   `json:"entryDate"`
	Description     string                   `json:"description"`
	ReferenceNumber string                   `json:"referenceNumber"`
	CreatedBy       string                   `json:"createdBy"`
	Lines           []CreateEntryLineRequest `json:"lines"`
}

// EntryLineResponse defines the data returned for a journal line, enriched
// with its account's code and name.
type EntryLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EntryResponse defines the data returned for a journal entry header,
// optionally with its lines attached.
type EntryResponse struct {
	EntryID         string              `json:"entryID"`
	EntryDate       string              `json:"entryDate"`
	Description     string              `json:"description"`
	ReferenceNumber string              `json:"referenceNumber,omitempty"`
	CreatedBy       string              `json:"createdBy,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
	Lines           []EntryLineResponse `json:"lines,omitempty"`
}

// ListEntriesResponse wraps the list of entry headers.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ListEntryLinesResponse wraps the lines of one entry.
type ListEntryLinesResponse struct {
	Lines []EntryLineResponse `json:"lines"`
}

// ValidationErrorResponse is the 400 payload listing every violated
// precondition of a rejected entry.
type ValidationErrorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations"`
}

// ToEntryLineResponse converts a domain.JournalLine to an EntryLineResponse
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		AccountCode: line.AccountCode,
		AccountName: line.AccountName,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
		CreatedAt:   line.CreatedAt,
	}
}

// ToEntryLineResponses converts domain lines to line response DTOs
func ToEntryLineResponses(lines []domain.JournalLine) []EntryLineResponse {
	responses := make([]EntryLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToEntryLineResponse(&line)
	}
	return responses
}

// ToEntryResponse converts a domain.JournalEntry to an EntryResponse
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:         e.EntryID,
		EntryDate:       e.EntryDate.Format(EntryDateFormat),
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		LastUpdatedAt:   e.LastUpdatedAt,
	}
	if len(e.Lines) > 0 {
		resp.Lines = ToEntryLineResponses(e.Lines)
	}
	return resp
}

// ToListEntriesResponse converts domain entries to the list response DTO
func ToListEntriesResponse(entries []domain.JournalEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return ListEntriesResponse{Entries: res}
}
