package mapping

import (
	"github.com/bizledger/backoffice/internal/core/domain"
	"github.com/bizledger/backoffice/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	m := models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.ReferenceNumber != "" {
		ref := d.ReferenceNumber
		m.ReferenceNumber = &ref
	}
	if d.CreatedBy != "" {
		by := d.CreatedBy
		m.CreatedBy = &by
	}
	return m
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.ReferenceNumber != nil {
		d.ReferenceNumber = *m.ReferenceNumber
	}
	if m.CreatedBy != nil {
		d.CreatedBy = *m.CreatedBy
	}
	return d
}

// ToDomainJournalEntrySlice converts model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	m := models.JournalLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		AccountID: d.AccountID,
		Debit:     d.Debit,
		Credit:    d.Credit,
		CreatedAt: d.CreatedAt,
	}
	if d.Description != "" {
		desc := d.Description
		m.Description = &desc
	}
	return m
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	d := domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Debit:       m.Debit,
		Credit:      m.Credit,
		CreatedAt:   m.CreatedAt,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainJournalLineSlice converts model lines to domain lines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
