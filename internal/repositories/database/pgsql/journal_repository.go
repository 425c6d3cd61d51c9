package pgsql

import (
	"context"
	"errors"

	"github.com/bizledger/backoffice/internal/apperrors"
	"github.com/bizledger/backoffice/internal/core/domain"
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	"github.com/bizledger/backoffice/internal/models"
	"github.com/bizledger/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry persists the entry header and every line as a single atomic
// unit: begin, insert header, batch-insert lines, commit. Any line failure
// (e.g. a line referencing a non-existent account) rolls the whole
// transaction back and leaves storage unchanged.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction commits.
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournalEntry(entry)
	headerQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, description, reference_number, created_by, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.ReferenceNumber,
		m.CreatedBy,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return classify(err, "failed to insert journal entry "+m.EntryID)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (line_id, entry_id, account_id, position, debit, credit, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for i, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.EntryID,
			ml.AccountID,
			i, // insertion order, authoritative for reads
			ml.Debit,
			ml.Credit,
			ml.Description,
			ml.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return apperrors.NewNotFoundError("a line references a non-existent account")
		}
		return classify(err, "failed to insert lines for entry "+m.EntryID)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves an entry header by its id.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, description, reference_number, created_by, created_at, last_updated_at
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceNumber,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry " + entryID + " not found")
		}
		return nil, classify(err, "failed to find journal entry "+entryID)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// ListEntries returns entry headers, most recent first: entry date
// descending, then insertion order (seq) descending as tie-break.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, description, reference_number, created_by, created_at, last_updated_at
		FROM journal_entries
		ORDER BY entry_date DESC, seq DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, classify(err, "failed to query journal entries")
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.Description,
			&m.ReferenceNumber,
			&m.CreatedBy,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, classify(err, "failed to scan journal entry row")
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "error iterating journal entry rows")
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// FindLinesByEntryID retrieves all lines for one entry in insertion order,
// each enriched with its account's code and name.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.account_id, a.code, a.name, l.debit, l.credit, l.description, l.created_at
		FROM journal_entry_lines l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = $1
		ORDER BY l.position ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, classify(err, "failed to query lines for entry "+entryID)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountID,
			&m.AccountCode,
			&m.AccountName,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, classify(err, "failed to scan line row for entry "+entryID)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "error iterating line rows for entry "+entryID)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}
