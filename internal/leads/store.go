package leads

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/site-assist/internal/db"
)

// Store persists leads in SQLite. One lead row per session; later
// extractions merge into the existing row without blanking known fields.
type Store struct {
	db *db.DB
}

// NewStore creates a lead store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Save merges a lead into the session's record and returns the stored
// row. Empty extractions are ignored.
func (s *Store) Save(ctx context.Context, lead Lead) (*Lead, error) {
	if lead.Empty() {
		return nil, nil
	}

	existing, err := s.BySession(ctx, lead.SessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	if existing == nil {
		lead.ID = uuid.New().String()
		lead.CreatedAt = now
		lead.UpdatedAt = now
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO leads (id, session_id, name, email, phone, company, language, source_text, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lead.ID, lead.SessionID, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Language, lead.SourceText, lead.CreatedAt, lead.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting lead: %w", err)
		}
		return &lead, nil
	}

	merged := *existing
	if lead.Name != "" {
		merged.Name = lead.Name
	}
	if lead.Email != "" {
		merged.Email = lead.Email
	}
	if lead.Phone != "" {
		merged.Phone = lead.Phone
	}
	if lead.Company != "" {
		merged.Company = lead.Company
	}
	merged.SourceText = lead.SourceText
	merged.UpdatedAt = now

	_, err = s.db.ExecContext(ctx,
		`UPDATE leads SET name = ?, email = ?, phone = ?, company = ?, source_text = ?, updated_at = ? WHERE id = ?`,
		merged.Name, merged.Email, merged.Phone, merged.Company, merged.SourceText, merged.UpdatedAt, merged.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating lead: %w", err)
	}
	return &merged, nil
}

// BySession returns the session's lead, or nil when none exists.
func (s *Store) BySession(ctx context.Context, sessionID string) (*Lead, error) {
	var l Lead
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, name, email, phone, company, language, source_text, created_at, updated_at
		 FROM leads WHERE session_id = ?`, sessionID,
	).Scan(&l.ID, &l.SessionID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Language, &l.SourceText, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting lead by session: %w", err)
	}
	return &l, nil
}

// Get returns a lead by id, or nil when none exists.
func (s *Store) Get(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	err := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, name, email, phone, company, language, source_text, created_at, updated_at
		 FROM leads WHERE id = ?`, id,
	).Scan(&l.ID, &l.SessionID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Language, &l.SourceText, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting lead: %w", err)
	}
	return &l, nil
}

// List returns the most recently updated leads.
func (s *Store) List(ctx context.Context, limit int) ([]Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, name, email, phone, company, language, source_text, created_at, updated_at
		 FROM leads ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.SessionID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Language, &l.SourceText, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
