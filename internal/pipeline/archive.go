package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/site-assist/internal/db"
)

// Archive writes completed turns to SQLite so transcripts survive
// process restarts. The in-memory session table stays authoritative for
// live turns; the archive is write-only from the pipeline's view.
type Archive struct {
	db *db.DB
}

// NewArchive creates a transcript archive.
func NewArchive(database *db.DB) *Archive {
	return &Archive{db: database}
}

// SaveTurn records one user/assistant exchange. The session row is
// created on first use.
func (a *Archive) SaveTurn(ctx context.Context, sessionID, language, userText, assistantText, intentName string, confidence float64) error {
	now := time.Now().UTC()

	_, err := a.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, language, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
		sessionID, language, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting archive session: %w", err)
	}

	_, err = a.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, intent, confidence, created_at)
		 VALUES (?, ?, 'user', ?, ?, 0, ?)`,
		uuid.New().String(), sessionID, userText, intentName, now,
	)
	if err != nil {
		return fmt.Errorf("archiving user message: %w", err)
	}

	_, err = a.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, role, content, intent, confidence, created_at)
		 VALUES (?, ?, 'assistant', ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, assistantText, intentName, confidence, now,
	)
	if err != nil {
		return fmt.Errorf("archiving assistant message: %w", err)
	}
	return nil
}

// Transcript returns the archived messages of one session, oldest first.
func (a *Archive) Transcript(ctx context.Context, sessionID string) ([]ArchivedMessage, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, role, content, intent, confidence, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, role DESC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	var messages []ArchivedMessage
	for rows.Next() {
		var m ArchivedMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Content, &m.Intent, &m.Confidence, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning archived message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// ArchivedMessage is one persisted transcript row.
type ArchivedMessage struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Intent     string    `json:"intent,omitempty"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}
