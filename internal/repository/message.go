package repository

import (
	"context"
	"database/sql"

	"github.com/dsntech/dsnpass-go/internal/model"
)

// MessageRepository stores chat transcripts.
type MessageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append stores msgs in order within one transaction.
func (r *MessageRepository) Append(ctx context.Context, msgs ...model.ChatMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chat_messages (id, user_id, role, text, is_error, created_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err := stmt.ExecContext(ctx, m.ID, m.UserID, m.Role, m.Text, m.IsError, m.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListByUser returns the newest limit messages of a user's transcript, oldest first.
func (r *MessageRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error) {
	query := `SELECT id, user_id, role, text, is_error, created_at FROM (
			SELECT id, user_id, role, text, is_error, created_at, seq FROM chat_messages
			WHERE user_id = ? ORDER BY seq DESC LIMIT ?
		) recent ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Text, &m.IsError, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// DeleteByUser removes a user's transcript and reports how many messages were deleted.
func (r *MessageRepository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
