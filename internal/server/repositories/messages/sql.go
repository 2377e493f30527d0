package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/dbx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

func (r *SQLRepository) Append(ctx context.Context, caseID string, m models.Message) error {
	query := `INSERT INTO messages (case_id, sender, text, ts) VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		caseID, string(m.Sender), m.Text, m.Timestamp.UnixMilli()); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context, caseID string) ([]models.Message, error) {
	query := `SELECT sender, text, ts FROM messages WHERE case_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query), caseID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Message{}
	for rows.Next() {
		var (
			m      models.Message
			sender string
			ts     int64
		)
		if err := rows.Scan(&sender, &m.Text, &ts); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.Sender = models.Role(sender)
		m.Timestamp = time.UnixMilli(ts).UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
