package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/common"
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

func (r *SQLRepository) Create(ctx context.Context, s *models.Session) error {
	query :=
		`INSERT INTO sessions (id, email, role, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		s.ID, s.Email, string(s.Role), s.ExpiresAt.UnixMilli(), s.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *SQLRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	query := `SELECT id, email, role, expires_at, created_at FROM sessions WHERE id = ?`

	var (
		s                  models.Session
		role               string
		expires, createdAt int64
	)
	err := r.db.QueryRowContext(ctx, dbx.Rebind(r.dialect, query), id).
		Scan(&s.ID, &s.Email, &role, &expires, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	s.Role = models.Role(role)
	s.ExpiresAt = time.UnixMilli(expires).UTC()
	s.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &s, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query), id); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
