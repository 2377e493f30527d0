package cases

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/dbx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// SQLRepository implements Repository on SQLite or PostgreSQL. Dashboards
// are kept as a JSON document; the columns used for ordering and lookup are
// stored separately.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

const columns = `case_id, user_email, ts, image_preview_url, image_key, flagged, prediction`

func (r *SQLRepository) q(query string) string { return dbx.Rebind(r.dialect, query) }

func (r *SQLRepository) Upsert(ctx context.Context, c *models.Case) error {
	prediction, err := json.Marshal(c.Prediction)
	if err != nil {
		return fmt.Errorf("encode prediction: %w", err)
	}

	query :=
		`INSERT INTO cases (seq, ` + columns + `)
		 VALUES ((SELECT COALESCE(MAX(seq), 0) + 1 FROM cases), ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (case_id) DO UPDATE SET
		     seq = excluded.seq,
		     user_email = excluded.user_email,
		     ts = excluded.ts,
		     image_preview_url = excluded.image_preview_url,
		     image_key = excluded.image_key,
		     flagged = excluded.flagged,
		     prediction = excluded.prediction`

	if _, err := r.db.ExecContext(ctx, r.q(query),
		c.ID(), c.UserEmail, dbx.Millis(c.Timestamp), c.ImagePreviewURL, c.ImageKey,
		c.IsManuallyFlagged, string(prediction)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLRepository) Update(ctx context.Context, c *models.Case) (bool, error) {
	prediction, err := json.Marshal(c.Prediction)
	if err != nil {
		return false, fmt.Errorf("encode prediction: %w", err)
	}

	query :=
		`UPDATE cases
		 SET user_email = ?, ts = ?, image_preview_url = ?, image_key = ?, flagged = ?, prediction = ?
		 WHERE case_id = ?`

	res, err := r.db.ExecContext(ctx, r.q(query),
		c.UserEmail, dbx.Millis(c.Timestamp), c.ImagePreviewURL, c.ImageKey,
		c.IsManuallyFlagged, string(prediction), c.ID())
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *SQLRepository) Get(ctx context.Context, id string) (*models.Case, error) {
	query := `SELECT ` + columns + ` FROM cases WHERE case_id = ?`

	c, err := scanCase(r.db.QueryRowContext(ctx, r.q(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrCaseNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Case, error) {
	query := `SELECT ` + columns + ` FROM cases ORDER BY ts IS NULL, ts DESC, seq DESC`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCase(s scanner) (*models.Case, error) {
	var (
		c          models.Case
		id         string
		ts         sql.NullInt64
		prediction []byte
	)
	if err := s.Scan(&id, &c.UserEmail, &ts, &c.ImagePreviewURL, &c.ImageKey,
		&c.IsManuallyFlagged, &prediction); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(prediction, &c.Prediction); err != nil {
		return nil, fmt.Errorf("decode prediction: %w", err)
	}
	c.DoctorDashboard.CaseID = id
	c.Timestamp = dbx.FromMillis(ts)
	return &c, nil
}
