package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/dbx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// SQLRepository implements Repository on SQLite or PostgreSQL.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, d dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: d}
}

const columns = `email, name, role, license_number, date_of_birth, password_hash, reset_code, reset_code_expiry, created_at`

func (r *SQLRepository) q(query string) string { return dbx.Rebind(r.dialect, query) }

func (r *SQLRepository) Create(ctx context.Context, u *models.User) error {
	query :=
		`INSERT INTO accounts (` + columns + `)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (email) DO NOTHING`

	res, err := r.db.ExecContext(ctx, r.q(query),
		u.Email, u.Name, string(u.Role), u.LicenseNumber, u.DateOfBirth,
		u.PasswordHash, u.ResetCode, dbx.Millis(u.ResetCodeExpiry), u.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrDuplicateAccount
	}
	return nil
}

func (r *SQLRepository) Get(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + columns + ` FROM accounts WHERE email = ?`

	u, err := scanUser(r.db.QueryRowContext(ctx, r.q(query), email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLRepository) Update(ctx context.Context, originalEmail string, u *models.User) error {
	if u.Email != originalEmail {
		var one int
		err := r.db.QueryRowContext(ctx, r.q(`SELECT 1 FROM accounts WHERE email = ?`), u.Email).Scan(&one)
		switch {
		case err == nil:
			return common.ErrEmailTaken
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("db error: %w", err)
		}
	}

	query :=
		`UPDATE accounts
		 SET email = ?, name = ?, role = ?, license_number = ?, date_of_birth = ?,
		     password_hash = ?, reset_code = ?, reset_code_expiry = ?
		 WHERE email = ?`

	res, err := r.db.ExecContext(ctx, r.q(query),
		u.Email, u.Name, string(u.Role), u.LicenseNumber, u.DateOfBirth,
		u.PasswordHash, u.ResetCode, dbx.Millis(u.ResetCodeExpiry), originalEmail)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrAccountNotFound
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + columns + ` FROM accounts ORDER BY created_at, email`

	rows, err := r.db.QueryContext(ctx, r.q(query))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u       models.User
		role    string
		expiry  sql.NullInt64
		created int64
	)
	if err := s.Scan(&u.Email, &u.Name, &role, &u.LicenseNumber, &u.DateOfBirth,
		&u.PasswordHash, &u.ResetCode, &expiry, &created); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	u.ResetCodeExpiry = dbx.FromMillis(expiry)
	u.CreatedAt = *dbx.FromMillis(sql.NullInt64{Int64: created, Valid: true})
	return &u, nil
}
