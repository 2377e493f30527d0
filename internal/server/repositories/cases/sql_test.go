package cases

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/dbx"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewSQLRepository(db, dbx.Postgres), mock, db
}

var caseColumns = []string{"case_id", "user_email", "ts", "image_preview_url", "image_key", "flagged", "prediction"}

func TestUpsert_Postgres(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+cases.*VALUES\s*\(\(SELECT\s+COALESCE\(MAX\(seq\),\s*0\)\s*\+\s*1\s+FROM\s+cases\),\s*\$1,.*\$7\)\s*ON\s+CONFLICT\s*\(case_id\)\s*DO\s+UPDATE`
	mock.ExpectExec(q).
		WithArgs("c-1", "a@x.com", sqlmock.AnyArg(), "", "", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Upsert(context.Background(), newCase("c-1", nil)); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO cases`).WillReturnError(errors.New("db down"))

	err := repo.Upsert(context.Background(), newCase("c-1", nil))
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestList_OrdersByTimestampThenSeq(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)FROM\s+cases\s+ORDER\s+BY\s+ts\s+IS\s+NULL,\s*ts\s+DESC,\s*seq\s+DESC$`
	rows := sqlmock.NewRows(caseColumns).
		AddRow("c-2", "a@x.com", int64(1700000000000), "", "k", true, []byte(`{"doctor_dashboard":{"priority_flag":"high"}}`)).
		AddRow("c-1", "a@x.com", nil, "data:x", "", false, []byte(`{}`))
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "c-2" || got[1].ID() != "c-1" {
		t.Fatalf("unexpected cases: %+v", got)
	}
	if got[0].DoctorDashboard.PriorityFlag != models.PriorityHigh || !got[0].IsManuallyFlagged || got[0].ImageKey != "k" {
		t.Fatalf("unexpected first case: %+v", got[0])
	}
	if got[1].Timestamp != nil {
		t.Fatalf("expected nil timestamp, got %v", got[1].Timestamp)
	}
}

func TestList_BadPrediction(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(caseColumns).AddRow("c-1", "", nil, "", "", false, []byte(`not json`))
	mock.ExpectQuery(`FROM cases`).WillReturnRows(rows)

	if _, err := repo.List(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+cases\s+WHERE\s+case_id\s*=\s*\$1`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrCaseNotFound) {
		t.Fatalf("want ErrCaseNotFound, got %v", err)
	}
}

func TestUpdate_Absent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+cases\s+SET.*WHERE\s+case_id\s*=\s*\$7$`).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Update(context.Background(), newCase("ghost", nil))
	if err != nil || ok {
		t.Fatalf("want (false, nil), got (%v, %v)", ok, err)
	}
}
