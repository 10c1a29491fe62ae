package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"username", "email", "password_hash", "token", "created_at"}
}

func TestUserSQLite_Create(t *testing.T) {
	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectQuery(regexp.QuoteMeta(countUserByEmailSQL)).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("alice", "alice@example.com", "h123", "tok-a", created).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "duplicate username",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: ErrUsernameExists,
		},
		{
			name: "duplicate email",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(countUserByUsernameSQL)).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				m.ExpectQuery(regexp.QuoteMeta(countUserByEmailSQL)).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()
			tt.mockExpect(mock)

			u := testUser("alice", "alice@example.com", "tok-a")
			u.PasswordHash = "h123"
			u.CreatedAt = created
			err := repo.Create(context.Background(), u)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err=%v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("create: %v", err)
			}
		})
	}
}

func TestUserSQLite_GetByUsername(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByUsernameSQL)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("alice", "alice@example.com", "h123", "tok-a", created))

	u, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u == nil || u.Email != "alice@example.com" || u.Token != "tok-a" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserSQLite_GetByTokenNotFound(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByTokenSQL)).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByToken(context.Background(), "nope")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil), got %+v, %v", u, err)
	}
}

func TestUserSQLite_UpdateToken(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateUserTokenSQL)).
		WithArgs("tok-new", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateToken(context.Background(), "alice", "tok-new"); err != nil {
		t.Fatalf("update token: %v", err)
	}
}

func TestUserSQLite_UpdateTokenUnknownUser(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateUserTokenSQL)).
		WithArgs("tok-new", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateToken(context.Background(), "ghost", "tok-new"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
