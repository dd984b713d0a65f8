package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAddToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO auth_tokens").
		WithArgs("user-1", "auth", "signed-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddToken(ctx, "user-1", "auth", "signed-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddToken_ExecError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO auth_tokens").
		WillReturnError(errors.New("db gone away"))

	err := repo.AddToken(ctx, "user-1", "auth", "signed-token")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestHasToken_Present(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-1", "auth", "signed-token").
		WillReturnRows(rows)

	exists, err := repo.HasToken(ctx, "user-1", "auth", "signed-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected token to be present")
	}
}

func TestHasToken_Revoked(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-1", "auth", "revoked-token").
		WillReturnRows(rows)

	exists, err := repo.HasToken(ctx, "user-1", "auth", "revoked-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected revoked token to be absent")
	}
}

func TestHasToken_QueryError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnError(errors.New("db gone away"))

	_, err := repo.HasToken(ctx, "user-1", "auth", "signed-token")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteToken_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_tokens").
		WithArgs("user-1", "signed-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteToken(ctx, "user-1", "signed-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteToken_AbsentTokenIsNotAnError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	// zero affected rows: repeated logout
	mock.ExpectExec("DELETE FROM auth_tokens").
		WithArgs("user-1", "already-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteToken(ctx, "user-1", "already-gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteExpiredTokens_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM auth_tokens").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredTokens(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 removed rows, got %d", removed)
	}
}

func TestDeleteExpiredTokens_NothingToRemove(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM auth_tokens").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteExpiredTokens(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed rows, got %d", removed)
	}
}

func TestDeleteExpiredTokens_ExecError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_tokens").
		WillReturnError(errors.New("db gone away"))

	_, err := repo.DeleteExpiredTokens(ctx, time.Now())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeleteToken_ExecError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM auth_tokens").
		WillReturnError(errors.New("db gone away"))

	err := repo.DeleteToken(ctx, "user-1", "signed-token")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
