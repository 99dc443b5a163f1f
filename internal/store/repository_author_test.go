package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-mini-blog/internal/logger"
	"github.com/MKhiriev/go-mini-blog/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return NewDB(conn, PostgresDialect, logger.Nop()), mock
}

func newTestAuthorRepo(t *testing.T) (AuthorRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewAuthorRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateAuthor_Success(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("INSERT INTO author").
		WithArgs("alice", "secret123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateAuthor(context.Background(), models.Author{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if created.Username != "alice" {
		t.Errorf("expected username alice, got %s", created.Username)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateAuthor_UniqueViolation(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("INSERT INTO author").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAuthor(context.Background(), models.Author{Username: "alice", Password: "secret123"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateAuthor_CheckViolation(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("INSERT INTO author").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateAuthor(context.Background(), models.Author{Username: "alice", Password: "short"})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

func TestCreateAuthor_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("INSERT INTO author").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAuthor(context.Background(), models.Author{Username: "alice", Password: "secret123"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindAuthorByUsername_Found(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT id, username, password FROM author WHERE username = \\$1").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).AddRow(3, "alice", "secret123"))

	author, err := repo.FindAuthorByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if author.ID != 3 || author.Password != "secret123" {
		t.Errorf("unexpected author %+v", author)
	}
}

func TestFindAuthorByUsername_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT id, username, password FROM author").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAuthorByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestGetAuthorByID_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT id, username, password FROM author WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	_, err := repo.GetAuthorByID(context.Background(), 42)
	if !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestUpdateAuthor_Success(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec("UPDATE author SET username = \\$1, password = \\$2 WHERE id = \\$3").
		WithArgs("alice", "newsecret1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateAuthor(context.Background(), models.Author{ID: 3, Username: "alice", Password: "newsecret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Password != "newsecret1" {
		t.Errorf("expected updated password, got %s", updated.Password)
	}
}

func TestUpdateAuthor_NoRows(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec("UPDATE author").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateAuthor(context.Background(), models.Author{ID: 3, Username: "alice", Password: "newsecret1"})
	if !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("expected ErrAuthorNotFound, got %v", err)
	}
}

func TestUpdateAuthor_UsernameTaken(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectExec("UPDATE author").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateAuthor(context.Background(), models.Author{ID: 3, Username: "bob", Password: "newsecret1"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}
