package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/simcard_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type errKind int

const (
	errOther errKind = iota
	errUnique
	errCheck
	errForeignKey
	errNotNull
	errNoTable
)

// classify maps SQLite result codes and PostgreSQL SQLSTATEs onto a common kind.
func classify(err error) errKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return errUnique
		case "23514":
			return errCheck
		case "23503":
			return errForeignKey
		case "23502":
			return errNotNull
		case "42P01":
			return errNoTable
		}
		return errOther
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errUnique
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return errCheck
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return errForeignKey
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return errNotNull
		}
	}

	// Primary result codes carry no constraint detail; fall back to the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return errUnique
	case strings.Contains(msg, "CHECK constraint failed"):
		return errCheck
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return errForeignKey
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return errNotNull
	case strings.Contains(msg, "no such table"):
		return errNoTable
	}
	return errOther
}

// translate wraps a driver error with the matching application sentinel.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to %s: %w", op, apperrors.ErrNotFound)
	}
	var sentinel error
	switch classify(err) {
	case errUnique:
		sentinel = apperrors.ErrDuplicate
	case errCheck, errNotNull:
		sentinel = apperrors.ErrValidation
	case errForeignKey:
		sentinel = apperrors.ErrNotFound
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return fmt.Errorf("failed to %s: %w: %v", op, sentinel, err)
}

func isNoTable(err error) bool {
	return err != nil && classify(err) == errNoTable
}
