package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"taskboard/pkg/sentinel"
)

// translate maps postgres constraint violations onto the domain sentinels so
// callers never see driver error codes.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return sentinel.ErrDuplicate
		case "23503": // foreign_key_violation
			return sentinel.ErrResourceInUse
		}
	}
	return err
}

// translateRef is translate for insert/update paths, where a foreign key
// violation means the referenced row vanished rather than "in use".
func translateRef(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return sentinel.ErrDuplicate
		case "23503":
			return sentinel.ErrReferenceNotFound
		}
	}
	return err
}
