package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return ""
}

// IsDuplicate reports a unique key violation, e.g. a second contractor for one chat user.
func IsDuplicate(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// IsForeignKey reports a reference to a missing row, e.g. an order assigned to
// a contractor that was removed meanwhile.
func IsForeignKey(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// IsNotFound reports an empty single-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
