package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mplarena/registration_service/internal/domain"
)

// DuplicateKey maps a postgres unique violation onto the registration key
// whose constraint fired. Returns "" when err is not a unique violation,
// so callers never have to string-match driver messages.
func DuplicateKey(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	if pgErr.Code != "23505" {
		return ""
	}
	switch pgErr.ConstraintName {
	case domain.UidxPlayersVoterID:
		return "voter_id"
	case domain.UidxPlayersAadhaar:
		return "aadhaar_number"
	case domain.UidxPlayersTxnID:
		return "txn_id"
	}
	return ""
}
