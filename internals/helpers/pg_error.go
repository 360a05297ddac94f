// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError translates constraint violations from pgx or lib/pq into HTTP status + message.
func MapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapSQLState(pgxErr.Code, pgxErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapSQLState(string(pqErr.Code), pqErr.Message)
	}
	return http.StatusInternalServerError, err.Error()
}

func mapSQLState(code, message string) (int, string) {
	switch code {
	case "23503":
		return http.StatusBadRequest, "Referenced object does not exist (FK violation)."
	case "23505":
		return http.StatusConflict, "Duplicate data (unique violation)."
	case "23514":
		return http.StatusBadRequest, "Value rejected by a check constraint."
	default:
		return http.StatusInternalServerError, message
	}
}
