package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsExclusionConflict detecta violação da constraint de exclusão de
// sobreposição (SQLSTATE 23P01) do Postgres — o backstop de conflito
// na camada de armazenamento.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
