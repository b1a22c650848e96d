package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
)

// Domain traduz os erros tipados do motor de agenda para a resposta
// HTTP. Um único ponto de mapeamento: handlers nunca inspecionam
// tipos de erro diretamente.
func Domain(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		BadRequest(c, "validation_error", vErr.Error())
		return
	}

	var sErr *domain.SlotUnavailableError
	if errors.As(err, &sErr) {
		Conflict(c, "slot_unavailable", sErr.Error())
		return
	}

	var tErr *domain.InvalidTransitionError
	if errors.As(err, &tErr) {
		Unprocessable(c, "invalid_transition", tErr.Error())
		return
	}

	var nErr *domain.NotFoundError
	if errors.As(err, &nErr) {
		NotFound(c, "not_found", nErr.Error())
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
