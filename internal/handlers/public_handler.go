package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/domain/appointment"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httperr"
	"github.com/karlwennerstrom/paltattoo-2025-sub000/internal/httpresp"
	usecase "github.com/karlwennerstrom/paltattoo-2025-sub000/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER (rotas públicas, sem autenticação)
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *usecase.GetAvailability
}

func NewPublicHandler(repo domain.Repository) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: usecase.NewGetAvailability(repo),
	}
}

////////////////////////////////////////////////////////
// GET /public/:slug/availability?date=&duration=
////////////////////////////////////////////////////////

// Availability expõe os slots livres do artista pelo slug do perfil.
// Usado pela página pública de agendamento: o cliente escolhe o
// horário antes de qualquer login.
func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	duration, err := strconv.ParseFloat(c.DefaultQuery("duration", "1"), 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	out, err := h.availability.ExecuteBySlug(c.Request.Context(), slug, dateStr, duration)
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// GET /public/:slug/profile
////////////////////////////////////////////////////////

// Profile devolve os dados públicos do artista: nome, endereço do
// estúdio e antecedência mínima exigida para novos agendamentos.
func (h *PublicHandler) Profile(c *gin.Context) {
	artist, err := h.repo.GetArtistBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.Domain(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"name":                artist.Name,
		"slug":                artist.Slug,
		"studio_address":      artist.StudioAddress,
		"min_advance_minutes": artist.MinAdvanceMinutes,
	})
}
