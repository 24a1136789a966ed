package seed

import (
	"net/http"

	"pokedex/services"
	"pokedex/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves the seed endpoint
type Handler struct {
	seed *services.SeedService
	log  logrus.FieldLogger
}

func NewHandler(seed *services.SeedService, log logrus.FieldLogger) *Handler {
	return &Handler{seed: seed, log: log}
}

// ExecuteSeed replaces the catalog with the PokeAPI listing
// @Summary Seed the catalog
// @Description Delete every Pokemon and import the first SEED_LIMIT entries of the PokeAPI
// @Tags Seed
// @Produce json
// @Success 200 {array} models.Pokemon
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /seed [get]
func (h *Handler) ExecuteSeed(c *gin.Context) {
	saved, err := h.seed.ExecuteSeed(c.Request.Context())
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}
