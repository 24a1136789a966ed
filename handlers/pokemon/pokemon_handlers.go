package pokemon

import (
	"net/http"

	"pokedex/services"
	"pokedex/utils/response"

	"github.com/gin-gonic/gin"
)

// Create creates a new pokemon
// @Summary Create a Pokemon
// @Description Create a Pokemon, name and no must be unique
// @Tags Pokemon
// @Accept json
// @Produce json
// @Param pokemon body CreatePokemonRequest true "Pokemon"
// @Success 201 {object} models.Pokemon
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /pokemon [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := bindingErrors(err); ok {
			response.ValidationError(c, fields)
			return
		}
		response.Error(c, http.StatusBadRequest, ErrInvalidRequestBody+": "+err.Error())
		return
	}

	pokemon, err := h.pokemons.Create(c.Request.Context(), services.CreatePokemonInput{
		Name: req.Name,
		No:   req.No,
	})
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, pokemon)
}

// FindAll lists pokemons ordered by number
// @Summary List Pokemons
// @Description Get a page of Pokemons ordered by no
// @Tags Pokemon
// @Produce json
// @Param limit query int false "Page size, defaults to DEFAULT_LIMIT"
// @Param offset query int false "Number of entries to skip"
// @Success 200 {array} models.Pokemon
// @Failure 400 {object} map[string]string
// @Router /pokemon [get]
func (h *Handler) FindAll(c *gin.Context) {
	var query PaginationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		if fields, ok := bindingErrors(err); ok {
			response.ValidationError(c, fields)
			return
		}
		response.Error(c, http.StatusBadRequest, ErrInvalidQuery+": "+err.Error())
		return
	}

	page := services.Pagination{Offset: query.Offset}
	if query.Limit != nil {
		page.Limit = *query.Limit
	}

	pokemons, err := h.pokemons.FindAll(c.Request.Context(), page)
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pokemons)
}

// FindOne gets a pokemon by no, id or name
// @Summary Get a Pokemon
// @Description Look a Pokemon up by its no, its id or its name
// @Tags Pokemon
// @Produce json
// @Param term path string true "No, id or name"
// @Success 200 {object} models.Pokemon
// @Failure 404 {object} map[string]string
// @Router /pokemon/{term} [get]
func (h *Handler) FindOne(c *gin.Context) {
	pokemon, err := h.pokemons.FindOne(c.Request.Context(), c.Param("term"))
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pokemon)
}

// Update changes the supplied fields of a pokemon
// @Summary Update a Pokemon
// @Description Update the name and/or the no of a Pokemon found by no, id or name
// @Tags Pokemon
// @Accept json
// @Produce json
// @Param term path string true "No, id or name"
// @Param pokemon body UpdatePokemonRequest true "Fields to update"
// @Success 200 {object} models.Pokemon
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pokemon/{term} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := bindingErrors(err); ok {
			response.ValidationError(c, fields)
			return
		}
		response.Error(c, http.StatusBadRequest, ErrInvalidRequestBody+": "+err.Error())
		return
	}

	pokemon, err := h.pokemons.Update(c.Request.Context(), c.Param("term"), services.UpdatePokemonInput{
		Name: req.Name,
		No:   req.No,
	})
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, pokemon)
}

// Remove deletes a pokemon by id
// @Summary Delete a Pokemon
// @Description Delete a Pokemon by its id
// @Tags Pokemon
// @Param id path string true "Pokemon ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /pokemon/{id} [delete]
func (h *Handler) Remove(c *gin.Context) {
	if err := h.pokemons.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
