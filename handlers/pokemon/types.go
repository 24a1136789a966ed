package pokemon

import (
	"errors"
	"strings"

	"pokedex/models"
	"pokedex/realtime"
	"pokedex/services"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Error messages constants
const (
	ErrInvalidRequestBody = "Invalid request body"
	ErrInvalidQuery       = "Invalid query parameters"
	ErrMissingFile        = "An XLSX file is required in the \"file\" field"
	ErrInvalidFile        = "Failed to parse XLSX file"
	ErrMissingColumns     = "The sheet must have Name and No columns"
	ErrExportFailed       = "Failed to build the export file"
)

// CreatePokemonRequest is the body of POST /pokemon
type CreatePokemonRequest struct {
	Name string `json:"name" binding:"required,min=1" example:"pikachu"`
	No   int    `json:"no" binding:"required,min=1,max=2147483647" example:"25"`
}

// UpdatePokemonRequest is the body of PATCH /pokemon/{term}, every field is optional
type UpdatePokemonRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1" example:"raichu"`
	No   *int    `json:"no" binding:"omitempty,min=1,max=2147483647" example:"26"`
}

// PaginationQuery is the query string of GET /pokemon
type PaginationQuery struct {
	Limit  *int `form:"limit" binding:"omitempty,min=1"`
	Offset int  `form:"offset" binding:"omitempty,min=0"`
}

// ImportRowError describes a spreadsheet row that could not be imported
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResponse is returned by the spreadsheet import
type ImportResponse struct {
	Created []models.Pokemon `json:"created"`
	Errors  []ImportRowError `json:"errors"`
}

// Handler serves the pokemon endpoints
type Handler struct {
	pokemons *services.PokemonService
	hub      *realtime.Hub
	log      logrus.FieldLogger
}

func NewHandler(pokemons *services.PokemonService, hub *realtime.Hub, log logrus.FieldLogger) *Handler {
	return &Handler{pokemons: pokemons, hub: hub, log: log}
}

// bindingErrors flattens validator errors into a field -> tag map
func bindingErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[strings.ToLower(fe.Field())] = "failed on " + rule
	}
	return fields, true
}
