package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pokedex/models"
	"pokedex/realtime"
	"pokedex/repository"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

const exportPageSize = 500

// CreatePokemonInput holds the fields of a new pokemon
type CreatePokemonInput struct {
	Name string
	No   int
}

// UpdatePokemonInput holds the fields to change, nil fields are left untouched
type UpdatePokemonInput struct {
	Name *string
	No   *int
}

// Pagination selects a page of the catalog. A zero Limit means the default page size.
type Pagination struct {
	Limit  int
	Offset int
}

// PokemonService implements the catalog operations on top of a repository
type PokemonService struct {
	repo         repository.PokemonRepository
	defaultLimit int
	publisher    realtime.Publisher
	log          logrus.FieldLogger
}

// NewPokemonService wires the service. publisher may be nil.
func NewPokemonService(repo repository.PokemonRepository, defaultLimit int, publisher realtime.Publisher, log logrus.FieldLogger) *PokemonService {
	return &PokemonService{
		repo:         repo,
		defaultLimit: defaultLimit,
		publisher:    publisher,
		log:          log,
	}
}

// Create inserts a new pokemon
func (s *PokemonService) Create(ctx context.Context, input CreatePokemonInput) (*models.Pokemon, error) {
	pokemon := &models.Pokemon{Name: models.NormalizeName(input.Name), No: input.No}

	values := map[string]any{"name": pokemon.Name, "no": pokemon.No}
	if err := models.ValidateFields(models.PokemonSchema, values, false); err != nil {
		return nil, newError(KindValidation, err, "%s", err.Error())
	}

	if err := s.repo.Insert(ctx, pokemon); err != nil {
		return nil, s.handleExceptions(err, "create")
	}

	s.publish(realtime.CatalogEvent{Type: realtime.EventCreated, Pokemon: pokemon})
	return pokemon, nil
}

// FindAll returns a page of pokemons ordered by number
func (s *PokemonService) FindAll(ctx context.Context, page Pagination) ([]models.Pokemon, error) {
	limit := page.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit < 0 {
		return nil, newError(KindValidation, nil, "limit must not be less than 1")
	}
	if page.Offset < 0 {
		return nil, newError(KindValidation, nil, "offset must not be less than 0")
	}

	pokemons, err := s.repo.List(ctx, page.Offset, limit)
	if err != nil {
		return nil, s.handleExceptions(err, "list")
	}
	return pokemons, nil
}

// ListAll walks every page of the catalog, used by the spreadsheet export
func (s *PokemonService) ListAll(ctx context.Context) ([]models.Pokemon, error) {
	all := []models.Pokemon{}
	for offset := 0; ; offset += exportPageSize {
		page, err := s.repo.List(ctx, offset, exportPageSize)
		if err != nil {
			return nil, s.handleExceptions(err, "list")
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			return all, nil
		}
	}
}

// FindOne looks the term up as a number, then as an id, then as a name.
// Numbers outside the int4 range of the no column go straight to the name lookup.
func (s *PokemonService) FindOne(ctx context.Context, term string) (*models.Pokemon, error) {
	term = strings.TrimSpace(term)

	if no, err := strconv.ParseInt(term, 10, 32); err == nil {
		pokemon, err := s.repo.FindByNo(ctx, int(no))
		if err == nil {
			return pokemon, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, s.handleExceptions(err, "find")
		}
	}

	if models.IsValidID(term) {
		pokemon, err := s.repo.FindByID(ctx, term)
		if err == nil {
			return pokemon, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, s.handleExceptions(err, "find")
		}
	}

	pokemon, err := s.repo.FindByName(ctx, term)
	if err == nil {
		return pokemon, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, s.handleExceptions(err, "find")
	}

	return nil, newError(KindNotFound, err, "Pokemon with id, name or no %q not found", term)
}

// Update applies the supplied fields to the pokemon matching term
func (s *PokemonService) Update(ctx context.Context, term string, input UpdatePokemonInput) (*models.Pokemon, error) {
	pokemon, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = models.NormalizeName(*input.Name)
	}
	if input.No != nil {
		fields["no"] = *input.No
	}
	if len(fields) == 0 {
		return pokemon, nil
	}
	if err := models.ValidateFields(models.PokemonSchema, fields, true); err != nil {
		return nil, newError(KindValidation, err, "%s", err.Error())
	}

	if err := s.repo.Update(ctx, pokemon.ID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, err, "Pokemon with id, name or no %q not found", term)
		}
		return nil, s.handleExceptions(err, "update")
	}

	updated := *pokemon
	if name, ok := fields["name"].(string); ok {
		updated.Name = name
	}
	if no, ok := fields["no"].(int); ok {
		updated.No = no
	}

	s.publish(realtime.CatalogEvent{Type: realtime.EventUpdated, Pokemon: &updated})
	return &updated, nil
}

// Remove deletes the pokemon with the exact id
func (s *PokemonService) Remove(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return newError(KindBadRequest, nil, "%s is not a valid id", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindBadRequest, err, "Pokemon with id %s not found", id)
		}
		return s.handleExceptions(err, "delete")
	}

	s.publish(realtime.CatalogEvent{Type: realtime.EventDeleted, ID: id})
	return nil
}

// FillPokemonsWithSeedData replaces the whole catalog with pokemons
func (s *PokemonService) FillPokemonsWithSeedData(ctx context.Context, pokemons []models.Pokemon) ([]models.Pokemon, error) {
	batch := make([]models.Pokemon, 0, len(pokemons))
	for i, p := range pokemons {
		p.Name = models.NormalizeName(p.Name)
		values := map[string]any{"name": p.Name, "no": p.No}
		if err := models.ValidateFields(models.PokemonSchema, values, false); err != nil {
			return nil, newError(KindValidation, err, "entry %d: %s", i, err.Error())
		}
		batch = append(batch, models.Pokemon{Name: p.Name, No: p.No})
	}

	saved, err := s.repo.ReplaceAll(ctx, batch)
	if err != nil {
		return nil, s.handleExceptions(err, "seed")
	}

	s.publish(realtime.CatalogEvent{Type: realtime.EventSeeded, Pokemons: saved})
	return saved, nil
}

func (s *PokemonService) publish(event realtime.CatalogEvent) {
	if s.publisher != nil {
		s.publisher.Publish(event)
	}
}

// handleExceptions turns repository errors into client facing errors
func (s *PokemonService) handleExceptions(err error, operation string) error {
	var dup *repository.DuplicateKeyError
	if errors.As(err, &dup) {
		return newError(KindConflict, err, "Pokemon exists in db %s", duplicateKeyJSON(dup))
	}

	s.log.WithError(err).WithField("operation", operation).Error("pokemon service error")
	return newError(KindInternal, err, "Can't %s pokemon - Check server logs", operation)
}

func duplicateKeyJSON(dup *repository.DuplicateKeyError) string {
	value := any(dup.Value)
	if n, err := strconv.Atoi(dup.Value); err == nil {
		value = n
	}
	data, err := json.Marshal(map[string]any{dup.Key: value})
	if err != nil {
		return dup.Error()
	}
	return string(data)
}
