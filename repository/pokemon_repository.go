package repository

import (
	"context"
	"time"

	"pokedex/metrics"
	"pokedex/models"

	"gorm.io/gorm"
)

const (
	pokemonTable = "pokemons"
	batchSize    = 100
)

// PokemonRepository is the storage boundary of the catalog.
// Implementations return ErrNotFound and *DuplicateKeyError instead of driver errors.
type PokemonRepository interface {
	Insert(ctx context.Context, pokemon *models.Pokemon) error
	List(ctx context.Context, offset, limit int) ([]models.Pokemon, error)
	FindByNo(ctx context.Context, no int) (*models.Pokemon, error)
	FindByID(ctx context.Context, id string) (*models.Pokemon, error)
	FindByName(ctx context.Context, name string) (*models.Pokemon, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, pokemons []models.Pokemon) ([]models.Pokemon, error)
}

// GormPokemonRepository stores pokemons in Postgres through gorm
type GormPokemonRepository struct {
	db *gorm.DB
}

func NewGormPokemonRepository(db *gorm.DB) *GormPokemonRepository {
	return &GormPokemonRepository{db: db}
}

func (r *GormPokemonRepository) Insert(ctx context.Context, pokemon *models.Pokemon) error {
	defer metrics.RecordDBOperation("insert", pokemonTable, time.Now())

	return translateError(r.db.WithContext(ctx).Create(pokemon).Error)
}

// List returns pokemons ordered by their catalog number
func (r *GormPokemonRepository) List(ctx context.Context, offset, limit int) ([]models.Pokemon, error) {
	defer metrics.RecordDBOperation("list", pokemonTable, time.Now())

	pokemons := []models.Pokemon{}
	err := r.db.WithContext(ctx).
		Order("no asc").
		Offset(offset).
		Limit(limit).
		Find(&pokemons).Error
	if err != nil {
		return nil, translateError(err)
	}
	return pokemons, nil
}

func (r *GormPokemonRepository) FindByNo(ctx context.Context, no int) (*models.Pokemon, error) {
	defer metrics.RecordDBOperation("find_by_no", pokemonTable, time.Now())

	return r.first(ctx, "no = ?", no)
}

func (r *GormPokemonRepository) FindByID(ctx context.Context, id string) (*models.Pokemon, error) {
	defer metrics.RecordDBOperation("find_by_id", pokemonTable, time.Now())

	return r.first(ctx, "id = ?", id)
}

func (r *GormPokemonRepository) FindByName(ctx context.Context, name string) (*models.Pokemon, error) {
	defer metrics.RecordDBOperation("find_by_name", pokemonTable, time.Now())

	return r.first(ctx, "name = ?", models.NormalizeName(name))
}

func (r *GormPokemonRepository) first(ctx context.Context, query string, arg any) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	if err := r.db.WithContext(ctx).First(&pokemon, query, arg).Error; err != nil {
		return nil, translateError(err)
	}
	return &pokemon, nil
}

// Update writes only the given columns
func (r *GormPokemonRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	defer metrics.RecordDBOperation("update", pokemonTable, time.Now())

	if name, ok := fields["name"].(string); ok {
		fields["name"] = models.NormalizeName(name)
	}

	res := r.db.WithContext(ctx).Model(&models.Pokemon{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPokemonRepository) Delete(ctx context.Context, id string) error {
	defer metrics.RecordDBOperation("delete", pokemonTable, time.Now())

	res := r.db.WithContext(ctx).Delete(&models.Pokemon{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll empties the table and inserts pokemons in a single transaction
func (r *GormPokemonRepository) ReplaceAll(ctx context.Context, pokemons []models.Pokemon) ([]models.Pokemon, error) {
	defer metrics.RecordDBOperation("replace_all", pokemonTable, time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Pokemon{}).Error; err != nil {
			return err
		}
		if len(pokemons) == 0 {
			return nil
		}
		return tx.CreateInBatches(&pokemons, batchSize).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	if pokemons == nil {
		pokemons = []models.Pokemon{}
	}
	return pokemons, nil
}
