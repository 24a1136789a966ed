// Package repositorytest provides an in-memory PokemonRepository for tests.
package repositorytest

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"pokedex/models"
	"pokedex/repository"

	"github.com/google/uuid"
)

// MemoryRepository enforces the same unique keys as the Postgres schema
type MemoryRepository struct {
	mu       sync.Mutex
	pokemons map[string]models.Pokemon

	// FailWith, when set, is returned by every call
	FailWith error
}

var _ repository.PokemonRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{pokemons: map[string]models.Pokemon{}}
}

// Len returns the number of stored pokemons
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pokemons)
}

func (r *MemoryRepository) Insert(ctx context.Context, pokemon *models.Pokemon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	return r.insert(r.pokemons, pokemon)
}

func (r *MemoryRepository) insert(into map[string]models.Pokemon, pokemon *models.Pokemon) error {
	if pokemon.ID == "" {
		pokemon.ID = uuid.NewString()
	}
	pokemon.Name = models.NormalizeName(pokemon.Name)
	if err := checkUnique(into, "", pokemon.Name, pokemon.No); err != nil {
		return err
	}
	into[pokemon.ID] = *pokemon
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, offset, limit int) ([]models.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}

	all := make([]models.Pokemon, 0, len(r.pokemons))
	for _, p := range r.pokemons {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].No < all[j].No })

	if offset >= len(all) {
		return []models.Pokemon{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// FindByNo rejects numbers outside int4 like the Postgres driver does
func (r *MemoryRepository) FindByNo(ctx context.Context, no int) (*models.Pokemon, error) {
	if no > math.MaxInt32 || no < math.MinInt32 {
		return nil, fmt.Errorf("unable to encode %d into binary format for int4", no)
	}
	return r.find(func(p models.Pokemon) bool { return p.No == no })
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.Pokemon, error) {
	return r.find(func(p models.Pokemon) bool { return p.ID == id })
}

func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*models.Pokemon, error) {
	name = models.NormalizeName(name)
	return r.find(func(p models.Pokemon) bool { return p.Name == name })
}

func (r *MemoryRepository) find(match func(models.Pokemon) bool) (*models.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	for _, p := range r.pokemons {
		if match(p) {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}

	p, ok := r.pokemons[id]
	if !ok {
		return repository.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = models.NormalizeName(name)
	}
	if no, ok := fields["no"].(int); ok {
		p.No = no
	}
	if err := checkUnique(r.pokemons, id, p.Name, p.No); err != nil {
		return err
	}
	r.pokemons[id] = p
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	if _, ok := r.pokemons[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.pokemons, id)
	return nil
}

// ReplaceAll leaves the previous content in place when the batch is rejected
func (r *MemoryRepository) ReplaceAll(ctx context.Context, pokemons []models.Pokemon) ([]models.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}

	next := map[string]models.Pokemon{}
	saved := make([]models.Pokemon, 0, len(pokemons))
	for _, p := range pokemons {
		if err := r.insert(next, &p); err != nil {
			return nil, err
		}
		saved = append(saved, p)
	}
	r.pokemons = next
	return saved, nil
}

func checkUnique(in map[string]models.Pokemon, skipID, name string, no int) error {
	for id, p := range in {
		if id == skipID {
			continue
		}
		if p.Name == name {
			return &repository.DuplicateKeyError{Key: "name", Value: name, Err: errDuplicate}
		}
		if p.No == no {
			return &repository.DuplicateKeyError{Key: "no", Value: strconv.Itoa(no), Err: errDuplicate}
		}
	}
	return nil
}

var errDuplicate = errors.New("duplicate key value violates unique constraint")
