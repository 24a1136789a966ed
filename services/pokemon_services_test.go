package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"pokedex/models"
	"pokedex/realtime"
	"pokedex/repository/repositorytest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []realtime.CatalogEvent
}

func (p *recordingPublisher) Publish(event realtime.CatalogEvent) {
	p.events = append(p.events, event)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T) (*PokemonService, *repositorytest.MemoryRepository, *recordingPublisher) {
	t.Helper()
	repo := repositorytest.NewMemoryRepository()
	pub := &recordingPublisher{}
	return NewPokemonService(repo, 6, pub, quietLogger()), repo, pub
}

func mustCreate(t *testing.T, svc *PokemonService, name string, no int) *models.Pokemon {
	t.Helper()
	p, err := svc.Create(context.Background(), CreatePokemonInput{Name: name, No: no})
	require.NoError(t, err)
	return p
}

func TestCreateThenFindOneByEveryTerm(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, "Pikachu", 25)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pikachu", created.Name)

	for _, term := range []string{"25", created.ID, "pikachu", "PIKACHU"} {
		found, err := svc.FindOne(ctx, term)
		require.NoError(t, err, term)
		assert.Equal(t, created.ID, found.ID, term)
		assert.Equal(t, 25, found.No, term)
	}

	require.Len(t, pub.events, 1)
	assert.Equal(t, realtime.EventCreated, pub.events[0].Type)
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "bulbasaur", 1)

	_, err := svc.Create(ctx, CreatePokemonInput{Name: "bulbasaur", No: 2})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, `Pokemon exists in db {"name":"bulbasaur"}`, err.Error())

	_, err = svc.Create(ctx, CreatePokemonInput{Name: "ivysaur", No: 1})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, `Pokemon exists in db {"no":1}`, err.Error())
}

func TestCreateValidation(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreatePokemonInput{Name: "  ", No: 0})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, 0, repo.Len())
}

func TestCreateStorageFailureIsInternal(t *testing.T) {
	svc, repo, _ := newTestService(t)
	repo.FailWith = errors.New("connection refused")

	_, err := svc.Create(context.Background(), CreatePokemonInput{Name: "mew", No: 151})
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "Can't create pokemon - Check server logs", err.Error())
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestFindAllPaginatesInOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "charmander", 4)
	mustCreate(t, svc, "bulbasaur", 1)
	mustCreate(t, svc, "squirtle", 7)
	mustCreate(t, svc, "ivysaur", 2)

	page, err := svc.FindAll(ctx, Pagination{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 1, page[0].No)
	assert.Equal(t, 2, page[1].No)

	page, err = svc.FindAll(ctx, Pagination{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 4, page[0].No)
	assert.Equal(t, 7, page[1].No)
}

func TestFindAllUsesDefaultLimit(t *testing.T) {
	svc, _, _ := newTestService(t)
	for i := 1; i <= 10; i++ {
		mustCreate(t, svc, fmt.Sprintf("pokemon-%d", i), i)
	}

	page, err := svc.FindAll(context.Background(), Pagination{})
	require.NoError(t, err)
	assert.Len(t, page, 6)
}

func TestFindAllRejectsNegativeValues(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.FindAll(context.Background(), Pagination{Offset: -1})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.FindAll(context.Background(), Pagination{Limit: -3})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestFindOneNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "bulbasaur", 1)

	_, err := svc.FindOne(context.Background(), "999999")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, `Pokemon with id, name or no "999999" not found`, err.Error())
}

func TestFindOneNumericNameFallsBackToName(t *testing.T) {
	svc, _, _ := newTestService(t)
	created := mustCreate(t, svc, "151", 1)

	found, err := svc.FindOne(context.Background(), "151")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestFindOneOutOfRangeNumberFallsBackToName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.FindOne(ctx, "3000000000")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	created := mustCreate(t, svc, "3000000000", 3)
	found, err := svc.FindOne(ctx, "3000000000")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCreateRejectsNumberAboveInt4(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreatePokemonInput{Name: "mew", No: 3000000000})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, 0, repo.Len())
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()
	created := mustCreate(t, svc, "charmander", 4)

	name := "X"
	updated, err := svc.Update(ctx, "4", UpdatePokemonInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "x", updated.Name)
	assert.Equal(t, 4, updated.No)

	stored, err := svc.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", stored.Name)
	assert.Equal(t, 4, stored.No)

	assert.Equal(t, realtime.EventUpdated, pub.events[len(pub.events)-1].Type)
}

func TestUpdateNumber(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "charmander", 4)

	no := 5
	updated, err := svc.Update(context.Background(), "charmander", UpdatePokemonInput{No: &no})
	require.NoError(t, err)
	assert.Equal(t, "charmander", updated.Name)
	assert.Equal(t, 5, updated.No)
}

func TestUpdateUnknownTermIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)
	name := "missingno"

	_, err := svc.Update(context.Background(), "missingno", UpdatePokemonInput{Name: &name})
	assert.True(t, IsNotFound(err))
}

func TestUpdateConflict(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustCreate(t, svc, "bulbasaur", 1)
	mustCreate(t, svc, "ivysaur", 2)

	name := "bulbasaur"
	_, err := svc.Update(context.Background(), "2", UpdatePokemonInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestUpdateWithoutFieldsReturnsEntry(t *testing.T) {
	svc, _, _ := newTestService(t)
	created := mustCreate(t, svc, "bulbasaur", 1)

	got, err := svc.Update(context.Background(), "1", UpdatePokemonInput{})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestRemove(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()
	created := mustCreate(t, svc, "bulbasaur", 1)

	require.NoError(t, svc.Remove(ctx, created.ID))

	_, err := svc.FindOne(ctx, created.ID)
	assert.True(t, IsNotFound(err))
	_, err = svc.FindOne(ctx, "1")
	assert.True(t, IsNotFound(err))

	assert.Equal(t, realtime.EventDeleted, pub.events[len(pub.events)-1].Type)
	assert.Equal(t, created.ID, pub.events[len(pub.events)-1].ID)
}

func TestRemoveMissingIsBadRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Remove(context.Background(), "5f0c4c0e-8b5d-4c43-9a3e-3f2d0b1a7c11")
	require.Error(t, err)
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, "Pokemon with id 5f0c4c0e-8b5d-4c43-9a3e-3f2d0b1a7c11 not found", err.Error())

	err = svc.Remove(context.Background(), "not-an-id")
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestFillPokemonsWithSeedDataReplacesEverything(t *testing.T) {
	svc, repo, pub := newTestService(t)
	ctx := context.Background()
	old := mustCreate(t, svc, "mewtwo", 150)

	saved, err := svc.FillPokemonsWithSeedData(ctx, []models.Pokemon{
		{Name: "bulbasaur", No: 1},
		{Name: "ivysaur", No: 2},
		{Name: "venusaur", No: 3},
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)
	for _, p := range saved {
		assert.NotEmpty(t, p.ID)
	}
	assert.Equal(t, 3, repo.Len())

	_, err = svc.FindOne(ctx, old.ID)
	assert.True(t, IsNotFound(err))

	all, err := svc.FindAll(ctx, Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"bulbasaur", "ivysaur", "venusaur"}, []string{all[0].Name, all[1].Name, all[2].Name})

	assert.Equal(t, realtime.EventSeeded, pub.events[len(pub.events)-1].Type)
}

func TestFillPokemonsWithSeedDataDuplicateKeepsPrevious(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustCreate(t, svc, "mewtwo", 150)

	_, err := svc.FillPokemonsWithSeedData(context.Background(), []models.Pokemon{
		{Name: "bulbasaur", No: 1},
		{Name: "bulbasaur", No: 2},
	})
	require.Error(t, err)
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, 1, repo.Len())
}

func TestFillPokemonsWithSeedDataValidates(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.FillPokemonsWithSeedData(context.Background(), []models.Pokemon{{Name: "", No: 1}})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestListAllWalksEveryPage(t *testing.T) {
	svc, _, _ := newTestService(t)
	batch := make([]models.Pokemon, 0, exportPageSize+20)
	for i := 1; i <= exportPageSize+20; i++ {
		batch = append(batch, models.Pokemon{Name: fmt.Sprintf("pokemon-%d", i), No: i})
	}
	_, err := svc.FillPokemonsWithSeedData(context.Background(), batch)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, exportPageSize+20)
	assert.Equal(t, 1, all[0].No)
	assert.Equal(t, exportPageSize+20, all[len(all)-1].No)
}
