package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pokedex/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPokeAPI(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"count": 1302,
			"next": "https://pokeapi.co/api/v2/pokemon?offset=3&limit=3",
			"previous": null,
			"results": [
				{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
				{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"},
				{"name": "venusaur", "url": "https://pokeapi.co/api/v2/pokemon/3/"}
			]
		}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestSeedService(t *testing.T, apiURL string, cache *database.Cache) (*SeedService, *PokemonService) {
	t.Helper()
	pokemons, _, _ := newTestService(t)
	return NewSeedService(SeedConfig{
		HTTP:     NewFetchAdapter(nil),
		Pokemons: pokemons,
		Cache:    cache,
		APIURL:   apiURL,
		Limit:    3,
		Logger:   quietLogger(),
	}), pokemons
}

func TestExecuteSeed(t *testing.T) {
	var hits int32
	api := newPokeAPI(t, &hits)
	seed, pokemons := newTestSeedService(t, api.URL+"/api/v2/pokemon", nil)
	ctx := context.Background()
	mustCreate(t, pokemons, "mewtwo", 150)

	saved, err := seed.ExecuteSeed(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "bulbasaur", saved[0].Name)
	assert.Equal(t, 1, saved[0].No)
	assert.Equal(t, 3, saved[2].No)

	_, err = pokemons.FindOne(ctx, "mewtwo")
	assert.True(t, IsNotFound(err))

	venusaur, err := pokemons.FindOne(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "venusaur", venusaur.Name)
}

func TestExecuteSeedUsesCache(t *testing.T) {
	var hits int32
	api := newPokeAPI(t, &hits)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := database.NewCacheFromClient(client, time.Minute)

	seed, _ := newTestSeedService(t, api.URL, cache)

	_, err := seed.ExecuteSeed(context.Background())
	require.NoError(t, err)
	saved, err := seed.ExecuteSeed(context.Background())
	require.NoError(t, err)

	assert.Len(t, saved, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.True(t, mr.Exists("pokeapi:list:3"))
}

func TestExecuteSeedPropagatesHTTPFailure(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer api.Close()

	seed, pokemons := newTestSeedService(t, api.URL, nil)
	mustCreate(t, pokemons, "mewtwo", 150)

	_, err := seed.ExecuteSeed(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)

	_, err = pokemons.FindOne(context.Background(), "mewtwo")
	assert.NoError(t, err)
}

func TestNumberFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    int
		wantErr bool
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", 25, false},
		{"https://pokeapi.co/api/v2/pokemon/151", 151, false},
		{"https://pokeapi.co/api/v2/pokemon/pikachu/", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := NumberFromURL(tt.url)
		if tt.wantErr {
			assert.Error(t, err, tt.url)
			continue
		}
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got, tt.url)
	}
}
