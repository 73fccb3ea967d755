package battle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/BielosX/wombat/poke-battle/src/pokeapi"
	"go.uber.org/zap/zaptest"
)

var errUnreachable = errors.New("connection refused")

// fakeFetcher serves canned PokeAPI answers and records what was asked.
type fakeFetcher struct {
	// generations is consumed in order, one entry per Generation call.
	generations [][]string

	generationErr error
	stats         map[string]int
	sprites       map[string]string
	images        map[string][]byte
	failPokemon   map[string]bool

	generationCalls int
	pokemonCalls    []string
	imageCalls      []string
}

func (f *fakeFetcher) Generation(_ context.Context, id int) (*pokeapi.GenerationResponse, error) {
	f.generationCalls++
	if f.generationErr != nil {
		return nil, f.generationErr
	}
	if len(f.generations) == 0 {
		return nil, &pokeapi.StatusError{URL: fmt.Sprintf("/generation/%d/", id), StatusCode: 404}
	}
	names := f.generations[0]
	if len(f.generations) > 1 {
		f.generations = f.generations[1:]
	}
	response := &pokeapi.GenerationResponse{Id: int32(id)}
	for _, name := range names {
		response.PokemonSpecies = append(response.PokemonSpecies, pokeapi.NamedResource{Name: name})
	}
	return response, nil
}

func (f *fakeFetcher) Pokemon(_ context.Context, name string) (*pokeapi.PokemonResponse, error) {
	f.pokemonCalls = append(f.pokemonCalls, name)
	if f.failPokemon[name] {
		return nil, errUnreachable
	}
	response := &pokeapi.PokemonResponse{Name: name}
	if total, ok := f.stats[name]; ok {
		response.Stats = []pokeapi.PokemonStat{{BaseStat: int32(total)}}
	}
	if url, ok := f.sprites[name]; ok {
		response.Sprites.FrontDefault = &url
	}
	return response, nil
}

func (f *fakeFetcher) Image(_ context.Context, url string) ([]byte, error) {
	f.imageCalls = append(f.imageCalls, url)
	image, ok := f.images[url]
	if !ok {
		return nil, &pokeapi.StatusError{URL: url, StatusCode: 404}
	}
	return image, nil
}

func newTestGame(t *testing.T, fetcher Fetcher, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return NewGame(zaptest.NewLogger(t).Sugar(), fetcher, opts...)
}

func names(prefix string, n int) []string {
	result := make([]string, 0, n)
	for i := 0; i < n; i++ {
		result = append(result, fmt.Sprintf("%s-%d", prefix, i))
	}
	return result
}
