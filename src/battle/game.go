package battle

import (
	"context"
	"math/rand/v2"

	"github.com/BielosX/wombat/poke-battle/src/pokeapi"
	"go.uber.org/zap"
)

const DefaultTeamSize = 6

// Fetcher is the subset of the PokeAPI client a battle needs.
type Fetcher interface {
	Generation(ctx context.Context, id int) (*pokeapi.GenerationResponse, error)
	Pokemon(ctx context.Context, name string) (*pokeapi.PokemonResponse, error)
	Image(ctx context.Context, url string) ([]byte, error)
}

type Game struct {
	fetcher  Fetcher
	sugar    *zap.SugaredLogger
	rng      *rand.Rand
	teamSize int
}

type Option func(*Game)

// WithRand replaces the sampling source, mainly so tests can seed it.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithTeamSize(size int) Option {
	return func(g *Game) {
		if size > 0 {
			g.teamSize = size
		}
	}
}

func NewGame(sugar *zap.SugaredLogger, fetcher Fetcher, opts ...Option) *Game {
	g := &Game{
		fetcher:  fetcher,
		sugar:    sugar,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		teamSize: DefaultTeamSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) TeamSize() int {
	return g.teamSize
}
