package battle

import (
	"context"
)

// StatTotal returns the sum of a species' base stats, or 0 when it cannot be
// fetched. A failed fetch and a zero total look the same to callers.
func (g *Game) StatTotal(ctx context.Context, name string) int {
	pokemon, err := g.fetcher.Pokemon(ctx, name)
	if err != nil {
		g.sugar.Errorf("Error fetching stats for %s: %s", name, err)
		return 0
	}
	return pokemon.StatTotal()
}

// TeamMean averages the stat totals of a team, one sequential fetch per member.
func (g *Game) TeamMean(ctx context.Context, team []string) float64 {
	if len(team) == 0 {
		return 0
	}
	sum := 0
	for _, name := range team {
		sum += g.StatTotal(ctx, name)
	}
	return float64(sum) / float64(len(team))
}
