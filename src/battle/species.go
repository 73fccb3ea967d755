package battle

import (
	"context"
)

// PokemonFromGeneration returns count distinct species names sampled uniformly
// from the given generation. It returns an empty slice when the generation
// cannot be fetched or holds fewer than count species; a partial team is never
// returned.
func (g *Game) PokemonFromGeneration(ctx context.Context, gen, count int) []string {
	g.sugar.Infof("Fetching species of generation %d", gen)
	generation, err := g.fetcher.Generation(ctx, gen)
	if err != nil {
		g.sugar.Errorf("Failed to get generation %d from the API: %s", gen, err)
		return []string{}
	}
	species := distinct(generation.SpeciesNames())
	if count <= 0 || len(species) < count {
		g.sugar.Warnf("Not enough Pokemon to build a team: generation %d has %d species, need %d",
			gen, len(species), count)
		return []string{}
	}
	perm := g.rng.Perm(len(species))
	team := make([]string, 0, count)
	for _, idx := range perm[:count] {
		team = append(team, species[idx])
	}
	return team
}

// Team samples a team of the configured size.
func (g *Game) Team(ctx context.Context, gen int) []string {
	return g.PokemonFromGeneration(ctx, gen, g.teamSize)
}

func distinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
