package pokeapi

type NamedResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type GenerationResponse struct {
	Id             int32           `json:"id"`
	Name           string          `json:"name"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}

func (g *GenerationResponse) SpeciesNames() []string {
	names := make([]string, 0, len(g.PokemonSpecies))
	for _, species := range g.PokemonSpecies {
		names = append(names, species.Name)
	}
	return names
}

type PokemonStat struct {
	BaseStat int32         `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

type PokemonSprites struct {
	FrontDefault *string `json:"front_default"`
}

type PokemonResponse struct {
	Name    string         `json:"name"`
	Stats   []PokemonStat  `json:"stats"`
	Sprites PokemonSprites `json:"sprites"`
}

// StatTotal sums the base stat of every listed stat entry.
func (p *PokemonResponse) StatTotal() int {
	total := 0
	for _, stat := range p.Stats {
		total += int(stat.BaseStat)
	}
	return total
}

func (p *PokemonResponse) SpriteURL() (string, error) {
	if p.Sprites.FrontDefault == nil || *p.Sprites.FrontDefault == "" {
		return "", ErrNoSprite
	}
	return *p.Sprites.FrontDefault, nil
}
