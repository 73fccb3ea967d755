package battle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const DefaultWinnerDir = "Winning Team"

// SpriteStore persists a downloaded sprite and reports where it ended up.
type SpriteStore interface {
	Save(ctx context.Context, species string, image []byte) (string, error)
}

// DirStore writes sprites as <Dir>/<species>.png, creating Dir on first use.
type DirStore struct {
	Dir string
}

func (s DirStore) Save(_ context.Context, species string, image []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, species+".png")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// MultiStore saves into every store in order. All stores are attempted even
// if an earlier one fails.
type MultiStore []SpriteStore

func (m MultiStore) Save(ctx context.Context, species string, image []byte) (string, error) {
	var locations []string
	var errs []error
	for _, store := range m {
		location, err := store.Save(ctx, species, image)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locations = append(locations, location)
	}
	return strings.Join(locations, ", "), errors.Join(errs...)
}

// SaveSprite downloads the default front sprite of a species into store and
// returns its location. Failures are logged and yield an empty location.
func (g *Game) SaveSprite(ctx context.Context, name string, store SpriteStore) string {
	pokemon, err := g.fetcher.Pokemon(ctx, name)
	if err != nil {
		g.sugar.Errorf("Error getting the image of %s: %s", name, err)
		return ""
	}
	spriteUrl, err := pokemon.SpriteURL()
	if err != nil {
		g.sugar.Warnf("No image found for %s: %s", name, err)
		return ""
	}
	image, err := g.fetcher.Image(ctx, spriteUrl)
	if err != nil {
		g.sugar.Errorf("Error getting the image of %s: %s", name, err)
		return ""
	}
	location, err := store.Save(ctx, name, image)
	if err != nil {
		g.sugar.Errorf("Failed to save the image of %s: %s", name, err)
		if location == "" {
			return ""
		}
	}
	g.sugar.Infof("Image of %s saved to %s", name, location)
	return location
}

func (g *Game) DownloadImage(ctx context.Context, name, folder string) string {
	return g.SaveSprite(ctx, name, DirStore{Dir: folder})
}
