package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BielosX/wombat/poke-battle/src/battle"
	"go.uber.org/zap"
)

const (
	MinGeneration = 1
	MaxGeneration = 9
)

var ErrInvalidGeneration = errors.New("invalid generation")

// ParseGeneration accepts a line such as " 4\n" and checks it is within 1-9.
func ParseGeneration(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	gen, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGeneration, trimmed)
	}
	if gen < MinGeneration || gen > MaxGeneration {
		return 0, fmt.Errorf("%w: generation must be between %d and %d", ErrInvalidGeneration, MinGeneration, MaxGeneration)
	}
	return gen, nil
}

type Session struct {
	game  *battle.Game
	store battle.SpriteStore
	in    io.Reader
	out   io.Writer
	sugar *zap.SugaredLogger
}

func NewSession(sugar *zap.SugaredLogger, game *battle.Game, store battle.SpriteStore, in io.Reader, out io.Writer) *Session {
	return &Session{
		game:  game,
		store: store,
		in:    in,
		out:   out,
		sugar: sugar,
	}
}

// Run prompts for a generation and plays one battle. Problems are reported on
// the console; the returned outcome is nil when no battle was played.
func (s *Session) Run(ctx context.Context) (outcome *battle.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.sugar.Errorf("Unexpected failure: %v", r)
			fmt.Fprintf(s.out, "An unexpected error occurred: %v\n", r)
			outcome = nil
		}
	}()

	fmt.Fprintln(s.out, "Welcome to the Pokémon team generator, choose a generation to create a Pokémon battle")
	fmt.Fprintf(s.out, "Choose generation (%d-%d): ", MinGeneration, MaxGeneration)

	line, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.sugar.Errorf("Failed to read generation: %s", err)
		fmt.Fprintf(s.out, "\nInvalid input: %s\n", err)
		return nil
	}
	gen, err := ParseGeneration(line)
	if err != nil {
		fmt.Fprintf(s.out, "\nInvalid input: %s\n", err)
		return nil
	}

	result := s.game.Play(ctx, gen, s.out, s.store)
	return &result
}
