package battle

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type Winner int

const (
	NoWinner Winner = iota
	Team1
	Team2
)

func (w Winner) String() string {
	switch w {
	case Team1:
		return "team1"
	case Team2:
		return "team2"
	default:
		return "none"
	}
}

// Decide picks the team with the strictly greater mean. Equal means are a tie.
func Decide(team1Mean, team2Mean float64) Winner {
	switch {
	case team1Mean > team2Mean:
		return Team1
	case team2Mean > team1Mean:
		return Team2
	default:
		return NoWinner
	}
}

type Outcome struct {
	Team1     []string
	Team2     []string
	Team1Mean float64
	Team2Mean float64
	// Compared is false when either team could not be built.
	Compared bool
	Winner   Winner
	Sprites  []string
}

func (o *Outcome) WinningTeam() []string {
	switch o.Winner {
	case Team1:
		return o.Team1
	case Team2:
		return o.Team2
	default:
		return nil
	}
}

// Play builds two teams from the same generation, compares their mean stat
// totals and stores the sprites of the winning team. The human readable
// transcript goes to out.
func (g *Game) Play(ctx context.Context, gen int, out io.Writer, store SpriteStore) Outcome {
	fmt.Fprintf(out, "Fetching Pokémon from generation %d...\n", gen)

	outcome := Outcome{
		Team1: g.Team(ctx, gen),
		Team2: g.Team(ctx, gen),
	}
	printTeam(out, 1, outcome.Team1)
	printTeam(out, 2, outcome.Team2)

	if len(outcome.Team1) == 0 || len(outcome.Team2) == 0 {
		fmt.Fprintln(out, "Could not generate both teams. Cannot determine a winner.")
		return outcome
	}

	fmt.Fprintln(out, "\nCalculating team statistics...")
	outcome.Team1Mean = g.TeamMean(ctx, outcome.Team1)
	outcome.Team2Mean = g.TeamMean(ctx, outcome.Team2)
	outcome.Compared = true

	fmt.Fprintln(out, "\nAverage stats:")
	fmt.Fprintf(out, "Team 1: %.2f\n", outcome.Team1Mean)
	fmt.Fprintf(out, "Team 2: %.2f\n", outcome.Team2Mean)

	outcome.Winner = Decide(outcome.Team1Mean, outcome.Team2Mean)
	switch outcome.Winner {
	case Team1:
		fmt.Fprintln(out, "\nThe winner is Team 1!")
	case Team2:
		fmt.Fprintln(out, "\nThe winner is Team 2!")
	default:
		fmt.Fprintln(out, "\nIt's a tie!")
		return outcome
	}

	for _, name := range outcome.WinningTeam() {
		if location := g.SaveSprite(ctx, name, store); location != "" {
			fmt.Fprintf(out, "Image of %s saved to %s\n", name, location)
			outcome.Sprites = append(outcome.Sprites, location)
		}
	}
	return outcome
}

func printTeam(out io.Writer, number int, team []string) {
	if len(team) == 0 {
		fmt.Fprintf(out, "Error: could not generate Team %d.\n", number)
		return
	}
	fmt.Fprintf(out, "\nTeam %d:\n%s\n", number, strings.Join(team, ", "))
}
