package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/combin"
	"github.com/lox/pokerodds/internal/obslog"
	"github.com/lox/pokerodds/odds"
)

// CLI has a single operation, showdown, following spec.md §6's
// "<program> <operation> <args…>" shape.
type CLI struct {
	Showdown ShowdownCmd `cmd:"" help:"Compute exact win/draw/loss odds for a set of pockets"`
}

// ShowdownCmd is the showdown operation: N pockets (2-23, vs-separated on
// the command line) against an optional partial board, resolved by exact
// enumeration rather than sampling.
type ShowdownCmd struct {
	Hands         string `arg:"" help:"Player pockets, separated by 'vs' (e.g. 'AsKs vs QcQd vs 9h8h')"`
	Board         string `short:"b" help:"Community board cards, 0-5 cards (e.g. 'Td7s8h')"`
	Possibilities bool   `short:"p" help:"Show the hand-category distribution for each player"`
	Bench         bool   `help:"Report wall-clock time for the enumeration"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// clock is the CLI's only source of time, swappable in tests via quartz's
// mock clock so --bench reporting is deterministic under test.
var clock quartz.Clock = quartz.NewReal()

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Exact Texas Hold'em odds by full-board enumeration."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run parses the showdown's pockets and board, computes exact odds, and
// prints the report. Errors are logged before being returned so
// ctx.FatalIfErrorf can still translate them into the process exit code.
func (c *ShowdownCmd) Run() error {
	pockets, err := parsePockets(c.Hands)
	if err != nil {
		obslog.Logger.Error("parsing hands", "err", err)
		return fmt.Errorf("parsing hands: %w", err)
	}

	board := card.New()
	if c.Board != "" {
		token := strings.ReplaceAll(strings.TrimSpace(c.Board), " ", "")
		token = strings.ReplaceAll(token, ",", "")
		cards, err := card.ParseCards(token)
		if err != nil {
			obslog.Logger.Error("parsing board", "err", err)
			return fmt.Errorf("parsing board: %w", err)
		}
		board = card.FromCards(cards)
	}

	start := clock.Now()
	results, err := odds.Calculate(pockets, board)
	elapsed := clock.Since(start)
	if err != nil {
		obslog.Logger.Error("calculating odds", "err", err)
		return err
	}

	if c.Possibilities {
		dealt := board
		for _, p := range pockets {
			dealt = dealt.Union(p)
		}
		remaining := card.Universe().Difference(dealt).Len()
		gap := 5 - board.Len()
		fmt.Printf("%s\n", headerStyle.Render(fmt.Sprintf("runouts: %d (C(%d,%d))",
			possibilitiesCount(remaining, gap), remaining, gap)))
	}

	displayResults(results, board, c.Possibilities)

	if c.Bench {
		fmt.Printf("\n%d runouts in %v\n", results[0].Outcome.Runouts(), elapsed.Truncate(time.Millisecond))
	}
	return nil
}

// parsePockets splits the "AsKs vs QcQd vs 9h8h" grammar into individual
// two-card pockets, case-insensitive and accepting both ASCII and Unicode
// suit glyphs (card.ParseCards already handles per-token spelling).
func parsePockets(s string) ([]card.CardSet, error) {
	parts := strings.Split(s, "vs")
	if len(parts) < odds.MinPlayers {
		return nil, fmt.Errorf("need at least %d pockets separated by 'vs'", odds.MinPlayers)
	}
	if len(parts) > odds.MaxPlayers {
		return nil, fmt.Errorf("cannot have more than %d pockets", odds.MaxPlayers)
	}

	pockets := make([]card.CardSet, 0, len(parts))
	for i, p := range parts {
		token := strings.ReplaceAll(strings.TrimSpace(p), " ", "")
		token = strings.ReplaceAll(token, ",", "")
		cards, err := card.ParseCards(token)
		if err != nil {
			return nil, fmt.Errorf("pocket %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("pocket %d: must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		pockets = append(pockets, card.FromCards(cards))
	}
	return pockets, nil
}

func displayResults(results []odds.PlayerOdds, board card.CardSet, showPossibilities bool) {
	if board.Len() > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCardSet(board))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("win"),
		headerStyle.Render("draw"),
		headerStyle.Render("loss"))

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(formatCardSet(r.Pocket)),
			winStyle.Render(formatPercent(r.Outcome.WinFraction().Percentage())),
			tieStyle.Render(formatPercent(r.Outcome.DrawFraction().Percentage())),
			lossStyle.Render(formatPercent(r.Outcome.LossFraction().Percentage())))
	}
	w.Flush()

	if showPossibilities {
		fmt.Printf("\n")
		displayDistributions(results)
	}
}

type distributionRow struct {
	label   string
	percent func(odds.HandDistribution) float64
}

var distributionRows = []distributionRow{
	{"Straight Flush", func(d odds.HandDistribution) float64 { return d.StraightFlushFraction().Percentage() }},
	{"Four of a Kind", func(d odds.HandDistribution) float64 { return d.QuadsFraction().Percentage() }},
	{"Full House", func(d odds.HandDistribution) float64 { return d.FullHouseFraction().Percentage() }},
	{"Flush", func(d odds.HandDistribution) float64 { return d.FlushFraction().Percentage() }},
	{"Straight", func(d odds.HandDistribution) float64 { return d.StraightFraction().Percentage() }},
	{"Three of a Kind", func(d odds.HandDistribution) float64 { return d.TripsFraction().Percentage() }},
	{"Two Pair", func(d odds.HandDistribution) float64 { return d.TwoPairFraction().Percentage() }},
	{"Pair", func(d odds.HandDistribution) float64 { return d.PairFraction().Percentage() }},
	{"High Card", func(d odds.HandDistribution) float64 { return d.HighCardFraction().Percentage() }},
}

func displayDistributions(results []odds.PlayerOdds) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, r := range results {
		fmt.Fprintf(w, "\t%s", handStyle.Render(formatCardSet(r.Pocket)))
	}
	fmt.Fprintf(w, "\n")

	for _, row := range distributionRows {
		fmt.Fprintf(w, "%s", categoryStyle.Render(row.label))
		for _, r := range results {
			pct := row.percent(r.Distribution)
			if pct > 0 {
				fmt.Fprintf(w, "\t%s", percentStyle.Render(formatPercent(pct)))
			} else {
				fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
			}
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}

func formatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

func formatCardSet(cs card.CardSet) string {
	cards := cs.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// possibilitiesCount reports the raw C(n,k) runout count for a given
// remaining-deck size and board gap, independent of a full Calculate call;
// exposed for tests and for anyone embedding the CLI's arithmetic.
func possibilitiesCount(remaining, gap int) int {
	return combin.Choose(remaining, gap)
}
