package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/mu-rainbow/config"
	"github.com/luca-patrignani/mu-rainbow/domain/card"
	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
	"github.com/luca-patrignani/mu-rainbow/sample"
	"github.com/luca-patrignani/mu-rainbow/storage"
)

// query is a single state asked for on the command line.
type query struct {
	hand  string
	deck  string
	score int
}

func (a *app) inspectCmd() *cobra.Command {
	var q query
	cmd := &cobra.Command{
		Use:   "inspect [map file]",
		Short: "Report on a reachability map and look up states in it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Output
			if len(args) == 1 {
				path = args[0]
			}
			if err := a.inspect(path, q); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&q.hand, "hand", "", "comma-separated card numbers of a hand to look up")
	flags.StringVar(&q.deck, "deck", "", "comma-separated card numbers of the deck (default: every card not in the hand)")
	flags.IntVar(&q.score, "score", 0, "score of the state to look up, in tens of points")
	flags.Int("sample", 0, "number of random states to check, overrides the config")
	flags.String("seed", "", "seed of the random states, overrides the config")
	return cmd
}

// openMap loads the map at path on the configured backend, read-only.
func (a *app) openMap(path string, size uint64) (reachMap, error) {
	if a.cfg.Backend == config.BackendMmap {
		m, err := storage.OpenMappedReadOnly(path, size)
		if err != nil {
			return nil, err
		}
		return mappedMap{m}, nil
	}
	b := storage.NewBits(size)
	if err := storage.RestoreFile(path, b); err != nil {
		return nil, err
	}
	return memoryMap{Bits: b, path: path}, nil
}

func (a *app) inspect(path string, q query) error {
	g := a.cfg.Geometry()
	tables, err := rainbow.NewTables(g)
	if err != nil {
		return err
	}
	m, err := a.openMap(path, storage.Size(tables))
	if err != nil {
		return err
	}
	defer m.Close()
	st, err := storage.New(tables, m)
	if err != nil {
		return err
	}

	sum, err := storage.Fingerprint(m)
	if err != nil {
		return err
	}
	rows := [][]string{
		{"Map", path},
		{"Bits", fmt.Sprint(m.Len())},
		{"Marked states", fmt.Sprint(storage.Count(m))},
		{"Fingerprint", hex.EncodeToString(sum)},
		{"Sidecar", checkSidecar(path, sum)},
	}

	if q.hand != "" {
		s, err := q.state(g)
		if err != nil {
			return err
		}
		a.logger.Debug("looking up state", "score", s.Score, "hand", card.Render(g, s.Hand), "deck", card.Render(g, s.Deck))
		rows = append(rows, []string{"State " + card.Render(g, s.Hand), yesNo(st.Get(s))})
	}

	if n := a.cfg.SampleSize; n > 0 {
		sampler := sample.New([]byte(a.cfg.SampleSeed))
		hits := 0
		for i := 0; i < n; i++ {
			if st.Get(sampler.State(g)) {
				hits++
			}
		}
		rows = append(rows, []string{"Sampled reachable", fmt.Sprintf("%d/%d (%.2f%%)", hits, n, 100*float64(hits)/float64(n))})
	}

	printSummary("|INSPECT|", rows)
	return nil
}

// state builds the queried state, defaulting the deck to the complement of
// the hand.
func (q query) state(g card.Geometry) (rainbow.State, error) {
	hand, err := parseCards(g, q.hand)
	if err != nil {
		return rainbow.State{}, err
	}
	if hand.Count() != card.HandSize {
		return rainbow.State{}, fmt.Errorf("a hand holds %d cards, got %d", card.HandSize, hand.Count())
	}
	deck := g.FullMask() &^ hand
	if q.deck != "" {
		if deck, err = parseCards(g, q.deck); err != nil {
			return rainbow.State{}, err
		}
	}
	if deck&hand != 0 {
		return rainbow.State{}, errors.New("hand and deck share cards")
	}
	s := rainbow.State{Score: q.score, Hand: hand, Deck: deck}
	if !s.Storable() {
		return rainbow.State{}, fmt.Errorf("state with score %d and %d deck cards is never stored", s.Score, deck.Count())
	}
	return s, nil
}

// parseCards reads a comma-separated list of card numbers.
func parseCards(g card.Geometry, s string) (card.Mask, error) {
	var m card.Mask
	if strings.TrimSpace(s) == "" {
		return m, nil
	}
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, fmt.Errorf("invalid card %q: %w", field, err)
		}
		if n < 0 || n >= g.Cards() {
			return 0, fmt.Errorf("card %d out of range [0, %d)", n, g.Cards())
		}
		c := card.Card(n)
		if m.Has(c) {
			return 0, fmt.Errorf("card %d listed twice", n)
		}
		m |= c.Mask()
	}
	return m, nil
}

// checkSidecar compares sum with the fingerprint written next to the map.
func checkSidecar(path string, sum []byte) string {
	data, err := os.ReadFile(path + ".sum")
	if err != nil {
		return pterm.Yellow("missing")
	}
	want, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil || !bytes.Equal(want, sum) {
		return pterm.LightRed("mismatch")
	}
	return pterm.LightGreen("ok")
}

func yesNo(b bool) string {
	if b {
		return pterm.LightGreen("reachable")
	}
	return pterm.LightRed("unreachable")
}
