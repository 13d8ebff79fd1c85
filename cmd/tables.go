package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/mu-rainbow/domain/card"
	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
	"github.com/luca-patrignani/mu-rainbow/storage"
)

func (a *app) tablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the size of the hand index and of the reachability map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tables(); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
}

func (a *app) tables() error {
	g := a.cfg.Geometry()
	t, err := rainbow.NewTables(g)
	if err != nil {
		return err
	}
	moves, deals := 0, 0
	for _, h := range t.Hands() {
		for _, m := range t.Moves(h) {
			moves++
			if m.Action == rainbow.Deal {
				deals++
			}
		}
	}
	size := storage.Size(t)
	a.logger.Debug("tables built", "ranks", g.Ranks, "hands", len(t.Hands()), "moves", moves)

	printSummary("|TABLES|", [][]string{
		{"Ranks", fmt.Sprint(g.Ranks)},
		{"Cards", fmt.Sprint(g.Cards())},
		{"Hands", fmt.Sprint(len(t.RawHands()))},
		{"Canonical hands", fmt.Sprint(len(t.Hands()))},
		{"Expected canonical hands", fmt.Sprint(rainbow.ExpectedCanonicalHands(g, card.HandSize))},
		{"Moves", fmt.Sprint(moves)},
		{"Deal moves", fmt.Sprint(deals)},
		{"Free deck bits", fmt.Sprint(g.FreeBits())},
		{"Map bits", fmt.Sprint(size)},
		{"Map bytes", fmt.Sprint((size + 7) / 8)},
	})
	return nil
}
