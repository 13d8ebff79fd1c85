package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/mu-rainbow/config"
	"github.com/luca-patrignani/mu-rainbow/domain/card"
	"github.com/luca-patrignani/mu-rainbow/domain/rainbow"
	"github.com/luca-patrignani/mu-rainbow/metrics"
	"github.com/luca-patrignani/mu-rainbow/reach"
	"github.com/luca-patrignani/mu-rainbow/storage"
)

// reachMap is a reachability map together with the way it reaches disk.
type reachMap interface {
	storage.BitArray
	// Persist writes the map to the output file.
	Persist() error
	Close() error
}

type memoryMap struct {
	*storage.Bits
	path string
}

func (m memoryMap) Persist() error { return storage.DumpFile(m.path, m.Bits) }
func (m memoryMap) Close() error   { return nil }

type mappedMap struct {
	*storage.Mapped
}

func (m mappedMap) Persist() error { return m.Flush() }

func (a *app) walkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Mark every state reachable from the starting hands and write the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.walk(); err != nil {
				return a.fail(err)
			}
			return nil
		},
	}
	cmd.Flags().String("metrics-textfile", "", "write run metrics in Prometheus text format to this file")
	return cmd
}

// createMap allocates an empty map of size bits on the configured backend.
func (a *app) createMap(size uint64) (reachMap, error) {
	if a.cfg.Backend == config.BackendMmap {
		m, err := storage.CreateMapped(a.cfg.Output, size)
		if err != nil {
			return nil, err
		}
		return mappedMap{m}, nil
	}
	return memoryMap{Bits: storage.NewBits(size), path: a.cfg.Output}, nil
}

func (a *app) walk() error {
	g := a.cfg.Geometry()
	spinner, _ := pterm.DefaultSpinner.Start("Building the move tables ...")
	tables, err := rainbow.NewTables(g)
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success(fmt.Sprintf("%d canonical hands", len(tables.Hands())))

	size := storage.Size(tables)
	a.logger.Info("allocating the reachability map", "ranks", g.Ranks, "bits", size, "backend", a.cfg.Backend)
	m, err := a.createMap(size)
	if err != nil {
		return err
	}
	defer m.Close()
	st, err := storage.New(tables, m)
	if err != nil {
		return err
	}

	run := metrics.NewRun()
	starts := tables.StartingStates()
	run.StartsTotal.Set(float64(len(starts)))
	w := reach.NewWalker(tables, st)

	begin := time.Now()
	bar, _ := pterm.DefaultProgressbar.WithTotal(len(starts)).WithTitle("Walking").Start()
	total := 0
	for i, s := range starts {
		t0 := time.Now()
		n := w.Walk(s)
		run.ObserveWalk(n, time.Since(t0))
		total += n
		a.logger.Debug("walked starting hand", "index", i, "hand", card.Render(g, s.Hand), "marked", n)
		bar.Increment()
	}
	_, _ = bar.Stop()
	a.logger.Info("walk finished", "marked", total, "max_depth", w.MaxDepth(), "elapsed", time.Since(begin).Round(time.Millisecond))

	if err := m.Persist(); err != nil {
		return err
	}
	digest, err := storage.WriteFingerprint(a.cfg.Output, m)
	if err != nil {
		return err
	}
	if err := m.Close(); err != nil {
		return fmt.Errorf("failed to close the map: %w", err)
	}
	if a.cfg.MetricsTextfile != "" {
		if err := run.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
			return err
		}
	}

	printSummary("|WALK|", [][]string{
		{"Output", a.cfg.Output},
		{"Marked states", fmt.Sprint(total)},
		{"Max depth", fmt.Sprint(w.MaxDepth())},
		{"Fingerprint", digest},
	})
	return nil
}
