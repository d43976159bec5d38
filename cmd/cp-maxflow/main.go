// Command cp-maxflow solves maximum-flow judge problems.
//
// Input: "n m" followed by m arcs "a b c" with 1-indexed endpoints; vertex 1
// is the source and vertex n the sink. With -unit the capacity column is
// absent and every arc has capacity 1. With -undirected every arc may be used
// in both directions.
//
// Output: the maximum flow, or with -cut the number of arcs in a minimum cut
// followed by those arcs, one "a b" per line.
//
// Examples:
//
//	cp-maxflow < download_speed.txt                   # CSES 1694
//	cp-maxflow -unit -undirected -cut < police.txt    # CSES 1695
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/cpkit/flow"
	"github.com/katalvlaran/cpkit/internal/judgeio"
	"github.com/katalvlaran/cpkit/internal/logging"
)

type config struct {
	unit       bool
	undirected bool
	cut        bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("cp-maxflow failed")
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cp-maxflow", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.BoolVar(&cfg.unit, "unit", false, "Arcs have no capacity column; every arc has capacity 1.")
	fs.BoolVar(&cfg.undirected, "undirected", false, "Every arc can be used in both directions.")
	fs.BoolVar(&cfg.cut, "cut", false, "Print the arcs of a minimum cut instead of the flow value.")
	debug := fs.Int("debug", 0, "Log level: 0 info, 1 debug (per-phase output), 2 trace.")
	noColour := fs.Bool("nc", false, "Removes the colouring from the log output.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := logging.Setup(stderr, *debug, *noColour)

	start := time.Now()
	g, err := readNetwork(judgeio.NewReader(stdin), cfg, flow.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug().Int("vertices", g.Len()).Dur("elapsed", time.Since(start)).Msg("input read")

	w := judgeio.NewWriter(stdout)
	if cfg.cut {
		cut := g.MinCut()
		logger.Info().Int64("flow", cut.Capacity).Int("arcs", len(cut.Edges)).Dur("elapsed", time.Since(start)).Msg("minimum cut")
		if err := w.Line(int64(len(cut.Edges))); err != nil {
			return err
		}
		for _, e := range cut.Edges {
			if err := w.Line(int64(e.From+1), int64(e.To+1)); err != nil {
				return err
			}
		}
	} else {
		total := g.Solve()
		logger.Info().Int64("flow", total).Dur("elapsed", time.Since(start)).Msg("maximum flow")
		if err := w.Line(total); err != nil {
			return err
		}
	}

	return w.Flush()
}

// readNetwork parses the judge input into an unsolved network.
func readNetwork(r *judgeio.Reader, cfg config, opts ...flow.Option) (*flow.Network[int64], error) {
	var n, m int
	if err := r.Ints(&n, &m); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	g, err := flow.New[int64](n, opts...)
	if err != nil {
		return nil, err
	}

	for k := 0; k < m; k++ {
		var a, b int
		if err := r.Ints(&a, &b); err != nil {
			return nil, fmt.Errorf("reading arc %d: %w", k+1, err)
		}
		c := int64(1)
		if !cfg.unit {
			if c, err = r.Int64(); err != nil {
				return nil, fmt.Errorf("reading capacity of arc %d: %w", k+1, err)
			}
		}
		if err := g.Connect(a-1, b-1, c); err != nil {
			return nil, fmt.Errorf("arc %d: %w", k+1, err)
		}
		if cfg.undirected {
			if err := g.Connect(b-1, a-1, c); err != nil {
				return nil, fmt.Errorf("arc %d: %w", k+1, err)
			}
		}
	}

	return g, nil
}
