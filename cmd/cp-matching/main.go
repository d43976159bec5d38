// Command cp-matching solves bipartite matching judge problems.
//
// Input: "L R M" followed by M pairs "a b", where a is a left vertex and b a
// right vertex. Pairs are 1-indexed (CSES 1696 "School Dance") unless -zero
// is set (Library Checker "bipartitematching").
//
// Output: the matching size K followed by K matched pairs, indexed like the
// input.
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
	"github.com/katalvlaran/cpkit/matching"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal().Err(err).Msg("cp-matching failed")
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cp-matching", flag.ContinueOnError)
	fs.SetOutput(stderr)
	zero := fs.Bool("zero", false, "Vertices are 0-indexed in input and output.")
	debug := fs.Int("debug", 0, "Log level: 0 info, 1 debug (per-phase output), 2 trace.")
	noColour := fs.Bool("nc", false, "Removes the colouring from the log output.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := logging.Setup(stderr, *debug, *noColour)

	base := 1
	if *zero {
		base = 0
	}

	start := time.Now()
	r := judgeio.NewReader(stdin)
	var left, right, m int
	if err := r.Ints(&left, &right, &m); err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	bm, err := matching.New(left, right, flow.WithLogger(logger))
	if err != nil {
		return err
	}
	for k := 0; k < m; k++ {
		var a, b int
		if err := r.Ints(&a, &b); err != nil {
			return fmt.Errorf("reading pair %d: %w", k+1, err)
		}
		if err := bm.Connect(a-base, b-base); err != nil {
			return fmt.Errorf("pair %d: %w", k+1, err)
		}
	}

	pairs := bm.Matching()
	logger.Info().Int("matched", len(pairs)).Dur("elapsed", time.Since(start)).Msg("maximum matching")

	w := judgeio.NewWriter(stdout)
	if err := w.Line(int64(len(pairs))); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := w.Line(int64(p.Left+base), int64(p.Right+base)); err != nil {
			return err
		}
	}

	return w.Flush()
}
