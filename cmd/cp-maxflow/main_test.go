package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/flow"
)

func runWith(t *testing.T, input string, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(args, strings.NewReader(input), &stdout, &stderr))

	return stdout.String()
}

// TestDownloadSpeed is the CSES 1694 sample.
func TestDownloadSpeed(t *testing.T) {
	input := `4 5
1 2 3
2 4 2
1 3 4
3 4 5
4 1 3
`
	require.Equal(t, "6\n", runWith(t, input, "-nc"))
}

// TestPoliceChase is the CSES 1695 sample; cut arcs are listed by tail vertex.
func TestPoliceChase(t *testing.T) {
	input := `4 5
1 2
1 3
2 3
3 4
1 4
`
	require.Equal(t, "2\n1 4\n3 4\n", runWith(t, input, "-unit", "-undirected", "-cut", "-nc"))
}

// TestParallelArcs: repeated arcs accumulate.
func TestParallelArcs(t *testing.T) {
	require.Equal(t, "7\n", runWith(t, "2 2\n1 2 3\n1 2 4\n"))
}

// TestDebugLogging: per-phase logs go to stderr, never stdout.
func TestDebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-debug", "1", "-nc"}, strings.NewReader("2 1\n1 2 5\n"), &stdout, &stderr))

	require.Equal(t, "5\n", stdout.String())
	require.Contains(t, stderr.String(), "phase done")
	require.Contains(t, stderr.String(), "maximum flow")
}

// TestBadInput covers header, range and truncation errors.
func TestBadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, strings.NewReader("3 1\n1 4 2\n"), &stdout, &stderr)
	require.ErrorIs(t, err, flow.ErrVertexOutOfRange)

	err = run(nil, strings.NewReader("3 2\n1 2 2\n"), &stdout, &stderr)
	require.Error(t, err)

	err = run(nil, strings.NewReader("1 0\n"), &stdout, &stderr)
	require.ErrorIs(t, err, flow.ErrTooFewVertices)

	err = run([]string{"-bogus"}, strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)
	require.Empty(t, stdout.String())
}
