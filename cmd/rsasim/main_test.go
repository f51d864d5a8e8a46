package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScenario = `name: triangle
links:
  - {a: A, b: B, weight: 1}
  - {a: B, b: C, weight: 1}
  - {a: A, b: C, weight: 5}
requests:
  - {id: first, source: A, destination: C, slots: 10}
  - {id: lost, source: A, destination: Q, slots: 1}
  - {op: compare, source: A, destination: C, slots: 2, wavelength: 1}
  - {op: free, source: A, destination: C, wavelength: 0}
  - {op: reachable, source: A, hops: 1}
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-scenario", writeFile(t, "s.yaml", testScenario)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "first A→C [uniform-cost] path=A-B-C weight=2")
	require.Contains(t, out, "slots=[0 1 2 3 4 5 6 7 8 9]")
	require.Contains(t, out, "no route")
	require.Contains(t, out, "free A-B-C λ0")
	require.Contains(t, out, "reach A hops≤1  B(1) C(1)")
	require.Contains(t, out, "Spectrum (4 λ × 80 slots)")
	require.Contains(t, out, "A-B")
	require.Contains(t, out, "islands=1")
	require.Contains(t, stderr.String(), "scenario loaded")
}

func TestRun_WithConfig(t *testing.T) {
	cfgPath := writeFile(t, "c.toml", "[spectrum]\nwavelengths = 2\nslots = 16\n[log]\nlevel = \"warn\"\n")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", cfgPath, "-scenario", writeFile(t, "s.yaml", testScenario)}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "Spectrum (2 λ × 16 slots)")
	require.NotContains(t, stderr.String(), "scenario loaded", "info is below warn")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	require.Equal(t, 2, run(context.Background(), []string{"-bogus"}, &stdout, &stderr))

	bad := writeFile(t, "c.toml", "[spectrum]\nslots = 0\n")
	require.Equal(t, 1, run(context.Background(), []string{"-config", bad, "-scenario", "x.yaml"}, &stdout, &stderr))

	require.Equal(t, 1, run(context.Background(), []string{"-scenario", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))

	stderr.Reset()
	scn := writeFile(t, "s.yaml", testScenario)
	require.Equal(t, 2, run(context.Background(), []string{"-serve", "-scenario", scn}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "-serve needs metrics.addr")
}

func TestRunWithSignals(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, runWithSignals(nil, &stdout, &stderr))
	require.Equal(t, 0, runWithSignals([]string{"-scenario", writeFile(t, "s.yaml", testScenario)}, &stdout, &stderr), stderr.String())
}
