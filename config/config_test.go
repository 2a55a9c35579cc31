package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fourbar/config"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_SingleAngle decodes a full single-angle session.
func TestParse_SingleAngle(t *testing.T) {
	s, err := config.Parse([]byte(`
links: {a: 10, b: 20, c: 15, d: 18}
angle: 45
output:
  csv: results.csv
  plots: plots
workers: 2
verbose: true
`))
	require.NoError(t, err)
	assert.Equal(t, linkage.MustNew(10, 20, 15, 18), s.Links)
	assert.Equal(t, sweep.ModeSingle, s.Plan.Mode())
	angles, err := s.Plan.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{45}, angles)
	assert.Equal(t, config.Output{CSV: "results.csv", Plots: "plots"}, s.Output)
	assert.Equal(t, 2, s.Workers)
	assert.True(t, s.Verbose)
	assert.Len(t, s.Options(), 2)
}

// TestParse_DefaultSweep falls back to 0..360 step 10.
func TestParse_DefaultSweep(t *testing.T) {
	s, err := config.Parse([]byte("links: {a: 20, b: 60, c: 50, d: 70}\n"))
	require.NoError(t, err)
	angles, err := s.Plan.Angles()
	require.NoError(t, err)
	assert.Len(t, angles, 37)
	assert.Len(t, s.Options(), 1, "workers unset keeps the engine default")
}

// TestParse_CustomSweep honours an explicit range.
func TestParse_CustomSweep(t *testing.T) {
	s, err := config.Parse([]byte(`
links: {a: 20, b: 60, c: 50, d: 70}
sweep: {start: 90, stop: 180, step: 45}
`))
	require.NoError(t, err)
	angles, err := s.Plan.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{90, 135, 180}, angles)
}

// TestParse_Errors maps invalid documents to their sentinels.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"missing links", "angle: 10\n", linkage.ErrNonPositiveLength},
		{"negative link", "links: {a: -1, b: 1, c: 1, d: 1}\n", linkage.ErrNonPositiveLength},
		{"both angle and sweep", "links: {a: 1, b: 1, c: 1, d: 1}\nangle: 1\nsweep: {start: 0, stop: 1, step: 1}\n", config.ErrAmbiguousAngles},
		{"zero step", "links: {a: 1, b: 1, c: 1, d: 1}\nsweep: {start: 0, stop: 10}\n", sweep.ErrBadStep},
		{"negative workers", "links: {a: 1, b: 1, c: 1, d: 1}\nworkers: -2\n", config.ErrBadWorkers},
		{"empty", "", config.ErrEmptyDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_UnknownKey rejects typos.
func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("links: {a: 1, b: 1, c: 1, d: 1}\nangel: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "angel")
}

// TestLoad_RoundTrip marshals a File, writes it and loads it back.
func TestLoad_RoundTrip(t *testing.T) {
	angle := 30.0
	f := config.File{
		Links:  config.Links{A: 10, B: 20, C: 15, D: 18},
		Angle:  &angle,
		Output: config.Output{XLSX: "out.xlsx"},
	}
	data, err := f.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, linkage.MustNew(10, 20, 15, 18), s.Links)
	assert.Equal(t, "out.xlsx", s.Output.XLSX)
	assert.Equal(t, "single 30", s.Plan.String())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
