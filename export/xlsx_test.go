package export_test

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/fourbar/export"
	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// TestWriteSweepXLSX_Layout reads the workbook back and checks both sheets.
func TestWriteSweepXLSX_Layout(t *testing.T) {
	run := mustRun(t, linkage.MustNew(35, 50, 40, 30), sweep.DefaultRange())

	var buf bytes.Buffer
	require.NoError(t, export.WriteSweepXLSX(&buf, run))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{export.SweepSheet, export.LinkageSheet}, f.GetSheetList())

	rows, err := f.GetRows(export.SweepSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 38)
	assert.Equal(t, export.SweepHeader, rows[0])
	assert.Equal(t, linkage.NotPossible, rows[1][1], "deg2=0 has no assembly")

	// deg2=180 is solved; compare with a direct solve.
	want := linkage.Solve(180, run.Coefficients)
	row := rows[19]
	assert.Equal(t, "180", row[0])
	for col, a := range []linkage.Angle{want.Deg3Open, want.Deg3Crossed, want.Deg4Open, want.Deg4Crossed} {
		v, err := strconv.ParseFloat(row[col+1], 64)
		require.NoError(t, err)
		assert.InDelta(t, a.Or(0), v, 1e-9)
	}

	class, err := f.GetCellValue(export.LinkageSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "non-Grashof", class)
	unsolved, err := f.GetCellValue(export.LinkageSheet, "B12")
	require.NoError(t, err)
	assert.Equal(t, "4", unsolved)
}

// TestSaveSweepXLSX_File writes a workbook to disk.
func TestSaveSweepXLSX_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.xlsx")
	run := mustRun(t, linkage.MustNew(10, 20, 15, 18), sweep.Single(45))
	require.NoError(t, export.SaveSweepXLSX(path, run))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	k1, err := f.GetCellValue(export.LinkageSheet, "B6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1.8", k1)
}
