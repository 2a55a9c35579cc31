package export

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	SweepSheet   = "Sweep"
	LinkageSheet = "Linkage"
)

// WriteSweepXLSX renders run as an .xlsx workbook and writes it to w.
func WriteSweepXLSX(w io.Writer, run sweep.AnalysisRun) error {
	f, err := buildWorkbook(run)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}

	return nil
}

// SaveSweepXLSX renders run as an .xlsx workbook at path.
func SaveSweepXLSX(path string, run sweep.AnalysisRun) error {
	f, err := buildWorkbook(run)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save workbook: %w", err)
	}

	return nil
}

// buildWorkbook lays out the Sweep and Linkage sheets.
//
// Sweep cells hold numbers for solved angles and the NotPossible text for
// missing ones, so spreadsheet formulas skip the gaps.
func buildWorkbook(run sweep.AnalysisRun) (*excelize.File, error) {
	if run.Len() == 0 {
		return nil, ErrEmptyRun
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SweepSheet); err != nil {
		f.Close()

		return nil, fmt.Errorf("export: %w", err)
	}

	if err := writeSweepSheet(f, run); err != nil {
		f.Close()

		return nil, err
	}
	if err := writeLinkageSheet(f, run); err != nil {
		f.Close()

		return nil, err
	}

	return f, nil
}

// writeSweepSheet streams the sweep table.
func writeSweepSheet(f *excelize.File, run sweep.AnalysisRun) error {
	sw, err := f.NewStreamWriter(SweepSheet)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = sw.SetColWidth(1, len(SweepHeader), 14); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	header := make([]interface{}, len(SweepHeader))
	for i, h := range SweepHeader {
		header[i] = h
	}
	if err = sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("export: sweep header: %w", err)
	}

	for i, s := range run.Samples {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		r := s.Result
		row := []interface{}{
			s.Deg2,
			cellValue(r.Deg3Open),
			cellValue(r.Deg3Crossed),
			cellValue(r.Deg4Open),
			cellValue(r.Deg4Crossed),
		}
		if err = sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("export: sweep row deg2=%v: %w", s.Deg2, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// writeLinkageSheet records the inputs and derived constants of the run.
func writeLinkageSheet(f *excelize.File, run sweep.AnalysisRun) error {
	if _, err := f.NewSheet(LinkageSheet); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	k := run.Coefficients
	ls := run.Links
	rows := [][2]interface{}{
		{"Link_a", ls.A()},
		{"Link_b", ls.B()},
		{"Link_c", ls.C()},
		{"Link_d", ls.D()},
		{"Class", run.Class.String()},
		{"K1", k.K1},
		{"K2", k.K2},
		{"K3", k.K3},
		{"K4", k.K4},
		{"K5", k.K5},
		{"Samples", run.Len()},
		{"Unsolved", len(run.Unsolved())},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if err = f.SetCellValue(LinkageSheet, cell, v); err != nil {
				return fmt.Errorf("export: %w", err)
			}
		}
	}

	return nil
}

// cellValue maps a present angle to its number and None to NotPossible.
func cellValue(a linkage.Angle) interface{} {
	if v, ok := a.Value(); ok {
		return v
	}

	return linkage.NotPossible
}
