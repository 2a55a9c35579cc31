package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/katalvlaran/fourbar/sweep"
)

// WriteSweepCSV writes the header and one row per sample of run to w.
func WriteSweepCSV(w io.Writer, run sweep.AnalysisRun) error {
	if run.Len() == 0 {
		return ErrEmptyRun
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(SweepHeader); err != nil {
		return fmt.Errorf("export: sweep header: %w", err)
	}
	for _, s := range run.Samples {
		r := s.Result
		record := []string{
			formatFixed(s.Deg2),
			formatAngle(r.Deg3Open),
			formatAngle(r.Deg3Crossed),
			formatAngle(r.Deg4Open),
			formatAngle(r.Deg4Crossed),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: sweep row deg2=%v: %w", s.Deg2, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSingleCSV writes one single-angle row per sample of run to w,
// preceded by SingleHeader when header is true.
func WriteSingleCSV(w io.Writer, run sweep.AnalysisRun, header bool) error {
	if run.Len() == 0 {
		return ErrEmptyRun
	}

	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(SingleHeader); err != nil {
			return fmt.Errorf("export: single header: %w", err)
		}
	}
	lengths := run.Links.Lengths()
	for _, s := range run.Samples {
		r := s.Result
		record := []string{
			formatInput(lengths[0]),
			formatInput(lengths[1]),
			formatInput(lengths[2]),
			formatInput(lengths[3]),
			formatInput(s.Deg2),
			formatAngle(r.Deg4Open),
			formatAngle(r.Deg4Crossed),
			formatAngle(r.Deg3Open),
			formatAngle(r.Deg3Crossed),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: single row deg2=%v: %w", s.Deg2, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// AppendSingleCSV appends run to the cumulative log at path, creating the
// file with a header row when it does not exist yet.
func AppendSingleCSV(path string, run sweep.AnalysisRun) (err error) {
	if run.Len() == 0 {
		return ErrEmptyRun
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)
	if statErr != nil && !isNew {
		return fmt.Errorf("export: %w", statErr)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	return WriteSingleCSV(f, run, isNew)
}

// SaveSweepCSV creates (or truncates) path and writes the sweep table.
func SaveSweepCSV(path string, run sweep.AnalysisRun) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	return WriteSweepCSV(f, run)
}
