// Package export persists sweep.AnalysisRun results as delimited text or
// as an Excel workbook.
//
// Formats:
//
//   - WriteSweepCSV: one row per sample:
//     deg2, deg3_open, deg3_closed, deg4_open, deg4_closed
//   - WriteSingleCSV / AppendSingleCSV: cumulative single-angle log:
//     Link_a, Link_b, Link_c, Link_d, deg2, deg4_open, deg4_crossed, deg3_open, deg3_crossed
//     The header is written only when the target file is new.
//   - WriteSweepXLSX / SaveSweepXLSX: the sweep table on sheet "Sweep" and
//     the link lengths, class and K1..K5 on sheet "Linkage".
//
// Solved angles are written with four decimals; a missing angle is the
// literal text "Not possible".
package export
