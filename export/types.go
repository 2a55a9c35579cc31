package export

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/fourbar/linkage"
)

// ErrEmptyRun is returned when an AnalysisRun has no samples to write.
var ErrEmptyRun = errors.New("export: analysis run has no samples")

// AnglePrecision is the number of decimals written for solved angles.
const AnglePrecision = 4

// Column headers.
var (
	// SweepHeader labels the sweep table.
	SweepHeader = []string{"deg2", "deg3_open", "deg3_closed", "deg4_open", "deg4_closed"}

	// SingleHeader labels the cumulative single-angle log.
	SingleHeader = []string{
		"Link_a", "Link_b", "Link_c", "Link_d",
		"deg2", "deg4_open", "deg4_crossed", "deg3_open", "deg3_crossed",
	}
)

// formatAngle renders a solved angle with AnglePrecision decimals or the
// "Not possible" marker.
func formatAngle(a linkage.Angle) string { return a.Format(AnglePrecision) }

// formatFixed renders v with AnglePrecision decimals.
func formatFixed(v float64) string { return strconv.FormatFloat(v, 'f', AnglePrecision, 64) }

// formatInput renders an input value in its shortest exact form.
func formatInput(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
