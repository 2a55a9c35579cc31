// Package config loads a four-bar analysis session from YAML.
//
// A session names the four link lengths, the crank angles to solve and
// where to write results:
//
//	links:
//	  a: 10   # crank
//	  b: 20   # coupler
//	  c: 15   # rocker
//	  d: 18   # ground
//	angle: 45               # single-angle query, or
//	sweep:                  # inclusive sweep (default 0..360 step 10)
//	  start: 0
//	  stop: 360
//	  step: 10
//	output:
//	  csv: results.csv
//	  xlsx: sweep.xlsx
//	  plots: plots/
//	workers: 4
//	verbose: true
//
// Unknown keys are rejected. Setting both angle and sweep is an error.
package config
