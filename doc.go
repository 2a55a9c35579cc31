// Package fourbar is a closed-form position solver for planar four-bar
// linkages, built around Freudenstein's equation.
//
// 🚀 What is fourbar?
//
//	Give it four link lengths and a crank angle; it returns the coupler
//	and rocker angles of both assembly branches (open and crossed), or an
//	explicit "no real solution" marker where the linkage cannot close.
//
// ✨ Packages:
//
//	trig/   : degree-based sin/cos/atan helpers
//	linkage/: LinkSet, Grashof check, K1..K5, per-angle quadratic solver
//	sweep/  : angle sweep engine (range / single / list, optional fan-out)
//	export/ : CSV and XLSX writers for analysis runs
//	render/ : PNG/SVG drawings of posed linkages (gonum/plot)
//	config/ : YAML session files
//	cmd/fourbar: command-line front end
//
// Quick ASCII picture:
//
//	          C
//	   b    ╱ │
//	  B ───╯  │ c
//	a ╱       │
//	 A ───────D
//	     d
//
//	go get github.com/katalvlaran/fourbar
package fourbar
