// Package render draws a posed four-bar linkage with gonum/plot.
//
// Each figure shows the crank (A→B), coupler (B→C), rocker (C→D) and
// ground (A→D) links, the four labelled joints and a title carrying the
// three joint angles. Axes share one scale so the geometry is not
// distorted.
//
//	p, err := render.Plot(ls, pose, "Open Configuration")
//	if err != nil { ... }
//	err = render.Save(p, "open.png")
//
// Configurations builds one figure per assembly branch that exists at a
// sample; unsolved branches are skipped.
package render
