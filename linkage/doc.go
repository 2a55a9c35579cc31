// Package linkage solves the position problem of a planar four-bar linkage
// in closed form using Freudenstein's method.
//
// 🚀 What is it?
//
//	Given four link lengths (crank a, coupler b, rocker c, ground d) and the
//	crank angle θ2, the remaining joint angles θ3 (coupler) and θ4 (rocker)
//	follow from two quadratics in tan(θ/2). Each quadratic has two roots,
//	one per assembly branch:
//	  • open: the "−√disc" root of both quadratics
//	  • crossed: the "+√disc" root of both quadratics
//
// ✨ Key features:
//   - LinkSet: validated, immutable link lengths (New / MustNew)
//   - Classify: Grashof / non-Grashof check (a+b ≤ c+d)
//   - NewCoefficients: the five Freudenstein ratios K1..K5, computed once
//   - Solve: both branches of θ3 and θ4 for one input angle
//   - Angle: tagged optional; None marks "no real solution"
//   - Joints / ClosureResidual: joint coordinates and the loop-closure check
//
// ⚙️ Usage:
//
//	ls, err := linkage.New(10, 20, 15, 18)
//	if err != nil {
//	  // ErrNonPositiveLength or ErrNonFiniteLength
//	}
//	k := linkage.NewCoefficients(ls)
//	res := linkage.Solve(45, k)
//	if pose, ok := res.Pose(45, linkage.Open); ok {
//	  fmt.Println(pose.Deg3, pose.Deg4)
//	}
//
// Failure semantics:
//
//	Solve never panics and never returns an error. A negative discriminant,
//	a zero leading coefficient or any non-finite intermediate value turns
//	the affected pair of branch angles into None.
//
// Geometry convention:
//
//	A is the crank pivot at the origin, D the rocker pivot at (d, 0).
//	B = A + a·(cos θ2, sin θ2), C = D + c·(cos θ4, sin θ4), and the loop
//	closes when |C − B| = b with θ3 the direction of B→C.
package linkage
