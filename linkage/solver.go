package linkage

// BranchResult holds both assembly branches of the coupler angle (Deg3)
// and the rocker angle (Deg4) for one crank angle.
//
// Open values pair only with open values and crossed with crossed; mixing
// them does not describe a closed linkage. Use Pose to read a pair.
type BranchResult struct {
	Deg3Open    Angle
	Deg3Crossed Angle
	Deg4Open    Angle
	Deg4Crossed Angle
}

// Solve: Freudenstein closed-form position analysis for one crank angle.
//
// Description:
//
//	Substituting t = tan(θ/2) into the vector-loop closure of the four-bar
//	linkage yields one quadratic per unknown angle. Solving both directly
//	gives the open and crossed assemblies without iteration.
//
// Algorithm Outline:
//  1. Build the rocker system A,B,C (RockerQuadratic) and the coupler
//     system D,E,F (CouplerQuadratic) from deg2 and k.
//  2. disc4 = B² − 4AC, disc3 = E² − 4DF.
//  3. θ4 open/crossed = 2·atand((−B ∓ √disc4) / 2A);
//     θ3 open/crossed = 2·atand((−E ∓ √disc3) / 2D).
//  4. A negative discriminant, a zero leading coefficient or a non-finite
//     value marks both branches of that unknown as None.
//
// Complexity:
//
//	Time = O(1), Memory = O(1).
//
// Solve never panics; NaN deg2 or non-finite coefficients yield an
// all-None result.
func Solve(deg2 float64, k Coefficients) BranchResult {
	var res BranchResult
	res.Deg4Open, res.Deg4Crossed = RockerQuadratic(deg2, k).HalfAngleRoots()
	res.Deg3Open, res.Deg3Crossed = CouplerQuadratic(deg2, k).HalfAngleRoots()

	return res
}

// Coupler returns the θ3 value of the given branch.
func (r BranchResult) Coupler(cfg Configuration) Angle {
	if cfg == Crossed {
		return r.Deg3Crossed
	}

	return r.Deg3Open
}

// Rocker returns the θ4 value of the given branch.
func (r BranchResult) Rocker(cfg Configuration) Angle {
	if cfg == Crossed {
		return r.Deg4Crossed
	}

	return r.Deg4Open
}

// Pose assembles the (deg2, θ3, θ4) triple of one branch. ok is false
// when either angle of that branch is None.
func (r BranchResult) Pose(deg2 float64, cfg Configuration) (Pose, bool) {
	d3, ok3 := r.Coupler(cfg).Value()
	d4, ok4 := r.Rocker(cfg).Value()
	if !ok3 || !ok4 {
		return Pose{}, false
	}

	return Pose{Deg2: deg2, Deg3: d3, Deg4: d4}, true
}

// MissingRocker reports whether θ4 has no real solution.
func (r BranchResult) MissingRocker() bool {
	return !r.Deg4Open.OK() && !r.Deg4Crossed.OK()
}

// MissingCoupler reports whether θ3 has no real solution.
func (r BranchResult) MissingCoupler() bool {
	return !r.Deg3Open.OK() && !r.Deg3Crossed.OK()
}

// Solved reports whether all four angles are present.
func (r BranchResult) Solved() bool {
	return r.Deg3Open.OK() && r.Deg3Crossed.OK() && r.Deg4Open.OK() && r.Deg4Crossed.OK()
}

// AnyReal reports whether at least one branch yields a full pose.
func (r BranchResult) AnyReal() bool {
	_, open := r.Pose(0, Open)
	_, crossed := r.Pose(0, Crossed)

	return open || crossed
}
