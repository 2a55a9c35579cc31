package linkage

import "math"

// Coefficients are the five dimensionless Freudenstein ratios of a LinkSet.
// They depend only on the link lengths, never on the input angle.
//
//	K1 = d/a
//	K2 = d/c
//	K3 = (a² − b² + c² + d²) / (2ac)
//	K4 = d/b
//	K5 = (c² − d² − a² − b²) / (2ab)
type Coefficients struct {
	K1, K2, K3, K4, K5 float64
}

// NewCoefficients computes K1..K5 for ls.
//
// A LinkSet built through New always yields finite coefficients. The zero
// LinkSet yields NaN/Inf values, which Solve turns into None angles.
func NewCoefficients(ls LinkSet) Coefficients {
	a, b, c, d := ls.a, ls.b, ls.c, ls.d

	return Coefficients{
		K1: d / a,
		K2: d / c,
		K3: (a*a - b*b + c*c + d*d) / (2 * a * c),
		K4: d / b,
		K5: (c*c - d*d - a*a - b*b) / (2 * a * b),
	}
}

// Finite reports whether all five ratios are finite.
func (k Coefficients) Finite() bool {
	return finite(k.K1, k.K2, k.K3, k.K4, k.K5)
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
