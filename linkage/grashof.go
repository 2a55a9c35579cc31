package linkage

// Classify returns Grashof when a+b ≤ c+d and NonGrashof otherwise.
//
// The comparison is the crank+coupler against rocker+ground sum, which
// assumes the conventional a/b/c/d labelling. The equality case is Grashof.
func Classify(ls LinkSet) GrashofClass {
	if ls.a+ls.b <= ls.c+ls.d {
		return Grashof
	}

	return NonGrashof
}
