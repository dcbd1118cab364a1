package formula

// Substitute applies env (a mapping from variable name to replacement Term)
// to f. It is capture-avoiding: a quantifier's bound variable is removed
// from env before descending into its restriction/matrix.
func Substitute(f Formula, env map[string]Term) Formula {
	switch fv := f.(type) {
	case Atom:
		return fv
	case Predicate:
		newTerms := make([]Term, len(fv.Terms))
		for i, t := range fv.Terms {
			newTerms[i] = SubstituteTerm(t, env)
		}
		return Predicate{Name: fv.Name, Terms: newTerms}
	case Compound:
		newArgs := make([]Formula, len(fv.Args))
		for i, a := range fv.Args {
			newArgs[i] = Substitute(a, env)
		}
		return Compound{Connective: fv.Connective, Args: newArgs}
	case RestrictedExistential:
		inner := withoutKey(env, fv.Var)
		return RestrictedExistential{
			Var:         fv.Var,
			Restriction: Substitute(fv.Restriction, inner),
			Matrix:      Substitute(fv.Matrix, inner),
		}
	case RestrictedUniversal:
		inner := withoutKey(env, fv.Var)
		return RestrictedUniversal{
			Var:         fv.Var,
			Restriction: Substitute(fv.Restriction, inner),
			Matrix:      Substitute(fv.Matrix, inner),
		}
	default:
		return f
	}
}

func withoutKey(env map[string]Term, key string) map[string]Term {
	if _, ok := env[key]; !ok {
		return env
	}
	out := make(map[string]Term, len(env))
	for k, v := range env {
		if k != key {
			out[k] = v
		}
	}
	return out
}
