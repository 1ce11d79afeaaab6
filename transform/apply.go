package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trajolab/trajo/trajectory"
)

// opSpec binds one named operation to its argument contract: a printable
// signature, the set of accepted argument keys, and the applying closure.
// The table below is the closed enumeration of supported operations —
// dispatch is a map lookup, never reflection.
type opSpec struct {
	signature string
	keys      []string
	apply     func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error)
}

var ops = map[string]opSpec{
	"minmax": {
		signature: "minmax(lo float64 = 0, hi float64 = 1)",
		keys:      []string{"lo", "hi"},
		apply: func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error) {
			lo, err := floatArg(args, "lo", 0)
			if err != nil {
				return nil, err
			}
			hi, err := floatArg(args, "hi", 1)
			if err != nil {
				return nil, err
			}
			return MinMax(t, lo, hi)
		},
	},
	"unminmax": {
		signature: "unminmax(origMin []float64, origMax []float64)",
		keys:      []string{"origMin", "origMax"},
		apply: func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error) {
			origMin, err := vectorArg(args, "origMin", true)
			if err != nil {
				return nil, err
			}
			origMax, err := vectorArg(args, "origMax", true)
			if err != nil {
				return nil, err
			}
			return UnMinMax(t, origMin, origMax)
		},
	},
	"standardize": {
		signature: "standardize()",
		apply: func(t *trajectory.Trajectory, _ Args) (*trajectory.Trajectory, error) {
			return Standardize(t)
		},
	},
	"unstandardize": {
		signature: "unstandardize(mean []float64, std []float64)",
		keys:      []string{"mean", "std"},
		apply: func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error) {
			mean, err := vectorArg(args, "mean", true)
			if err != nil {
				return nil, err
			}
			std, err := vectorArg(args, "std", true)
			if err != nil {
				return nil, err
			}
			return UnStandardize(t, mean, std)
		},
	},
	"pca": {
		signature: "pca(whiten bool = true)",
		keys:      []string{"whiten"},
		apply: func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error) {
			whiten, err := boolArg(args, "whiten", true)
			if err != nil {
				return nil, err
			}
			return PCA(t, whiten)
		},
	},
	"relative": {
		signature: "relative()",
		apply: func(t *trajectory.Trajectory, _ Args) (*trajectory.Trajectory, error) {
			return Relative(t)
		},
	},
	"absolute": {
		signature: "absolute(initial []float64 = zeros)",
		keys:      []string{"initial"},
		apply: func(t *trajectory.Trajectory, args Args) (*trajectory.Trajectory, error) {
			initial, err := vectorArg(args, "initial", false)
			if err != nil {
				return nil, err
			}
			return Absolute(t, initial)
		},
	},
}

// aliases maps the short operation names of the original string-keyed API
// onto the canonical table entries.
var aliases = map[string]string{
	"standard":   "standardize",
	"unstandard": "unstandardize",
}

// Apply dispatches to a named operation from the closed table: minmax,
// unminmax, standardize, unstandardize, pca, relative, absolute (plus the
// short aliases standard and unstandard). Callers holding a function
// reference should simply call it — Apply exists to preserve the
// string-keyed API for configuration-driven pipelines.
//
// Returns ErrUnknownOp naming the attempted operation and listing the
// known ones, or ErrBadArgument naming the operation and echoing its
// expected signature when args do not match.
func Apply(t *trajectory.Trajectory, op string, args Args) (*trajectory.Trajectory, error) {
	name := op
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	spec, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("%q (known operations: %s): %w", op, strings.Join(Names(), ", "), ErrUnknownOp)
	}
	for key := range args {
		if !contains(spec.keys, key) {
			return nil, fmt.Errorf("operation %q: unknown argument %q (signature: %s): %w",
				op, key, spec.signature, ErrBadArgument)
		}
	}
	out, err := spec.apply(t, args)
	if err != nil {
		return nil, fmt.Errorf("operation %q (signature: %s): %w", op, spec.signature, err)
	}
	return out, nil
}

// Names returns the canonical operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// floatArg reads an optional float64 argument, accepting ints for
// convenience.
func floatArg(args Args, key string, def float64) (float64, error) {
	raw, ok := args[key]
	if !ok {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("argument %q: have %T, want float64: %w", key, raw, ErrBadArgument)
	}
}

// vectorArg reads a []float64 argument; required reports a missing key as
// an error, otherwise absence yields nil.
func vectorArg(args Args, key string, required bool) ([]float64, error) {
	raw, ok := args[key]
	if !ok {
		if required {
			return nil, fmt.Errorf("argument %q is required: %w", key, ErrBadArgument)
		}
		return nil, nil
	}
	v, ok := raw.([]float64)
	if !ok {
		return nil, fmt.Errorf("argument %q: have %T, want []float64: %w", key, raw, ErrBadArgument)
	}
	return v, nil
}

// boolArg reads an optional bool argument.
func boolArg(args Args, key string, def bool) (bool, error) {
	raw, ok := args[key]
	if !ok {
		return def, nil
	}
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q: have %T, want bool: %w", key, raw, ErrBadArgument)
	}
	return v, nil
}
