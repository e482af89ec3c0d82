package execution

import "printshop/internal/pkg/errs"

// Variables is the opaque set of named parameters recorded against an
// execution. Keys come from a process-specific schema understood only by the
// caller; the core stores arbitrary string key/value pairs.
type Variables map[string]string

// Validate rejects empty variable names. Values may be empty.
func (v Variables) Validate() error {
	for name := range v {
		if name == "" {
			return errs.NewValueIsRequiredError("variable name")
		}
	}
	return nil
}

// Merge returns a new set combining v with other. Keys present in both are
// overwritten by other, which lets completion-time parameters correct
// start-time ones while distinct keys accumulate.
func (v Variables) Merge(other Variables) Variables {
	merged := make(Variables, len(v)+len(other))
	for name, value := range v {
		merged[name] = value
	}
	for name, value := range other {
		merged[name] = value
	}
	return merged
}

// Clone returns a shallow copy so callers cannot mutate an execution's
// variable set through a returned map.
func (v Variables) Clone() Variables {
	if v == nil {
		return nil
	}
	cloned := make(Variables, len(v))
	for name, value := range v {
		cloned[name] = value
	}
	return cloned
}
