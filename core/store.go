package core

import "sort"

// Builtin variables available to every program.
var builtins = map[string]Value{
	"newl": String("\n"),
	"spce": String(" "),
	"dott": String("."),
}

// IsBuiltin reports whether name is bound before a program starts.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Variables is the flat variable namespace of a run.
type Variables struct {
	vars map[string]Value
}

// NewVariables creates a store seeded with the builtin variables.
func NewVariables() *Variables {
	v := &Variables{vars: make(map[string]Value, len(builtins))}
	for name, val := range builtins {
		v.vars[name] = val
	}

	return v
}

// Get returns the value bound to name.
func (v *Variables) Get(name string) (Value, bool) {
	val, ok := v.vars[name]
	return val, ok
}

// Number returns the number bound to name.
func (v *Variables) Number(name string) (float64, error) {
	val, ok := v.vars[name]
	if !ok {
		return 0, ErrVariableDoesNotExist
	}

	switch val := val.(type) {
	case Number:
		return float64(val), nil
	case String:
		return 0, ErrArithmeticOnString
	default:
		panic("unknown value type")
	}
}

// Set binds name to val, rejecting a change of type tag. The error is
// ErrTypeChangeToNumber or ErrTypeChangeToString.
func (v *Variables) Set(name string, val Value) error {
	if old, ok := v.vars[name]; ok && old.Kind() != val.Kind() {
		if val.Kind() == KindNumber {
			return ErrTypeChangeToNumber
		}
		return ErrTypeChangeToString
	}

	v.vars[name] = val

	return nil
}

// Bind binds name to val regardless of any previous binding.
func (v *Variables) Bind(name string, val Value) {
	v.vars[name] = val
}

// Names returns the bound names in sorted order.
func (v *Variables) Names() []string {
	names := make([]string, 0, len(v.vars))
	for name := range v.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of bound variables.
func (v *Variables) Len() int {
	return len(v.vars)
}
