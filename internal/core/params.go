package core

import (
	"fmt"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// Parameter describes a single tunable value exposed by a solver.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a solver.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParametersProvider is implemented by solvers with tunable constants.
type ParametersProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam describes an integer tunable.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// Int64Param describes a 64-bit integer tunable.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// IntFromMap overwrites *dst with cfg[key] when it parses as an integer
// accepted by ok. A nil ok accepts every value.
func IntFromMap(cfg map[string]string, key string, dst *int, ok func(int) bool) {
	v, present := cfg[key]
	if !present {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	if ok != nil && !ok(parsed) {
		return
	}
	*dst = parsed
}

// Positive accepts values greater than zero.
func Positive(v int) bool { return v > 0 }

// NonNegative accepts values of zero or more.
func NonNegative(v int) bool { return v >= 0 }

// CheckParams reports an error unless s exposes every key in cfg with the
// given value. Factories fall back to defaults for values their validators
// reject; this turns that fallback into an error.
func CheckParams(s Solver, cfg map[string]string) error {
	if len(cfg) == 0 {
		return nil
	}
	provider, ok := s.(ParametersProvider)
	if !ok {
		return fmt.Errorf("%s has no tunables", s.Name())
	}
	exposed := map[string]Parameter{}
	for _, g := range provider.Parameters().Groups {
		for _, p := range g.Params {
			exposed[p.Key] = p
		}
	}
	for key, value := range cfg {
		p, ok := exposed[key]
		if !ok {
			return fmt.Errorf("%s has no tunable %q", s.Name(), key)
		}
		if !sameValue(p, value) {
			return fmt.Errorf("%s rejected %s=%s", s.Name(), key, value)
		}
	}
	return nil
}

func sameValue(p Parameter, value string) bool {
	if p.Type != ParamTypeInt {
		return p.Value == value
	}
	want, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	got, err := strconv.ParseInt(p.Value, 10, 64)
	return err == nil && got == want
}
