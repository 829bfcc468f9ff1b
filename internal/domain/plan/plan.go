package plan

import (
	"fmt"
	"strings"
)

// Plan is a subscription plan. It determines which features a request may use
// and which emotion tier the classifiers work against.
type Plan string

const (
	Basic Plan = "basic"
	Plus  Plan = "plus"
	Pro   Plan = "pro"
)

// Features is the per-request feature configuration derived from a Plan.
// Created once per request, never mutated.
type Features struct {
	MaxSeconds  int
	ModelSize   string
	Translate   bool
	Classify    bool
	ClassifyExt bool
	Intensity   bool
}

// rules is the static plan policy table. Caps and model sizes are business
// constants, not tunables.
var rules = map[Plan]Features{
	Basic: {
		MaxSeconds:  10 * 60,
		ModelSize:   "tiny",
		Translate:   true,
		Classify:    true,
		ClassifyExt: false,
		Intensity:   false,
	},
	Plus: {
		MaxSeconds:  45 * 60,
		ModelSize:   "medium",
		Translate:   true,
		Classify:    true,
		ClassifyExt: true,
		Intensity:   false,
	},
	Pro: {
		MaxSeconds:  4 * 60 * 60,
		ModelSize:   "turbo",
		Translate:   true,
		Classify:    true,
		ClassifyExt: true,
		Intensity:   true,
	},
}

// ConfigurationError reports a plan value outside the enumeration. With
// validated inputs this is unreachable.
type ConfigurationError struct {
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown plan %q", e.Value)
}

// QuotaError reports a request whose duration exceeds the plan cap.
type QuotaError struct {
	Plan       Plan
	Duration   int
	MaxSeconds int
}

func (e *QuotaError) Error() string {
	name := strings.ToUpper(string(e.Plan)[:1]) + string(e.Plan)[1:]
	return fmt.Sprintf("%s plan limited to %d-minute audio", name, e.MaxSeconds/60)
}

// Parse normalizes a plan string. Empty defaults to basic.
func Parse(s string) (Plan, error) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case Basic, "":
		return Basic, nil
	case Plus:
		return Plus, nil
	case Pro:
		return Pro, nil
	default:
		return "", &ConfigurationError{Value: s}
	}
}

// Resolve returns the feature configuration for a plan.
func Resolve(p Plan) (Features, error) {
	f, ok := rules[p]
	if !ok {
		return Features{}, &ConfigurationError{Value: string(p)}
	}
	return f, nil
}

// Enforce validates a request against the plan before any expensive work
// starts. Client-supplied feature toggles are never trusted: the returned
// Features come straight from the policy table. DurationSec <= 0 means the
// duration is unknown and the cap is checked later, after normalization.
// Boundary: duration == cap is allowed.
func Enforce(p Plan, durationSec int) (Features, error) {
	f, err := Resolve(p)
	if err != nil {
		return Features{}, err
	}
	if durationSec > 0 && durationSec > f.MaxSeconds {
		return Features{}, &QuotaError{Plan: p, Duration: durationSec, MaxSeconds: f.MaxSeconds}
	}
	return f, nil
}
