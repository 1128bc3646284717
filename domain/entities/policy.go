package entities

import "fmt"

// FailurePolicy declares what a call site does with an error
type FailurePolicy string

const (
	// PolicyPropagate returns the error to the caller
	PolicyPropagate FailurePolicy = "propagate"
	// PolicyLogAndContinue logs the error and reports success
	PolicyLogAndContinue FailurePolicy = "log"
	// PolicyCoerceToDefault logs the error and returns the zero result
	PolicyCoerceToDefault FailurePolicy = "default"
)

// ParseFailurePolicy accepts the names used in configuration
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case PolicyPropagate, PolicyLogAndContinue, PolicyCoerceToDefault:
		return FailurePolicy(s), nil
	case "":
		return PolicyLogAndContinue, nil
	}
	return "", fmt.Errorf("unknown failure policy %q (want propagate, log or default)", s)
}

// Swallows reports whether errors stop at this call site
func (p FailurePolicy) Swallows() bool {
	return p != PolicyPropagate
}
