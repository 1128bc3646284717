package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownStrategy   = errors.New("unknown locator type")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownRole       = errors.New("unknown aria role")
	ErrWaitTimeout       = errors.New("element was not displayed in time")
	ErrAssertion         = errors.New("assertion failed")
	ErrMissingValue      = errors.New("action requires a value")
	ErrEmptyLocatorValue = errors.New("locator has no value")
	ErrLookup            = errors.New("element is not configured")
)

// UnknownStrategyError is returned when a descriptor names a strategy the
// resolving call site does not support
type UnknownStrategyError struct {
	Tag        StrategyTag
	Capability string
}

func (e *UnknownStrategyError) Error() string {
	if e.Capability != "" && e.Capability != CapabilityFull.Name() {
		return fmt.Sprintf("unknown locator type: %s (for %s lookups)", e.Tag, e.Capability)
	}
	return fmt.Sprintf("unknown locator type: %s", e.Tag)
}

func (e *UnknownStrategyError) Unwrap() error { return ErrUnknownStrategy }

// UnknownActionError is returned for verbs outside the supported set
type UnknownActionError struct {
	Action ActionKind
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// WaitTimeoutError wraps a failed readiness wait
type WaitTimeoutError struct {
	Locator string
	Timeout time.Duration
	Cause   error
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("element '%s' was not displayed within %s: %v", e.Locator, e.Timeout, e.Cause)
}

func (e *WaitTimeoutError) Is(target error) bool { return target == ErrWaitTimeout }

func (e *WaitTimeoutError) Unwrap() error { return e.Cause }

// AssertionKind identifies which predicate failed
type AssertionKind string

const (
	AssertContainsText AssertionKind = "text"
	AssertVisible      AssertionKind = "visible"
	AssertHasValue     AssertionKind = "value"
)

// AssertionError carries expected and actual values of a failed assertion
type AssertionError struct {
	Kind     AssertionKind
	Expected string
	Actual   string
	Locator  string
	Cause    error
}

func (e *AssertionError) Error() string {
	switch e.Kind {
	case AssertContainsText:
		return fmt.Sprintf("Text not found: Expected '%s' but found '%s' in element with locator '%s'", e.Expected, e.Actual, e.Locator)
	case AssertHasValue:
		return fmt.Sprintf("Value not found: Expected '%s' but found '%s' in element with locator '%s'", e.Expected, e.Actual, e.Locator)
	case AssertVisible:
		if e.Cause != nil {
			return fmt.Sprintf("Element is not visible: Locator '%s': %v", e.Locator, e.Cause)
		}
		return fmt.Sprintf("Element is not visible: Locator '%s'", e.Locator)
	}
	return fmt.Sprintf("assertion failed on locator '%s'", e.Locator)
}

func (e *AssertionError) Is(target error) bool { return target == ErrAssertion }

func (e *AssertionError) Unwrap() error { return e.Cause }

// LookupError is returned when an element name+key has no configured descriptor
type LookupError struct {
	Path string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to retrieve selector for element '%s'", e.Path)
}

func (e *LookupError) Unwrap() error { return ErrLookup }

// DescriptorError reports a descriptor string rejected by strict parsing or validation
type DescriptorError struct {
	Raw string
	Err error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid locator '%s': %v", e.Raw, e.Err)
}

func (e *DescriptorError) Unwrap() error { return e.Err }
