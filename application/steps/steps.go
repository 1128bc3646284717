// Package steps holds the element-name+key driven entry points used by test
// step definitions: actions, assertions and state inspection.
package steps

import (
	"time"

	"ui_automation/application/locator"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Options tunes waits and failure handling of the entry points
type Options struct {
	WaitTimeout      time.Duration
	StrictWait       bool
	ActionPolicy     entities.FailurePolicy
	InspectionPolicy entities.FailurePolicy
}

// Steps bundles the three entry point families over one registry
type Steps struct {
	*Actions
	*Assertions
	*Inspector
}

// New - wires resolvers, waiter and entry points for registry
func New(registry interfaces.ElementRegistry, opts Options, logger *logrus.Logger) *Steps {
	waiter := locator.NewWaiter(opts.WaitTimeout, opts.StrictWait, logger)
	full := locator.NewFinder(registry, locator.NewResolver(entities.CapabilityFull), waiter)
	text := locator.NewFinder(registry, locator.NewResolver(entities.CapabilityTextQuery), waiter)

	return &Steps{
		Actions:    NewActions(full, opts.ActionPolicy, logger),
		Assertions: NewAssertions(text, full, logger),
		Inspector:  NewInspector(full, opts.InspectionPolicy, logger),
	}
}
