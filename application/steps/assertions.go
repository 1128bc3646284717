package steps

import (
	"strings"

	"ui_automation/application/locator"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Assertions evaluates text, value and visibility predicates. Every failure
// is returned to the caller.
type Assertions struct {
	text    *locator.Finder
	visible *locator.Finder
	logger  *logrus.Logger
}

// NewAssertions - creates the assertion engine. text resolves for the text and
// value predicates and is expected to carry entities.CapabilityTextQuery;
// visible resolves for the visibility predicate.
func NewAssertions(text, visible *locator.Finder, logger *logrus.Logger) *Assertions {
	return &Assertions{
		text:    text,
		visible: visible,
		logger:  logger,
	}
}

// AssertContainsText - fails unless the element's inner text contains expected
func (a *Assertions) AssertContainsText(page interfaces.Page, element, key, expected string) error {
	target, err := a.text.FindReady(page, element, key)
	if err != nil {
		return a.fail(element, key, resolveFailure(target, entities.AssertContainsText, expected, err))
	}

	actual, err := target.Locator.First().InnerText()
	if err != nil {
		return a.fail(element, key, &entities.AssertionError{
			Kind: entities.AssertContainsText, Expected: expected, Locator: target.Descriptor.Value, Cause: err,
		})
	}
	if !strings.Contains(actual, expected) {
		return a.fail(element, key, &entities.AssertionError{
			Kind: entities.AssertContainsText, Expected: expected, Actual: actual, Locator: target.Descriptor.Value,
		})
	}
	return nil
}

// AssertHasValue - fails unless the element's input value equals expected
func (a *Assertions) AssertHasValue(page interfaces.Page, element, key, expected string) error {
	target, err := a.text.FindReady(page, element, key)
	if err != nil {
		return a.fail(element, key, resolveFailure(target, entities.AssertHasValue, expected, err))
	}

	actual, err := target.Locator.First().InputValue()
	if err != nil {
		return a.fail(element, key, &entities.AssertionError{
			Kind: entities.AssertHasValue, Expected: expected, Locator: target.Descriptor.Value, Cause: err,
		})
	}
	if actual != expected {
		return a.fail(element, key, &entities.AssertionError{
			Kind: entities.AssertHasValue, Expected: expected, Actual: actual, Locator: target.Descriptor.Value,
		})
	}
	return nil
}

// AssertElementVisible - fails unless the first matching element is visible
func (a *Assertions) AssertElementVisible(page interfaces.Page, element, key string) error {
	target, err := a.visible.FindReady(page, element, key)
	if err != nil {
		return a.fail(element, key, resolveFailure(target, entities.AssertVisible, "", err))
	}

	visible, err := target.Locator.First().IsVisible()
	if err != nil || !visible {
		return a.fail(element, key, &entities.AssertionError{
			Kind: entities.AssertVisible, Locator: target.Descriptor.Value, Cause: err,
		})
	}
	return nil
}

// resolveFailure keeps configuration errors as they are and turns a failed
// strict wait into an assertion failure on the element
func resolveFailure(target *locator.Target, kind entities.AssertionKind, expected string, err error) error {
	if target == nil {
		return err
	}
	return &entities.AssertionError{Kind: kind, Expected: expected, Locator: target.Descriptor.Value, Cause: err}
}

func (a *Assertions) fail(element, key string, err error) error {
	a.logger.WithError(err).WithFields(logrus.Fields{
		"element": element,
		"key":     key,
	}).Error("Assertion failed")
	return err
}
