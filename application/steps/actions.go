package steps

import (
	"errors"

	"ui_automation/application/locator"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Actions drives element-name+key interactions against a caller-supplied page
type Actions struct {
	finder *locator.Finder
	policy entities.FailurePolicy
	logger *logrus.Logger
}

// NewActions - creates action entry points. With PolicyLogAndContinue (the
// default for test steps) a failed resolve, wait or action is logged and the
// step carries on.
func NewActions(finder *locator.Finder, policy entities.FailurePolicy, logger *logrus.Logger) *Actions {
	if policy == "" {
		policy = entities.PolicyLogAndContinue
	}
	return &Actions{
		finder: finder,
		policy: policy,
		logger: logger,
	}
}

// Policy - returns the failure policy in effect
func (a *Actions) Policy() entities.FailurePolicy {
	return a.policy
}

// Click - clicks the first element matching element+key
func (a *Actions) Click(page interfaces.Page, element, key string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionClick, Element: element, Key: key})
}

// Fill - fills an input with value
func (a *Actions) Fill(page interfaces.Page, element, key, value string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionFill, Element: element, Key: key, Value: &value})
}

// SelectOption - selects the option with the given value or label
func (a *Actions) SelectOption(page interfaces.Page, element, key, value string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionSelect, Element: element, Key: key, Value: &value})
}

// Check - checks a checkbox or radio
func (a *Actions) Check(page interfaces.Page, element, key string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionCheck, Element: element, Key: key})
}

// Uncheck - unchecks a checkbox
func (a *Actions) Uncheck(page interfaces.Page, element, key string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionUncheck, Element: element, Key: key})
}

// Hover - moves the pointer over the element
func (a *Actions) Hover(page interfaces.Page, element, key string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionHover, Element: element, Key: key})
}

// Type - types text key by key into the element
func (a *Actions) Type(page interfaces.Page, element, key, text string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionType, Element: element, Key: key, Value: &text})
}

// Press - presses a single key (e.g. "Enter") on the element
func (a *Actions) Press(page interfaces.Page, element, key, keyName string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionPress, Element: element, Key: key, Value: &keyName})
}

// DoubleClick - double-clicks the element
func (a *Actions) DoubleClick(page interfaces.Page, element, key string) error {
	return a.Perform(page, entities.ActionRequest{Action: entities.ActionDoubleClick, Element: element, Key: key})
}

// Perform - resolves the request's element, waits for it and then acts on it.
// The returned error is always nil unless the policy is PolicyPropagate.
func (a *Actions) Perform(page interfaces.Page, req entities.ActionRequest) error {
	err := a.perform(page, req)
	if err == nil {
		return nil
	}
	if !a.policy.Swallows() {
		return err
	}

	entry := a.logger.WithError(err).WithFields(logrus.Fields{
		"action":  req.Action,
		"element": req.Element,
		"key":     req.Key,
	})
	if isConfigurationDefect(err) {
		entry.Error("Element configuration is invalid, action skipped")
	} else {
		entry.Errorf("Failed to perform '%s' action on element by Locator '%s'", req.Action, req.Element+req.Key)
	}
	return nil
}

func (a *Actions) perform(page interfaces.Page, req entities.ActionRequest) error {
	if !req.Action.IsKnown() {
		return &entities.UnknownActionError{Action: req.Action}
	}

	target, err := a.finder.FindReady(page, req.Element, req.Key)
	if err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"action":   req.Action,
		"element":  req.Element,
		"key":      req.Key,
		"strategy": target.Descriptor.Strategy,
	}).Debug("Performing action")

	return locator.Perform(target.Locator, req.Action, req.Value)
}

// Title - returns the page title, warning when it is empty
func (a *Actions) Title(page interfaces.Page) (string, error) {
	title, err := page.Title()
	if err != nil {
		a.logger.WithError(err).Error("Failed to retrieve page title")
		return "", err
	}
	if title == "" {
		a.logger.Warn("The title of the page is empty.")
	} else {
		a.logger.Infof("Title of the page: %s", title)
	}
	return title, nil
}

func isConfigurationDefect(err error) bool {
	return errors.Is(err, entities.ErrUnknownStrategy) ||
		errors.Is(err, entities.ErrUnknownAction) ||
		errors.Is(err, entities.ErrUnknownRole) ||
		errors.Is(err, entities.ErrLookup)
}
