package steps

import (
	"ui_automation/application/locator"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Inspector answers point-in-time state questions about an element
type Inspector struct {
	finder *locator.Finder
	policy entities.FailurePolicy
	logger *logrus.Logger
}

// NewInspector - creates a state inspector. With PolicyCoerceToDefault (the
// default) any failure is logged and reported as false.
func NewInspector(finder *locator.Finder, policy entities.FailurePolicy, logger *logrus.Logger) *Inspector {
	if policy == "" {
		policy = entities.PolicyCoerceToDefault
	}
	return &Inspector{
		finder: finder,
		policy: policy,
		logger: logger,
	}
}

type stateRead func(interfaces.Locator) (bool, error)

func (i *Inspector) inspect(page interfaces.Page, element, key, state string, read stateRead) (bool, error) {
	result, err := func() (bool, error) {
		target, err := i.finder.FindReady(page, element, key)
		if err != nil {
			return false, err
		}
		return read(target.Locator.First())
	}()

	if err != nil {
		if !i.policy.Swallows() {
			return false, err
		}
		i.logger.WithError(err).WithFields(logrus.Fields{
			"element": element,
			"key":     key,
		}).Errorf("Failed to check if element '%s' is %s", element, state)
		return false, nil
	}

	i.logger.Infof("Element '%s' is %s: %t", element, state, result)
	return result, nil
}

// IsEnabled - reports whether the element is enabled
func (i *Inspector) IsEnabled(page interfaces.Page, element, key string) (bool, error) {
	return i.inspect(page, element, key, "enabled", interfaces.Locator.IsEnabled)
}

// IsDisabled - reports whether the element is disabled
func (i *Inspector) IsDisabled(page interfaces.Page, element, key string) (bool, error) {
	return i.inspect(page, element, key, "disabled", func(l interfaces.Locator) (bool, error) {
		enabled, err := l.IsEnabled()
		return !enabled, err
	})
}

// IsChecked - reports whether the checkbox or radio is checked
func (i *Inspector) IsChecked(page interfaces.Page, element, key string) (bool, error) {
	return i.inspect(page, element, key, "checked", interfaces.Locator.IsChecked)
}

// IsVisible - reports whether the element is visible
func (i *Inspector) IsVisible(page interfaces.Page, element, key string) (bool, error) {
	return i.inspect(page, element, key, "visible", interfaces.Locator.IsVisible)
}

// IsHidden - reports whether the element is hidden
func (i *Inspector) IsHidden(page interfaces.Page, element, key string) (bool, error) {
	return i.inspect(page, element, key, "hidden", interfaces.Locator.IsHidden)
}

// Locate - returns the first element matching element+key once it is ready.
// Errors always propagate.
func (i *Inspector) Locate(page interfaces.Page, element, key string) (interfaces.Locator, error) {
	target, err := i.finder.FindReady(page, element, key)
	if err != nil {
		i.logger.WithError(err).Errorf("Failed to retrieve element handle for element '%s'", element+key)
		return nil, err
	}
	return target.Locator.First(), nil
}

// LocateAll - returns every element matching element+key, empty when none match
func (i *Inspector) LocateAll(page interfaces.Page, element, key string) ([]interfaces.Locator, error) {
	target, err := i.finder.FindReady(page, element, key)
	if err != nil {
		i.logger.WithError(err).Errorf("Failed to retrieve element handles for element '%s'", element+key)
		return nil, err
	}

	all, err := target.Locator.All()
	if err != nil {
		i.logger.WithError(err).Errorf("Failed to retrieve element handles for element '%s'", element+key)
		return nil, err
	}
	if all == nil {
		all = []interfaces.Locator{}
	}
	return all, nil
}
