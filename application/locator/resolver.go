package locator

import (
	"fmt"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// strategyFunc turns a descriptor value into a page query
type strategyFunc func(page interfaces.Page, value string) (interfaces.Locator, error)

func roleWithName(role string, exact bool) strategyFunc {
	return func(page interfaces.Page, value string) (interfaces.Locator, error) {
		return page.GetByRole(role, &interfaces.RoleOptions{Name: value, Exact: exact}), nil
	}
}

func prefixed(prefix string) strategyFunc {
	return func(page interfaces.Page, value string) (interfaces.Locator, error) {
		return page.Locator(prefix + value), nil
	}
}

func byRole(page interfaces.Page, value string) (interfaces.Locator, error) {
	role, ok := parseRole(value)
	if !ok {
		return nil, &entities.DescriptorError{
			Raw: entities.LocatorDescriptor{Strategy: entities.StrategyRole, Value: value}.String(),
			Err: fmt.Errorf("%w: %s", entities.ErrUnknownRole, value),
		}
	}
	return page.GetByRole(role, nil), nil
}

func byName(page interfaces.Page, value string) (interfaces.Locator, error) {
	return page.Locator("[name='" + value + "']"), nil
}

// query adapts a Page method expression such as interfaces.Page.GetByText
func query(get func(interfaces.Page, string) interfaces.Locator) strategyFunc {
	return func(page interfaces.Page, value string) (interfaces.Locator, error) {
		return get(page, value), nil
	}
}

var selector = query(interfaces.Page.Locator)

var strategies = map[entities.StrategyTag]strategyFunc{
	entities.StrategyXPath:       selector,
	entities.StrategyCSS:         selector,
	entities.StrategyHTMLTag:     selector,
	entities.StrategyButton:      roleWithName("button", false),
	entities.StrategyLinkText:    roleWithName("link", false),
	entities.StrategyLink:        roleWithName("link", true),
	entities.StrategyHeading:     roleWithName("heading", false),
	entities.StrategyHeading1:    roleWithName("heading", true),
	entities.StrategyText:        query(interfaces.Page.GetByText),
	entities.StrategyRole:        byRole,
	entities.StrategyAltText:     query(interfaces.Page.GetByAltText),
	entities.StrategyTitle:       query(interfaces.Page.GetByTitle),
	entities.StrategyPlaceholder: query(interfaces.Page.GetByPlaceholder),
	entities.StrategyLabel:       query(interfaces.Page.GetByLabel),
	entities.StrategyTestID:      query(interfaces.Page.GetByTestID),
	entities.StrategyID:          prefixed("#"),
	entities.StrategyName:        byName,
	entities.StrategyClass:       prefixed("."),
}

// Resolver maps descriptors to live locators for the strategies its capability allows.
// It holds no state between calls; every Resolve queries the page again.
type Resolver struct {
	capability entities.Capability
}

// NewResolver creates a resolver restricted to the given capability
func NewResolver(capability entities.Capability) *Resolver {
	return &Resolver{capability: capability}
}

// Capability returns the strategy set this resolver accepts
func (r *Resolver) Capability() entities.Capability {
	return r.capability
}

// Resolve builds the page query for d. Tags outside the capability fail with
// an *entities.UnknownStrategyError before the page is touched.
func (r *Resolver) Resolve(d entities.LocatorDescriptor, page interfaces.Page) (interfaces.Locator, error) {
	tag := d.Strategy.Canonical()
	fn, ok := strategies[tag]
	if !ok || !r.capability.Supports(tag) {
		return nil, &entities.UnknownStrategyError{Tag: d.Strategy, Capability: r.capability.Name()}
	}
	return fn(page, d.Value)
}

// Check reports whether d would resolve, without touching a page
func (r *Resolver) Check(d entities.LocatorDescriptor) error {
	tag := d.Strategy.Canonical()
	if _, ok := strategies[tag]; !ok || !r.capability.Supports(tag) {
		return &entities.UnknownStrategyError{Tag: d.Strategy, Capability: r.capability.Name()}
	}
	if tag == entities.StrategyRole {
		if _, ok := parseRole(d.Value); !ok {
			return fmt.Errorf("%w: %s", entities.ErrUnknownRole, d.Value)
		}
	}
	return nil
}
