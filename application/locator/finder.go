package locator

import (
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Target is a resolved element reference together with what produced it
type Target struct {
	Element    string
	Key        string
	Descriptor entities.LocatorDescriptor
	Locator    interfaces.Locator
}

// Finder turns an element name and key into a locator on a page
type Finder struct {
	registry interfaces.ElementRegistry
	resolver *Resolver
	waiter   *Waiter
}

// NewFinder wires a registry, resolver and waiter together
func NewFinder(registry interfaces.ElementRegistry, resolver *Resolver, waiter *Waiter) *Finder {
	return &Finder{
		registry: registry,
		resolver: resolver,
		waiter:   waiter,
	}
}

// Find looks up, parses and resolves element+key without waiting
func (f *Finder) Find(page interfaces.Page, element, key string) (*Target, error) {
	raw, err := f.registry.Lookup(element, key)
	if err != nil {
		return nil, err
	}

	d := entities.ParseDescriptor(raw)
	loc, err := f.resolver.Resolve(d, page)
	if err != nil {
		return nil, err
	}

	return &Target{Element: element, Key: key, Descriptor: d, Locator: loc}, nil
}

// FindReady is Find followed by a readiness wait
func (f *Finder) FindReady(page interfaces.Page, element, key string) (*Target, error) {
	t, err := f.Find(page, element, key)
	if err != nil {
		return nil, err
	}
	if err := f.waiter.AwaitVisible(t.Locator); err != nil {
		return t, err
	}
	return t, nil
}
