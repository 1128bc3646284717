package interfaces

import (
	"time"
)

// RoleOptions filters a role query by accessible name
type RoleOptions struct {
	Name  string
	Exact bool
}

// Page is the browser tab capability the core consumes. The caller owns its lifecycle.
type Page interface {
	// Locator queries by CSS, XPath or any raw selector string
	Locator(selector string) Locator

	// GetByRole queries by ARIA role, optionally filtered by accessible name
	GetByRole(role string, opts *RoleOptions) Locator

	GetByText(text string) Locator
	GetByAltText(text string) Locator
	GetByTitle(text string) Locator
	GetByPlaceholder(text string) Locator
	GetByLabel(text string) Locator
	GetByTestID(testID string) Locator

	// Title returns the document title
	Title() (string, error)

	// Screenshot captures the full page as PNG
	Screenshot() ([]byte, error)
}

// Locator is a live, lazily evaluated handle to zero or more elements
type Locator interface {
	First() Locator
	All() ([]Locator, error)

	Click() error
	Fill(value string) error
	SelectOption(value string) error
	Check() error
	Uncheck() error
	Hover() error
	Type(text string) error
	Press(key string) error
	DoubleClick() error

	// WaitForVisible blocks until the first match is visible or timeout elapses
	WaitForVisible(timeout time.Duration) error

	InnerText() (string, error)
	InputValue() (string, error)

	IsEnabled() (bool, error)
	IsChecked() (bool, error)
	IsVisible() (bool, error)
	IsHidden() (bool, error)

	// Describe renders the query for logs
	Describe() string
}
