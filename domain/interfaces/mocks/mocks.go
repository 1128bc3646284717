// Package mocks provides testify mocks for the browser, registry and storage interfaces.
package mocks

import (
	"context"
	"time"

	"ui_automation/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// -- Page Mock --

// MockPage mocks interfaces.Page.
type MockPage struct {
	mock.Mock
}

func (m *MockPage) Locator(selector string) interfaces.Locator {
	args := m.Called(selector)
	return locatorArg(args, 0)
}

func (m *MockPage) GetByRole(role string, opts *interfaces.RoleOptions) interfaces.Locator {
	args := m.Called(role, opts)
	return locatorArg(args, 0)
}

func (m *MockPage) GetByText(text string) interfaces.Locator {
	return locatorArg(m.Called(text), 0)
}

func (m *MockPage) GetByAltText(text string) interfaces.Locator {
	return locatorArg(m.Called(text), 0)
}

func (m *MockPage) GetByTitle(text string) interfaces.Locator {
	return locatorArg(m.Called(text), 0)
}

func (m *MockPage) GetByPlaceholder(text string) interfaces.Locator {
	return locatorArg(m.Called(text), 0)
}

func (m *MockPage) GetByLabel(text string) interfaces.Locator {
	return locatorArg(m.Called(text), 0)
}

func (m *MockPage) GetByTestID(testID string) interfaces.Locator {
	return locatorArg(m.Called(testID), 0)
}

func (m *MockPage) Title() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPage) Screenshot() ([]byte, error) {
	args := m.Called()
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

// -- Locator Mock --

// MockLocator mocks interfaces.Locator. First returns the receiver unless an
// expectation for First is registered.
type MockLocator struct {
	mock.Mock
	Name string
}

func (m *MockLocator) First() interfaces.Locator {
	if !m.hasExpectation("First") {
		return m
	}
	return locatorArg(m.Called(), 0)
}

func (m *MockLocator) All() ([]interfaces.Locator, error) {
	args := m.Called()
	ls, _ := args.Get(0).([]interfaces.Locator)
	return ls, args.Error(1)
}

func (m *MockLocator) Click() error { return m.Called().Error(0) }
func (m *MockLocator) Fill(value string) error { return m.Called(value).Error(0) }
func (m *MockLocator) SelectOption(value string) error {
	return m.Called(value).Error(0)
}
func (m *MockLocator) Check() error { return m.Called().Error(0) }
func (m *MockLocator) Uncheck() error { return m.Called().Error(0) }
func (m *MockLocator) Hover() error { return m.Called().Error(0) }
func (m *MockLocator) Type(text string) error { return m.Called(text).Error(0) }
func (m *MockLocator) Press(key string) error { return m.Called(key).Error(0) }
func (m *MockLocator) DoubleClick() error { return m.Called().Error(0) }

func (m *MockLocator) WaitForVisible(timeout time.Duration) error {
	return m.Called(timeout).Error(0)
}

func (m *MockLocator) InnerText() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockLocator) InputValue() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockLocator) IsEnabled() (bool, error) { return boolResult(m.Called()) }
func (m *MockLocator) IsChecked() (bool, error) { return boolResult(m.Called()) }
func (m *MockLocator) IsVisible() (bool, error) { return boolResult(m.Called()) }
func (m *MockLocator) IsHidden() (bool, error) { return boolResult(m.Called()) }

func (m *MockLocator) Describe() string {
	if m.Name != "" {
		return m.Name
	}
	return "mock-locator"
}

func (m *MockLocator) hasExpectation(method string) bool {
	for _, c := range m.ExpectedCalls {
		if c.Method == method {
			return true
		}
	}
	return false
}

// -- Registry Mock --

// MockRegistry mocks interfaces.ElementRegistry.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Lookup(element, key string) (string, error) {
	args := m.Called(element, key)
	return args.String(0), args.Error(1)
}

// -- Artifact Store Mock --

// MockArtifactStore mocks interfaces.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) SaveScreenshot(scenario string, png []byte) (string, error) {
	args := m.Called(scenario, png)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) StorageStatePath() string {
	return m.Called().String(0)
}

func (m *MockArtifactStore) HasStorageState() bool {
	return m.Called().Bool(0)
}

// -- Session Mock --

// MockSession mocks interfaces.Session.
type MockSession struct {
	mock.Mock
}

func (m *MockSession) NewPage(ctx context.Context) (interfaces.Page, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(interfaces.Page)
	return p, args.Error(1)
}

func (m *MockSession) Navigate(ctx context.Context, page interfaces.Page, url string) error {
	return m.Called(ctx, page, url).Error(0)
}

func (m *MockSession) ClosePage(page interfaces.Page) error {
	return m.Called(page).Error(0)
}

func (m *MockSession) Close() error {
	return m.Called().Error(0)
}

func locatorArg(args mock.Arguments, i int) interfaces.Locator {
	l, _ := args.Get(i).(interfaces.Locator)
	return l
}

func boolResult(args mock.Arguments) (bool, error) {
	return args.Bool(0), args.Error(1)
}

var (
	_ interfaces.Page            = (*MockPage)(nil)
	_ interfaces.Locator         = (*MockLocator)(nil)
	_ interfaces.ElementRegistry = (*MockRegistry)(nil)
	_ interfaces.ArtifactStore   = (*MockArtifactStore)(nil)
	_ interfaces.Session         = (*MockSession)(nil)
)
