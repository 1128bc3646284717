package steps

import (
	"errors"
	"testing"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/domain/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions_Click_WaitsBeforeActing(t *testing.T) {
	f := newFixture(Options{})
	f.element("login", "button", "Id_login-button")

	loc := &mocks.MockLocator{}
	f.page.On("Locator", "#login-button").Return(loc)
	loc.On("WaitForVisible", testTimeout).Return(nil).Once()
	loc.On("Click").Return(nil).Once()

	require.NoError(t, f.steps.Click(f.page, "login", "button"))
	assert.Equal(t, []string{"WaitForVisible", "Click"}, methods(loc))
}

func TestActions_EntryPoints(t *testing.T) {
	tests := []struct {
		name   string
		call   func(a *Actions, f *fixture) error
		method string
		args   []interface{}
	}{
		{"fill", func(a *Actions, f *fixture) error { return a.Fill(f.page, "form", "field", "alice") }, "Fill", []interface{}{"alice"}},
		{"select", func(a *Actions, f *fixture) error { return a.SelectOption(f.page, "form", "field", "Blue") }, "SelectOption", []interface{}{"Blue"}},
		{"check", func(a *Actions, f *fixture) error { return a.Check(f.page, "form", "field") }, "Check", nil},
		{"uncheck", func(a *Actions, f *fixture) error { return a.Uncheck(f.page, "form", "field") }, "Uncheck", nil},
		{"hover", func(a *Actions, f *fixture) error { return a.Hover(f.page, "form", "field") }, "Hover", nil},
		{"type", func(a *Actions, f *fixture) error { return a.Type(f.page, "form", "field", "slow") }, "Type", []interface{}{"slow"}},
		{"press", func(a *Actions, f *fixture) error { return a.Press(f.page, "form", "field", "Enter") }, "Press", []interface{}{"Enter"}},
		{"dblclick", func(a *Actions, f *fixture) error { return a.DoubleClick(f.page, "form", "field") }, "DoubleClick", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Options{ActionPolicy: entities.PolicyPropagate})
			f.element("form", "field", "Name_field")

			loc := &mocks.MockLocator{}
			f.page.On("Locator", "[name='field']").Return(loc)
			loc.On("WaitForVisible", testTimeout).Return(nil).Once()
			loc.On(tt.method, tt.args...).Return(nil).Once()

			require.NoError(t, tt.call(f.steps.Actions, f))
			loc.AssertExpectations(t)
		})
	}
}

func TestActions_Click_WaitAndActionFailSwallowed(t *testing.T) {
	f := newFixture(Options{})
	f.element("login", "button", "Role_BUTTON")

	loc := &mocks.MockLocator{Name: `getByRole(button)`}
	f.page.On("GetByRole", "button", (*interfaces.RoleOptions)(nil)).Return(loc)
	loc.On("WaitForVisible", testTimeout).Return(errors.New("Timeout 1000ms exceeded")).Once()
	loc.On("Click").Return(errors.New("element not attached")).Once()

	assert.NoError(t, f.steps.Click(f.page, "login", "button"))
	assert.Equal(t, []string{"WaitForVisible", "Click"}, methods(loc))

	entries := f.hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Failed to wait for the element to be displayed", entries[0].Message)
	assert.Equal(t, "Failed to perform 'click' action on element by Locator 'loginbutton'", entries[1].Message)
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
}

func TestActions_ConfigurationDefectSkipped(t *testing.T) {
	f := newFixture(Options{})
	f.element("login", "button", "Frame_main")
	f.missing("login", "ghost")

	assert.NoError(t, f.steps.Click(f.page, "login", "button"))
	assert.NoError(t, f.steps.Click(f.page, "login", "ghost"))
	assert.Empty(t, f.page.Calls)

	entries := f.hook.AllEntries()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "Element configuration is invalid, action skipped", e.Message)
	}
}

func TestActions_Propagate(t *testing.T) {
	f := newFixture(Options{ActionPolicy: entities.PolicyPropagate})
	f.element("login", "button", "Frame_main")
	f.element("login", "submit", "Id_submit")

	assert.ErrorIs(t, f.steps.Click(f.page, "login", "button"), entities.ErrUnknownStrategy)

	boom := errors.New("element not attached")
	loc := &mocks.MockLocator{}
	f.page.On("Locator", "#submit").Return(loc)
	loc.On("WaitForVisible", testTimeout).Return(nil)
	loc.On("Click").Return(boom)
	assert.ErrorIs(t, f.steps.Click(f.page, "login", "submit"), boom)

	assert.Empty(t, f.hook.AllEntries())
}

func TestActions_Propagate_StrictWait(t *testing.T) {
	f := newFixture(Options{ActionPolicy: entities.PolicyPropagate, StrictWait: true})
	f.element("login", "submit", "Id_submit")

	loc := &mocks.MockLocator{}
	f.page.On("Locator", "#submit").Return(loc)
	loc.On("WaitForVisible", testTimeout).Return(errors.New("timeout"))

	assert.ErrorIs(t, f.steps.Click(f.page, "login", "submit"), entities.ErrWaitTimeout)
	loc.AssertNotCalled(t, "Click")
}

func TestActions_Perform_UnknownActionNeverResolves(t *testing.T) {
	f := newFixture(Options{ActionPolicy: entities.PolicyPropagate})

	err := f.steps.Perform(f.page, entities.ActionRequest{Action: "drag", Element: "a", Key: "b"})
	assert.ErrorIs(t, err, entities.ErrUnknownAction)
	f.registry.AssertNotCalled(t, "Lookup", "a", "b")
}

func TestActions_Perform_MissingValue(t *testing.T) {
	f := newFixture(Options{ActionPolicy: entities.PolicyPropagate})
	f.element("form", "field", "Id_field")

	loc := &mocks.MockLocator{}
	f.page.On("Locator", "#field").Return(loc)
	loc.On("WaitForVisible", testTimeout).Return(nil)

	err := f.steps.Perform(f.page, entities.ActionRequest{Action: entities.ActionFill, Element: "form", Key: "field"})
	assert.ErrorIs(t, err, entities.ErrMissingValue)
	loc.AssertNotCalled(t, "Fill", "")
}

func TestActions_DefaultPolicy(t *testing.T) {
	logger := logrus.New()
	assert.Equal(t, entities.PolicyLogAndContinue, NewActions(nil, "", logger).Policy())
}

func TestActions_Title(t *testing.T) {
	f := newFixture(Options{})
	f.page.On("Title").Return("Dashboard", nil).Once()
	f.page.On("Title").Return("", nil).Once()

	title, err := f.steps.Title(f.page)
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", title)
	assert.Equal(t, "Title of the page: Dashboard", f.hook.LastEntry().Message)

	title, err = f.steps.Title(f.page)
	require.NoError(t, err)
	assert.Empty(t, title)
	assert.Equal(t, logrus.WarnLevel, f.hook.LastEntry().Level)
	assert.Equal(t, "The title of the page is empty.", f.hook.LastEntry().Message)
}
