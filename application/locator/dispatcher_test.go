package locator

import (
	"errors"
	"testing"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerform(t *testing.T) {
	tests := []struct {
		action entities.ActionKind
		value  *string
		method string
		args   []interface{}
	}{
		{entities.ActionClick, nil, "Click", nil},
		{entities.ActionFill, entities.WithValue("alice"), "Fill", []interface{}{"alice"}},
		{entities.ActionSelect, entities.WithValue("Blue"), "SelectOption", []interface{}{"Blue"}},
		{entities.ActionCheck, nil, "Check", nil},
		{entities.ActionUncheck, nil, "Uncheck", nil},
		{entities.ActionHover, nil, "Hover", nil},
		{entities.ActionType, entities.WithValue("abc"), "Type", []interface{}{"abc"}},
		{entities.ActionPress, entities.WithValue("Enter"), "Press", []interface{}{"Enter"}},
		{entities.ActionDoubleClick, nil, "DoubleClick", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			loc := &mocks.MockLocator{}
			loc.On(tt.method, tt.args...).Return(nil).Once()

			require.NoError(t, Perform(loc, tt.action, tt.value))
			loc.AssertExpectations(t)
		})
	}
}

func TestPerform_ClickUsesFirstMatch(t *testing.T) {
	first := &mocks.MockLocator{}
	first.On("Click").Return(nil).Once()
	loc := &mocks.MockLocator{}
	loc.On("First").Return(first).Once()

	require.NoError(t, Perform(loc, entities.ActionClick, nil))
	first.AssertExpectations(t)
	loc.AssertNotCalled(t, "Click")
}

func TestPerform_ActionError(t *testing.T) {
	boom := errors.New("element is detached")
	loc := &mocks.MockLocator{}
	loc.On("Hover").Return(boom).Once()

	assert.ErrorIs(t, Perform(loc, entities.ActionHover, nil), boom)
}

func TestPerform_MissingValue(t *testing.T) {
	for _, action := range []entities.ActionKind{entities.ActionFill, entities.ActionSelect, entities.ActionType, entities.ActionPress} {
		loc := &mocks.MockLocator{Name: "#field"}
		err := Perform(loc, action, nil)
		assert.ErrorIs(t, err, entities.ErrMissingValue, action)
		assert.Contains(t, err.Error(), "#field")
		assert.Empty(t, loc.Calls)
	}
}

func TestPerform_UnknownAction(t *testing.T) {
	loc := &mocks.MockLocator{}
	err := Perform(loc, "drag", nil)

	var unknown *entities.UnknownActionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, entities.ActionKind("drag"), unknown.Action)
	assert.Empty(t, loc.Calls)
}
