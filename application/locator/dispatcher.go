package locator

import (
	"fmt"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Perform executes action on loc. Verbs that need a payload fail with
// entities.ErrMissingValue when value is nil; the rest ignore it.
func Perform(loc interfaces.Locator, action entities.ActionKind, value *string) error {
	if !action.IsKnown() {
		return &entities.UnknownActionError{Action: action}
	}
	if action.RequiresValue() && value == nil {
		return fmt.Errorf("%s on '%s': %w", action, loc.Describe(), entities.ErrMissingValue)
	}

	switch action {
	case entities.ActionClick:
		return loc.First().Click()
	case entities.ActionFill:
		return loc.Fill(*value)
	case entities.ActionSelect:
		return loc.SelectOption(*value)
	case entities.ActionCheck:
		return loc.Check()
	case entities.ActionUncheck:
		return loc.Uncheck()
	case entities.ActionHover:
		return loc.Hover()
	case entities.ActionType:
		return loc.Type(*value)
	case entities.ActionPress:
		return loc.Press(*value)
	case entities.ActionDoubleClick:
		return loc.DoubleClick()
	}
	return &entities.UnknownActionError{Action: action}
}
