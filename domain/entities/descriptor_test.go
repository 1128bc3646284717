package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		strategy StrategyTag
		value    string
	}{
		{name: "id", raw: "Id_login-button", strategy: StrategyID, value: "login-button"},
		{name: "value keeps later delimiters", raw: "XPATH_//div[@data_id='a_b']", strategy: StrategyXPath, value: "//div[@data_id='a_b']"},
		{name: "value with spaces", raw: "Placeholder_User name", strategy: StrategyPlaceholder, value: "User name"},
		{name: "empty value after delimiter", raw: "Class_", strategy: StrategyClass, value: ""},
		{name: "no delimiter", raw: "loginButton", strategy: "loginButton", value: ""},
		{name: "leading delimiter", raw: "_foo", strategy: "", value: "foo"},
		{name: "empty", raw: "", strategy: "", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDescriptor(tt.raw)
			assert.Equal(t, tt.strategy, d.Strategy)
			assert.Equal(t, tt.value, d.Value)
		})
	}
}

func TestParseDescriptorStrict(t *testing.T) {
	d, err := ParseDescriptorStrict("Name_email")
	require.NoError(t, err)
	assert.Equal(t, LocatorDescriptor{Strategy: StrategyName, Value: "email"}, d)

	for _, raw := range []string{"loginButton", "Id_"} {
		_, err := ParseDescriptorStrict(raw)
		assert.ErrorIs(t, err, ErrEmptyLocatorValue, raw)

		var descErr *DescriptorError
		require.True(t, errors.As(err, &descErr))
		assert.Equal(t, raw, descErr.Raw)
	}
}

func TestLocatorDescriptor_String(t *testing.T) {
	assert.Equal(t, "Id_login", ParseDescriptor("Id_login").String())
	assert.Equal(t, "CSS_a_b", ParseDescriptor("CSS_a_b").String())
	assert.Equal(t, "bogus", ParseDescriptor("bogus").String())
}

func TestStrategyTag_Canonical(t *testing.T) {
	assert.Equal(t, StrategyXPath, StrategyTag("XPath").Canonical())
	assert.Equal(t, StrategyXPath, StrategyXPath.Canonical())
	assert.Equal(t, StrategyTag("Unknown"), StrategyTag("Unknown").Canonical())
}

func TestCapabilities(t *testing.T) {
	for _, tag := range allStrategies {
		assert.True(t, CapabilityFull.Supports(tag), "full should support %s", tag)
	}
	assert.True(t, CapabilityFull.Supports("XPath"))
	assert.False(t, CapabilityFull.Supports("Frame"))

	for _, tag := range []StrategyTag{StrategyButton, StrategyLinkText, StrategyLink, StrategyHeading, StrategyHeading1} {
		assert.True(t, tag.IsRoleBased())
		assert.False(t, CapabilityTextQuery.Supports(tag), "text-query should not support %s", tag)
	}
	for _, tag := range CapabilityTextQuery.Tags() {
		assert.False(t, tag.IsRoleBased())
		assert.True(t, CapabilityFull.Supports(tag))
	}
	assert.Len(t, CapabilityTextQuery.Tags(), len(allStrategies)-5)
}

func TestActionKind(t *testing.T) {
	needsValue := map[ActionKind]bool{
		ActionFill: true, ActionSelect: true, ActionType: true, ActionPress: true,
	}
	for _, a := range Actions {
		assert.True(t, a.IsKnown())
		assert.Equal(t, needsValue[a], a.RequiresValue(), a)
	}
	assert.False(t, ActionKind("drag").IsKnown())
	assert.False(t, ActionKind("Click").IsKnown())
}

func TestParseFailurePolicy(t *testing.T) {
	for in, want := range map[string]FailurePolicy{
		"propagate": PolicyPropagate,
		"log":       PolicyLogAndContinue,
		"default":   PolicyCoerceToDefault,
		"":          PolicyLogAndContinue,
	} {
		got, err := ParseFailurePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFailurePolicy("retry")
	assert.Error(t, err)

	assert.False(t, PolicyPropagate.Swallows())
	assert.True(t, PolicyLogAndContinue.Swallows())
	assert.True(t, PolicyCoerceToDefault.Swallows())
}

func TestErrors(t *testing.T) {
	err := error(&UnknownStrategyError{Tag: "Frame"})
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "unknown locator type: Frame", err.Error())

	err = &UnknownStrategyError{Tag: StrategyButton, Capability: CapabilityTextQuery.Name()}
	assert.Contains(t, err.Error(), "text-query")

	assert.ErrorIs(t, &UnknownActionError{Action: "drag"}, ErrUnknownAction)
	assert.ErrorIs(t, &LookupError{Path: "elements.a.b"}, ErrLookup)

	cause := errors.New("timeout 120000ms exceeded")
	waitErr := &WaitTimeoutError{Locator: "#x", Cause: cause}
	assert.ErrorIs(t, waitErr, ErrWaitTimeout)
	assert.ErrorIs(t, waitErr, cause)

	assertErr := &AssertionError{Kind: AssertHasValue, Expected: "hello", Actual: "hi", Locator: "searchBox"}
	assert.ErrorIs(t, assertErr, ErrAssertion)
	assert.Equal(t, "Value not found: Expected 'hello' but found 'hi' in element with locator 'searchBox'", assertErr.Error())
	assert.Equal(t, "Element is not visible: Locator 'x'", (&AssertionError{Kind: AssertVisible, Locator: "x"}).Error())
}
