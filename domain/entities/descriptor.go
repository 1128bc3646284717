package entities

import "strings"

// DescriptorDelimiter separates the strategy tag from the locator value
const DescriptorDelimiter = "_"

// StrategyTag names the technique used to find an element on a page
type StrategyTag string

const (
	StrategyXPath       StrategyTag = "XPATH"
	StrategyCSS         StrategyTag = "CSS"
	StrategyHTMLTag     StrategyTag = "Tag"
	StrategyButton      StrategyTag = "Button"
	StrategyLinkText    StrategyTag = "LinkText"
	StrategyLink        StrategyTag = "Link"
	StrategyHeading     StrategyTag = "Heading"
	StrategyHeading1    StrategyTag = "Heading1"
	StrategyText        StrategyTag = "Text"
	StrategyRole        StrategyTag = "Role"
	StrategyAltText     StrategyTag = "AltText"
	StrategyTitle       StrategyTag = "Title"
	StrategyPlaceholder StrategyTag = "Placeholder"
	StrategyLabel       StrategyTag = "Label"
	StrategyTestID      StrategyTag = "TestId"
	StrategyID          StrategyTag = "Id"
	StrategyName        StrategyTag = "Name"
	StrategyClass       StrategyTag = "Class"
)

// strategyAliases maps alternative spellings found in element files to the canonical tag
var strategyAliases = map[StrategyTag]StrategyTag{
	"XPath": StrategyXPath,
}

// Canonical returns the canonical spelling of the tag
func (t StrategyTag) Canonical() StrategyTag {
	if c, ok := strategyAliases[t]; ok {
		return c
	}
	return t
}

// IsRoleBased reports whether the tag queries by accessible role with a name filter
func (t StrategyTag) IsRoleBased() bool {
	switch t.Canonical() {
	case StrategyButton, StrategyLinkText, StrategyLink, StrategyHeading, StrategyHeading1:
		return true
	}
	return false
}

// Capability is the set of strategy tags a call site is able to resolve
type Capability struct {
	name string
	tags map[StrategyTag]struct{}
}

func newCapability(name string, tags ...StrategyTag) Capability {
	c := Capability{name: name, tags: make(map[StrategyTag]struct{}, len(tags))}
	for _, t := range tags {
		c.tags[t] = struct{}{}
	}
	return c
}

// Supports reports whether the tag (or its alias) belongs to the capability
func (c Capability) Supports(t StrategyTag) bool {
	_, ok := c.tags[t.Canonical()]
	return ok
}

// Name returns the capability name used in logs and errors
func (c Capability) Name() string {
	return c.name
}

// Tags returns the supported tags in declaration order
func (c Capability) Tags() []StrategyTag {
	tags := make([]StrategyTag, 0, len(c.tags))
	for _, t := range allStrategies {
		if _, ok := c.tags[t]; ok {
			tags = append(tags, t)
		}
	}
	return tags
}

var allStrategies = []StrategyTag{
	StrategyXPath, StrategyCSS, StrategyHTMLTag,
	StrategyButton, StrategyLinkText, StrategyLink, StrategyHeading, StrategyHeading1,
	StrategyText, StrategyRole,
	StrategyAltText, StrategyTitle, StrategyPlaceholder, StrategyLabel, StrategyTestID,
	StrategyID, StrategyName, StrategyClass,
}

var (
	// CapabilityFull is used by actions, state inspection and the visibility assertion
	CapabilityFull = newCapability("full", allStrategies...)

	// CapabilityTextQuery is used by the text and value assertions, which cannot
	// read through role-with-name queries
	CapabilityTextQuery = newCapability("text-query",
		StrategyXPath, StrategyCSS, StrategyHTMLTag,
		StrategyText, StrategyRole,
		StrategyAltText, StrategyTitle, StrategyPlaceholder, StrategyLabel, StrategyTestID,
		StrategyID, StrategyName, StrategyClass,
	)
)

// LocatorDescriptor is a parsed "<StrategyTag>_<value>" locator string
type LocatorDescriptor struct {
	Strategy StrategyTag
	Value    string
}

// ParseDescriptor splits raw on the first delimiter. Without a delimiter the
// whole string becomes the strategy and the value is empty. It never fails.
func ParseDescriptor(raw string) LocatorDescriptor {
	strategy, value, found := strings.Cut(raw, DescriptorDelimiter)
	if !found {
		return LocatorDescriptor{Strategy: StrategyTag(raw)}
	}
	return LocatorDescriptor{Strategy: StrategyTag(strategy), Value: value}
}

// ParseDescriptorStrict is ParseDescriptor that rejects descriptors with an empty value
func ParseDescriptorStrict(raw string) (LocatorDescriptor, error) {
	d := ParseDescriptor(raw)
	if d.Value == "" {
		return LocatorDescriptor{}, &DescriptorError{Raw: raw, Err: ErrEmptyLocatorValue}
	}
	return d, nil
}

// String renders the descriptor back in its configured form
func (d LocatorDescriptor) String() string {
	if d.Value == "" {
		return string(d.Strategy)
	}
	return string(d.Strategy) + DescriptorDelimiter + d.Value
}
