package entities

// ActionKind represents the interaction verb performed on a located element
type ActionKind string

const (
	ActionClick       ActionKind = "click"
	ActionFill        ActionKind = "fill"
	ActionSelect      ActionKind = "select"
	ActionCheck       ActionKind = "check"
	ActionUncheck     ActionKind = "uncheck"
	ActionHover       ActionKind = "hover"
	ActionType        ActionKind = "type"
	ActionPress       ActionKind = "press"
	ActionDoubleClick ActionKind = "dblclick"
)

// Actions lists every supported verb
var Actions = []ActionKind{
	ActionClick, ActionFill, ActionSelect, ActionCheck, ActionUncheck,
	ActionHover, ActionType, ActionPress, ActionDoubleClick,
}

// IsKnown reports whether the verb is in the supported set
func (a ActionKind) IsKnown() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// RequiresValue reports whether the verb needs a value payload
func (a ActionKind) RequiresValue() bool {
	switch a {
	case ActionFill, ActionSelect, ActionType, ActionPress:
		return true
	}
	return false
}

// ActionRequest is a single element-name+key driven interaction
type ActionRequest struct {
	Action  ActionKind `json:"action"`
	Element string     `json:"element"`
	Key     string     `json:"key"`
	Value   *string    `json:"value,omitempty"`
}

// WithValue returns a pointer to v, for building requests that carry a payload
func WithValue(v string) *string {
	return &v
}
