// Package indicator implements the indicator field: a display-only field that
// maps a resource attribute value to a colored, optionally labeled indicator.
//
// A Field is configured once with chained builder calls and is read-only
// afterwards, so a configured Field can be shared between goroutines.
package indicator

import (
	"strings"

	"github.com/secmon-lab/indicator/pkg/domain/types"
)

// ValueFunc derives the value displayed in place of the raw value when the
// field is configured with UseValues
type ValueFunc func(value, resource any) (any, error)

// Field holds the indicator configuration for one resource attribute
type Field struct {
	name      string
	attribute string

	colors map[string]string
	labels map[string]string

	withoutLabels bool
	useValues     bool
	valueFunc     ValueFunc

	hideRule HideRule

	unknownLabel    string
	hasUnknownLabel bool

	showOnCreation bool
	showOnUpdate   bool
}

// New creates an indicator field. When attribute is empty it is derived from
// name by lowercasing it and replacing spaces with underscores.
func New(name, attribute string) *Field {
	if attribute == "" {
		attribute = strings.ReplaceAll(strings.ToLower(name), " ", "_")
	}
	return &Field{
		name:      name,
		attribute: attribute,
		colors:    map[string]string{},
		labels:    map[string]string{},
		hideRule:  HideNever(),
	}
}

// Colors sets the color token shown for each value
func (f *Field) Colors(colors map[any]string) *Field {
	f.colors = normalize(colors)
	return f
}

// Labels sets the label shown for each value. Configuring labels always turns
// labels back on.
func (f *Field) Labels(labels map[any]string) *Field {
	f.labels = normalize(labels)
	f.withoutLabels = false
	return f
}

// WithoutLabels shows only the color dot
func (f *Field) WithoutLabels() *Field {
	f.withoutLabels = true
	return f
}

// UseValues displays the raw value instead of a label, passed through fn when
// fn is not nil. Labels are turned back on.
func (f *Field) UseValues(fn ValueFunc) *Field {
	f.useValues = true
	f.valueFunc = fn
	f.withoutLabels = false
	return f
}

// ShouldHide sets the rule deciding whether the field is hidden. A nil rule
// clears any previous rule.
func (f *Field) ShouldHide(rule HideRule) *Field {
	if rule == nil {
		rule = HideNever()
	}
	f.hideRule = rule
	return f
}

// ShouldHideIfFalsy hides the field when the value is falsy (0, false, nil, "")
func (f *Field) ShouldHideIfFalsy() *Field {
	f.hideRule = HideWhen(hideIfFalsy)
	return f
}

// Unknown sets the label used for values that have no configured label
func (f *Field) Unknown(label string) *Field {
	f.unknownLabel = label
	f.hasUnknownLabel = true
	return f
}

// ShowOnCreation makes the field visible on the creation form
func (f *Field) ShowOnCreation() *Field {
	f.showOnCreation = true
	return f
}

// ShowOnUpdate makes the field visible on the update form
func (f *Field) ShowOnUpdate() *Field {
	f.showOnUpdate = true
	return f
}

func (f *Field) Name() string { return f.name }
func (f *Field) Attribute() string { return f.attribute }
func (f *Field) LabelsHidden() bool { return f.withoutLabels }
func (f *Field) UsesValues() bool { return f.useValues }
func (f *Field) HideRule() HideRule { return f.hideRule }

// UnknownLabel returns the fallback label and whether one is configured
func (f *Field) UnknownLabel() (string, bool) {
	return f.unknownLabel, f.hasUnknownLabel
}

// Color returns the color configured for value
func (f *Field) Color(value any) (string, bool) {
	c, ok := f.colors[Key(value)]
	return c, ok
}

// Label returns the label configured for value
func (f *Field) Label(value any) (string, bool) {
	l, ok := f.labels[Key(value)]
	return l, ok
}

// Component returns the UI component name
func (f *Field) Component() string {
	return types.IndicatorComponent
}

func normalize(m map[any]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[Key(k)] = v
	}
	return out
}
