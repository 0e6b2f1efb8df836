package indicator

// Display is the result of resolving a field against one resource
type Display struct {
	// Value is the label, the unknown label, or the raw (possibly transformed) value
	Value    any
	Color    string
	HasColor bool
	Hidden   bool
}

// Resolve computes what the field shows for value, the attribute taken from
// resource. Lookup misses never fail. Errors from the value transform or a
// predicate hide rule are returned as they are.
func (f *Field) Resolve(value, resource any) (Display, error) {
	var d Display

	switch {
	case f.useValues && f.valueFunc != nil:
		v, err := f.valueFunc(value, resource)
		if err != nil {
			return Display{}, err
		}
		d.Value = v
	case f.useValues:
		d.Value = value
	default:
		if label, ok := f.Label(value); ok {
			d.Value = label
		} else if f.hasUnknownLabel {
			d.Value = f.unknownLabel
		} else {
			d.Value = value
		}
	}

	d.Color, d.HasColor = f.Color(value)

	hidden, err := f.hideRule.hidden(value, resource)
	if err != nil {
		return Display{}, err
	}
	d.Hidden = hidden

	return d, nil
}

// Payload returns the metadata map the indicator widget consumes: the field's
// static configuration merged with the resolved display for value.
func (f *Field) Payload(value any, d Display) map[string]any {
	colors := make(map[string]string, len(f.colors))
	for k, v := range f.colors {
		colors[k] = v
	}
	labels := make(map[string]string, len(f.labels))
	for k, v := range f.labels {
		labels[k] = v
	}

	payload := map[string]any{
		"component":      f.Component(),
		"name":           f.name,
		"attribute":      f.attribute,
		"colors":         colors,
		"labels":         labels,
		"withoutLabels":  f.withoutLabels,
		"useValues":      f.useValues,
		"showOnCreation": f.showOnCreation,
		"showOnUpdate":   f.showOnUpdate,
		"value":          value,
		"displayValue":   d.Value,
		"shouldHide":     d.Hidden,
	}
	if f.hasUnknownLabel {
		payload["unknownLabel"] = f.unknownLabel
	}
	if d.HasColor {
		payload["color"] = d.Color
	}
	return payload
}
