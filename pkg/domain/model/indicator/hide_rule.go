package indicator

import "github.com/secmon-lab/indicator/pkg/domain/types"

// Predicate decides from the raw value and the resource whether the field is hidden
type Predicate func(value, resource any) (bool, error)

// HideRule decides whether an indicator is hidden for a given value.
// The set of implementations is closed: HideNever, HideWhen, HideIn and HideEqual.
type HideRule interface {
	Kind() types.HideRuleKind
	hidden(value, resource any) (bool, error)
}

type hideNever struct{}

// HideNever returns a rule that never hides the field
func HideNever() HideRule {
	return hideNever{}
}

func (hideNever) Kind() types.HideRuleKind { return types.HideRuleNone }

func (hideNever) hidden(any, any) (bool, error) { return false, nil }

type hideWhen struct {
	pred Predicate
}

// HideWhen returns a rule that hides the field when pred returns true.
// A nil pred behaves like HideNever.
func HideWhen(pred Predicate) HideRule {
	if pred == nil {
		return hideNever{}
	}
	return hideWhen{pred: pred}
}

func (hideWhen) Kind() types.HideRuleKind { return types.HideRulePredicate }

func (r hideWhen) hidden(value, resource any) (bool, error) {
	return r.pred(value, resource)
}

type hideIn struct {
	values []any
}

// HideIn returns a rule that hides the field when the value loosely equals
// any of values
func HideIn(values ...any) HideRule {
	copied := make([]any, len(values))
	copy(copied, values)
	return hideIn{values: copied}
}

func (hideIn) Kind() types.HideRuleKind { return types.HideRuleSet }

func (r hideIn) hidden(value, _ any) (bool, error) {
	for _, v := range r.values {
		if LooseEqual(value, v) {
			return true, nil
		}
	}
	return false, nil
}

type hideEqual struct {
	target any
}

// HideEqual returns a rule that hides the field when the value loosely equals target
func HideEqual(target any) HideRule {
	return hideEqual{target: target}
}

func (hideEqual) Kind() types.HideRuleKind { return types.HideRuleScalar }

func (r hideEqual) hidden(value, _ any) (bool, error) {
	return LooseEqual(value, r.target), nil
}

// hideIfFalsy is the predicate installed by Field.ShouldHideIfFalsy
func hideIfFalsy(value, _ any) (bool, error) {
	return !Truthy(value), nil
}
