package types

// HideRuleKind represents which variant of hide rule an indicator carries
type HideRuleKind string

const (
	HideRuleNone      HideRuleKind = "none"
	HideRulePredicate HideRuleKind = "predicate"
	HideRuleSet       HideRuleKind = "set"
	HideRuleScalar    HideRuleKind = "scalar"
)

// AllHideRuleKinds returns all valid hide rule kinds
func AllHideRuleKinds() []HideRuleKind {
	return []HideRuleKind{
		HideRuleNone,
		HideRulePredicate,
		HideRuleSet,
		HideRuleScalar,
	}
}

// IsValid checks if the hide rule kind is valid
func (k HideRuleKind) IsValid() bool {
	switch k {
	case HideRuleNone,
		HideRulePredicate,
		HideRuleSet,
		HideRuleScalar:
		return true
	default:
		return false
	}
}

// String returns the string representation of the hide rule kind
func (k HideRuleKind) String() string {
	return string(k)
}
