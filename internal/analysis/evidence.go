// Package analysis infers artist attributes (country, gender, type, begin
// and end dates) from parsed wiki pages. Each rule is a pure function from
// a page to an Evidence value; the aggregator combines several rules'
// evidence for one attribute under an explicit conflict and corroboration
// policy before any edit is submitted.
package analysis

import "sort"

// Evidence is one rule's contribution to an attribute inference: a set of
// proposed values and a human-readable justification that ends up verbatim
// in the edit note. A rule returns either both or neither.
type Evidence struct {
	Values        []string
	Justification string

	// FromCategories marks evidence derived from category membership.
	// Categories are edited by many independent humans and are treated as
	// higher-trust, so some attributes refuse to commit without them.
	FromCategories bool
}

// Empty reports whether the rule contributed nothing.
func (e Evidence) Empty() bool { return len(e.Values) == 0 }

func newEvidence(values map[string]struct{}, justification string, fromCategories bool) Evidence {
	if len(values) == 0 {
		return Evidence{}
	}
	sorted := make([]string, 0, len(values))
	for v := range values {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)
	return Evidence{Values: sorted, Justification: justification, FromCategories: fromCategories}
}

// Options controls the aggregation policy for one attribute.
type Options struct {
	// RequireCategories refuses a decision unless at least one
	// category-based rule contributed, guarding against a single noisy
	// infobox field or free-text mention.
	RequireCategories bool
}

// Result is the outcome of combining evidence for one attribute. When no
// decision is made, Values and Reasons retain everything the rules
// proposed so an operator can audit why the entity was skipped.
type Result struct {
	Decided bool
	Value   string

	// Conflict distinguishes "multiple values survived" from "not enough
	// evidence" for triage.
	Conflict bool

	// Values is the sorted union of all proposed values.
	Values []string

	// Reasons holds the justification of every contributing rule in
	// rule-evaluation order, including rules that lost a conflict.
	Reasons []string
}

// Aggregate combines rule evidence for a single attribute. A value is
// committed only when exactly one distinct value was proposed, at least
// one rule contributed, and the corroboration requirement (if set) is met.
func Aggregate(evidence []Evidence, opts Options) Result {
	valueSet := map[string]struct{}{}
	var reasons []string
	hasCategories := false
	for _, ev := range evidence {
		if ev.Empty() {
			continue
		}
		for _, v := range ev.Values {
			valueSet[v] = struct{}{}
		}
		reasons = append(reasons, ev.Justification)
		if ev.FromCategories {
			hasCategories = true
		}
	}

	values := make([]string, 0, len(valueSet))
	for v := range valueSet {
		values = append(values, v)
	}
	sort.Strings(values)

	result := Result{Values: values, Reasons: reasons}
	if len(reasons) == 0 || len(values) == 0 {
		return result
	}
	if opts.RequireCategories && !hasCategories {
		return result
	}
	if len(values) > 1 {
		result.Conflict = true
		return result
	}
	result.Decided = true
	result.Value = values[0]
	return result
}
