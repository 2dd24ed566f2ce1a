// Package rules models access rules as data. A rule is one of a closed set
// of kinds that a solver can inspect, print or evaluate. There is no
// negation, so every rule is monotonic: collecting more items never turns
// a satisfied rule false.
package rules

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the variant a Rule holds
type Kind string

const (
	KindTrue   Kind = "true"
	KindHas    Kind = "has"
	KindAnd    Kind = "and"
	KindOr     Kind = "or"
	KindOption Kind = "option"
)

// State is the collected-item view a rule is evaluated against
type State interface {
	Count(item string) int
}

// Rule is a tagged variant. Only the fields of its Kind are set.
type Rule struct {
	Kind Kind `json:"kind"`

	// KindHas
	Item  string `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`

	// KindAnd, KindOr
	Rules []Rule `json:"rules,omitempty"`

	// KindOption: an option flag resolved when the rule was built
	Option string `json:"option,omitempty"`
	Value  bool   `json:"value,omitempty"`
}

// True is satisfied by any state
func True() Rule {
	return Rule{Kind: KindTrue}
}

// Has requires at least one copy of item
func Has(item string) Rule {
	return HasCount(item, 1)
}

// HasCount requires at least count copies of item. A count of zero or less
// is always satisfied.
func HasCount(item string, count int) Rule {
	return Rule{Kind: KindHas, Item: item, Count: count}
}

// HasAll requires every listed item
func HasAll(items ...string) Rule {
	rs := make([]Rule, len(items))
	for i, item := range items {
		rs[i] = Has(item)
	}
	return And(rs...)
}

// And is satisfied when every sub-rule is. An empty And is satisfied.
func And(rs ...Rule) Rule {
	return Rule{Kind: KindAnd, Rules: rs}
}

// Or is satisfied when any sub-rule is. An empty Or is never satisfied.
func Or(rs ...Rule) Rule {
	return Rule{Kind: KindOr, Rules: rs}
}

// Option records a resolved option flag. It evaluates to value regardless
// of state, which keeps option-dependent branches visible to inspection.
func Option(name string, value bool) Rule {
	return Rule{Kind: KindOption, Option: name, Value: value}
}

// Evaluate reports whether state satisfies the rule
func (r Rule) Evaluate(state State) bool {
	switch r.Kind {
	case KindTrue, "":
		return true
	case KindHas:
		if r.Count <= 0 {
			return true
		}
		return state.Count(r.Item) >= r.Count
	case KindAnd:
		for _, sub := range r.Rules {
			if !sub.Evaluate(state) {
				return false
			}
		}
		return true
	case KindOr:
		for _, sub := range r.Rules {
			if sub.Evaluate(state) {
				return true
			}
		}
		return false
	case KindOption:
		return r.Value
	default:
		return false
	}
}

// Items returns every item name the rule mentions, sorted
func (r Rule) Items() []string {
	seen := make(map[string]bool)
	r.collectItems(seen)

	out := make([]string, 0, len(seen))
	for item := range seen {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func (r Rule) collectItems(seen map[string]bool) {
	if r.Kind == KindHas && r.Count > 0 {
		seen[r.Item] = true
	}
	for _, sub := range r.Rules {
		sub.collectItems(seen)
	}
}

// String renders the rule in a compact prefix form, e.g.
// and(has(Wall Jump), or(option(hard_logic=true), has(Flutter)))
func (r Rule) String() string {
	switch r.Kind {
	case KindTrue, "":
		return "true"
	case KindHas:
		if r.Count == 1 {
			return fmt.Sprintf("has(%s)", r.Item)
		}
		return fmt.Sprintf("has(%s, %d)", r.Item, r.Count)
	case KindAnd, KindOr:
		parts := make([]string, len(r.Rules))
		for i, sub := range r.Rules {
			parts[i] = sub.String()
		}
		return fmt.Sprintf("%s(%s)", r.Kind, strings.Join(parts, ", "))
	case KindOption:
		return fmt.Sprintf("option(%s=%t)", r.Option, r.Value)
	default:
		return string(r.Kind)
	}
}

// Inventory is a simple State backed by item counts
type Inventory map[string]int

// Count returns how many copies of item are held
func (inv Inventory) Count(item string) int {
	return inv[item]
}

// Add records n more copies of item
func (inv Inventory) Add(item string, n int) {
	inv[item] += n
}
