// Platewise - Food Catalog Pricing and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platewise

package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NoSource is the source type of tables that score a candidate on its own.
type NoSource struct{}

// Rule is one weighted scoring predicate.
type Rule[S, C any] struct {
	// Name identifies the rule in reasons and weight overrides.
	Name   string
	Weight float64

	// Tier groups mutually exclusive rules: within a tier only the first
	// matching rule counts. Rules with an empty tier are independent.
	Tier string

	// Match returns how many times the rule fires for (source, candidate).
	// Boolean rules return 0 or 1.
	Match func(source S, candidate C) int
}

// When adapts a boolean predicate to Rule.Match.
func When[S, C any](pred func(S, C) bool) func(S, C) int {
	return func(s S, c C) int {
		if pred(s, c) {
			return 1
		}
		return 0
	}
}

// Table is an ordered set of rules evaluated additively. The zero Table
// scores everything zero. Tables are immutable and safe for concurrent use.
type Table[S, C any] struct {
	rules []Rule[S, C]
}

// NewTable creates a table. Rule names must be unique and weights
// non-negative, so scores are never negative.
func NewTable[S, C any](rules ...Rule[S, C]) (Table[S, C], error) {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return Table[S, C]{}, errors.New("rule without a name")
		}
		if seen[r.Name] {
			return Table[S, C]{}, fmt.Errorf("duplicate rule %q", r.Name)
		}
		if r.Weight < 0 {
			return Table[S, C]{}, fmt.Errorf("rule %q has negative weight %v", r.Name, r.Weight)
		}
		if r.Match == nil {
			return Table[S, C]{}, fmt.Errorf("rule %q has no predicate", r.Name)
		}
		seen[r.Name] = true
	}
	return Table[S, C]{rules: append([]Rule[S, C](nil), rules...)}, nil
}

// MustTable is NewTable for package-level tables; it panics on error.
func MustTable[S, C any](rules ...Rule[S, C]) Table[S, C] {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Score returns the sum of the weights of every matching rule.
func (t Table[S, C]) Score(source S, candidate C) float64 {
	score, _ := t.evaluate(source, candidate, false)
	return score
}

// Explain returns the score and the names of the rules that contributed to it,
// in table order.
func (t Table[S, C]) Explain(source S, candidate C) (float64, []string) {
	return t.evaluate(source, candidate, true)
}

func (t Table[S, C]) evaluate(source S, candidate C, explain bool) (float64, []string) {
	var (
		score   float64
		reasons []string
		tiers   map[string]bool
	)
	for _, r := range t.rules {
		if r.Tier != "" && tiers[r.Tier] {
			continue
		}
		n := r.Match(source, candidate)
		if n <= 0 {
			continue
		}
		if r.Tier != "" {
			if tiers == nil {
				tiers = make(map[string]bool, 2)
			}
			tiers[r.Tier] = true
		}
		score += r.Weight * float64(n)
		if explain && r.Weight > 0 {
			reasons = append(reasons, r.Name)
		}
	}
	return score, reasons
}

// Names returns the rule names in table order.
func (t Table[S, C]) Names() []string {
	names := make([]string, len(t.rules))
	for i, r := range t.rules {
		names[i] = r.Name
	}
	return names
}

// Weight returns the weight of the named rule.
func (t Table[S, C]) Weight(name string) (float64, bool) {
	for _, r := range t.rules {
		if r.Name == name {
			return r.Weight, true
		}
	}
	return 0, false
}

// WithWeights returns a copy of t with the given rule weights replaced.
// Unknown rule names and negative weights are errors.
func (t Table[S, C]) WithWeights(overrides map[string]float64) (Table[S, C], error) {
	if len(overrides) == 0 {
		return t, nil
	}

	rules := append([]Rule[S, C](nil), t.rules...)
	index := make(map[string]int, len(rules))
	for i, r := range rules {
		index[r.Name] = i
	}

	var unknown []string
	for name, w := range overrides {
		i, ok := index[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		rules[i].Weight = w
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Table[S, C]{}, fmt.Errorf("unknown rules %s (known: %s)", strings.Join(unknown, ", "), strings.Join(t.Names(), ", "))
	}
	return NewTable(rules...)
}
