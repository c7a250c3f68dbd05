// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authz

import (
	"strings"
)

// Arguments is an ordered set of space delimited protocol values such as scopes or claim names.
type Arguments []string

// ParseArguments splits a space delimited value, dropping empty and duplicate entries while preserving order.
func ParseArguments(raw string) Arguments {
	fields := strings.Fields(raw)

	args := make(Arguments, 0, len(fields))

	for _, field := range fields {
		if !args.Has(field) {
			args = append(args, field)
		}
	}

	return args
}

// Matches performs an case-sensitive, out-of-order check that the items
// provided exist and equal all of the args in arguments.
func (r Arguments) Matches(items ...string) bool {
	if len(r) != len(items) {
		return false
	}

	found := make(map[string]bool)
	for _, item := range items {
		if !r.Has(item) {
			return false
		}
		found[item] = true
	}

	return len(found) == len(r)
}

// Has checks, in a case-sensitive manner, that all of the items
// provided exists in arguments.
func (r Arguments) Has(items ...string) bool {
	for _, item := range items {
		found := false

		for _, arg := range r {
			if arg == item {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// HasOneOf checks, in a case-sensitive manner, that one of the items
// provided exists in arguments.
func (r Arguments) HasOneOf(items ...string) bool {
	for _, item := range items {
		if r.Has(item) {
			return true
		}
	}

	return false
}

// ExactOne checks, by string case, that a single argument equals the provided
// string.
func (r Arguments) ExactOne(name string) bool {
	return len(r) == 1 && r[0] == name
}

// Missing returns the items of r which are not present in granted, in the order of r.
func (r Arguments) Missing(granted Arguments) Arguments {
	var missing Arguments

	for _, item := range r {
		if !granted.Has(item) {
			missing = append(missing, item)
		}
	}

	return missing
}

// Union returns r followed by the items of other not already in r.
func (r Arguments) Union(other Arguments) Arguments {
	out := make(Arguments, 0, len(r)+len(other))
	out = append(out, r...)

	for _, item := range other {
		if !out.Has(item) {
			out = append(out, item)
		}
	}

	return out
}

// Filter returns the items of r which are also present in allowed.
func (r Arguments) Filter(allowed Arguments) Arguments {
	var out Arguments

	for _, item := range r {
		if allowed.Has(item) {
			out = append(out, item)
		}
	}

	return out
}

// Without returns the items of r which are not present in denied.
func (r Arguments) Without(denied Arguments) Arguments {
	return r.Missing(denied)
}

// String joins the arguments with a single space.
func (r Arguments) String() string {
	return strings.Join(r, " ")
}
