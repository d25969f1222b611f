// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "strconv"

// An Allocator produces fresh, prefix-disambiguated identifiers
// (spec.md §4.2). It is reset at the start of every rule's emission
// (emit_rule.go) so that editing one rule never perturbs the
// identifiers allocated for another.
type Allocator struct {
	counters map[string]int
}

// NewAllocator returns a ready-to-use Allocator.
func NewAllocator() *Allocator {
	return &Allocator{counters: make(map[string]int)}
}

// Next returns prefix followed by its counter, then post-increments
// the counter for prefix. Distinct prefixes have independent counters.
func (a *Allocator) Next(prefix string) string {
	n := a.counters[prefix]
	a.counters[prefix] = n + 1
	return prefix + strconv.Itoa(n)
}

// Reset clears every prefix's counter back to zero.
func (a *Allocator) Reset() {
	a.counters = make(map[string]int)
}
