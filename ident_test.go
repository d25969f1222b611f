// Copyright 2017 The Peggy Authors
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or at
// https://developers.google.com/open-source/licenses/bsd.

package pegc

import "testing"

func TestAllocatorNextIncrementsPerPrefix(t *testing.T) {
	a := NewAllocator()
	got := []string{a.Next("r"), a.Next("r"), a.Next("r")}
	want := []string{"r0", "r1", "r2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Next(\"r\") call %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAllocatorPrefixesAreIndependent(t *testing.T) {
	a := NewAllocator()
	if got, want := a.Next("pos"), "pos0"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := a.Next("result"), "result0"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := a.Next("pos"), "pos1"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAllocatorReset(t *testing.T) {
	a := NewAllocator()
	a.Next("r")
	a.Next("r")
	a.Reset()
	if got, want := a.Next("r"), "r0"; got != want {
		t.Errorf("after Reset, Next(\"r\") = %s, want %s", got, want)
	}
}
