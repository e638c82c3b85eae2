// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "testing"

type fakeVerifier struct {
	name string
	sel  [4]byte
}

func (f *fakeVerifier) Name() string      { return f.name }
func (f *fakeVerifier) Selector() [4]byte { return f.sel }

func TestRegisterAndLookupBySelector(t *testing.T) {
	r := New()
	v := &fakeVerifier{name: "sp1-groth16", sel: [4]byte{1, 2, 3, 4}}
	if err := r.Register(v); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := r.Lookup([4]byte{1, 2, 3, 4})
	if !ok || got != Verifier(v) {
		t.Fatalf("Lookup did not find the registered verifier")
	}

	byName, ok := r.ByName("sp1-groth16")
	if !ok || byName != Verifier(v) {
		t.Fatalf("ByName did not find the registered verifier")
	}
}

func TestRegisterDuplicateNameRejected(t *testing.T) {
	r := New()
	a := &fakeVerifier{name: "dup", sel: [4]byte{1, 1, 1, 1}}
	b := &fakeVerifier{name: "dup", sel: [4]byte{2, 2, 2, 2}}
	if err := r.Register(a); err != nil {
		t.Fatalf("Register a: %v", err)
	}
	if err := r.Register(b); err == nil {
		t.Fatalf("expected duplicate-name registration to fail")
	}
}

func TestRegisterDuplicateSelectorRejected(t *testing.T) {
	r := New()
	a := &fakeVerifier{name: "a", sel: [4]byte{9, 9, 9, 9}}
	b := &fakeVerifier{name: "b", sel: [4]byte{9, 9, 9, 9}}
	if err := r.Register(a); err != nil {
		t.Fatalf("Register a: %v", err)
	}
	if err := r.Register(b); err == nil {
		t.Fatalf("expected duplicate-selector registration to fail")
	}
}

func TestRegisterWithSelectorForLateBoundVerifier(t *testing.T) {
	r := New()
	v := &fakeVerifier{name: "risc0-groth16"} // selector not yet known
	sel := [4]byte{0x9f, 0x39, 0x69, 0x6c}
	if err := r.RegisterWithSelector(v, sel); err != nil {
		t.Fatalf("RegisterWithSelector: %v", err)
	}
	got, ok := r.Lookup(sel)
	if !ok || got != Verifier(v) {
		t.Fatalf("Lookup did not find the late-bound selector")
	}
}

func TestVerifiersDeterministicOrder(t *testing.T) {
	r := New()
	names := []string{"zeta", "alpha", "mu"}
	for i, n := range names {
		v := &fakeVerifier{name: n, sel: [4]byte{byte(i), 0, 0, 0}}
		if err := r.Register(v); err != nil {
			t.Fatalf("Register %s: %v", n, err)
		}
	}
	got := r.Verifiers()
	want := []string{"alpha", "mu", "zeta"}
	for i, v := range got {
		if v.Name() != want[i] {
			t.Fatalf("Verifiers()[%d] = %s, want %s", i, v.Name(), want[i])
		}
	}
}
