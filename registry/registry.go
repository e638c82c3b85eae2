// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry collects the verifier instances of package verifier
// behind a single selector-keyed lookup, the way a host runtime picks
// which verification core a given seal's 4-byte prefix routes to. It is
// adapted from the teacher's stateful-precompile module registry
// (modules/registerer.go): same dedup-by-key and dedup-by-address
// (here, dedup-by-name and dedup-by-selector) checks, same
// deterministic sorted iteration — but keyed on a verifier selector
// instead of an EVM address, since the host contract ABI and address
// space are explicitly out of scope (spec.md §1). Unlike the teacher's
// registerer.go, which stores its module list in a package-level var,
// a Registry here is an explicit, caller-constructed value: the core
// carries no mutable global state (spec.md §9).
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Verifier is the minimum surface a verification core must expose to be
// registered: its fixed identity (Name). The 4-byte selector that binds an
// incoming seal to it comes either from SelectorVerifier or from the
// caller of RegisterWithSelector. Concrete verifier types
// (verifier.RiscZeroVerifier, verifier.SP1Groth16Verifier,
// verifier.SP1PlonkVerifier) satisfy this narrow interface while
// exposing their own, differently-shaped Verify/VerifyProof methods —
// the registry only ever routes, it never calls them.
type Verifier interface {
	Name() string
}

// SelectorVerifier is a Verifier whose selector is available without a
// fallible accessor: the SP1 verifiers (selector fixed at construction).
type SelectorVerifier interface {
	Verifier
	Selector() [4]byte
}

// Registry is a deterministic, name- and selector-deduplicated collection
// of verifiers. The zero value is not usable; construct with New.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Verifier
	bySel   map[[4]byte]Verifier
	ordered []string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]Verifier),
		bySel:  make(map[[4]byte]Verifier),
	}
}

// Register adds v, keyed by both its Name() and (if it implements
// SelectorVerifier) its fixed Selector(). It fails if either key is
// already registered, mirroring the teacher's RegisterModule dedup
// checks ("name %s already used", "address %s already used").
func (r *Registry) Register(v Verifier) error {
	var sel [4]byte
	hasSel := false
	if sv, ok := v.(SelectorVerifier); ok {
		sel = sv.Selector()
		hasSel = true
	}
	return r.register(v, sel, hasSel)
}

// RegisterWithSelector adds v keyed by its Name() and the explicitly
// supplied sel. Use this for a verifier.RiscZeroVerifier: its selector is
// only known after Initialize succeeds, so it cannot satisfy
// SelectorVerifier at construction time the way the stateless SP1
// verifiers do.
func (r *Registry) RegisterWithSelector(v Verifier, sel [4]byte) error {
	return r.register(v, sel, true)
}

func (r *Registry) register(v Verifier, sel [4]byte, hasSel bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := v.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("registry: name %q already registered", name)
	}
	if hasSel {
		if _, exists := r.bySel[sel]; exists {
			return fmt.Errorf("registry: selector %x already registered", sel)
		}
	}

	r.byName[name] = v
	if hasSel {
		r.bySel[sel] = v
	}
	r.ordered = append(r.ordered, name)
	sort.Strings(r.ordered)
	return nil
}

// Lookup returns the verifier registered with the fixed selector sel, if
// any. It never finds a RiscZeroVerifier registered before its selector
// was derived by Initialize — register it only after initialization.
func (r *Registry) Lookup(sel [4]byte) (Verifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.bySel[sel]
	return v, ok
}

// ByName returns the verifier registered under name, if any.
func (r *Registry) ByName(name string) (Verifier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byName[name]
	return v, ok
}

// Verifiers returns every registered verifier, in deterministic
// name-sorted order.
func (r *Registry) Verifiers() []Verifier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Verifier, len(r.ordered))
	for i, name := range r.ordered {
		out[i] = r.byName[name]
	}
	return out
}
