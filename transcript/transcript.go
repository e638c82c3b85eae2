// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package transcript implements the Fiat-Shamir transcript protocol shared
// by the PLONK engine: an ordered, named sequence of challenge slots, each
// absorbing domain-separated SHA-256 bindings, with a strictly monotonic
// "last computed" cursor so a slot can never be rebound once fixed and
// challenges can never be computed out of order.
package transcript

import (
	"crypto/sha256"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrUnknownSlot is returned by Bind/Compute for a name that was not
// declared at construction time.
var ErrUnknownSlot = errors.New("transcript: unknown slot")

// ErrSlotComputed is returned by Bind when the target slot has already had
// Compute called on it: "once a slot is computed, it is immutable".
var ErrSlotComputed = errors.New("transcript: slot already computed, cannot bind further")

// ErrOutOfOrder is returned by Compute when name is not the immediate
// successor of the last computed slot.
var ErrOutOfOrder = errors.New("transcript: compute called out of order")

// Transcript is the append-only, single-threaded state machine of §4.B /
// §9: (slots, last_pos), where Compute is the only operation that advances
// last_pos.
type Transcript struct {
	names    []string
	index    map[string]int
	bindings [][][]byte
	computed [][]byte // nil until that slot has been computed
	lastPos  int      // -1 until the first Compute call
}

// New creates a transcript with the given ordered slot names, e.g.
// New("gamma", "beta", "alpha", "zeta", "u") for the PLONK engine.
func New(names ...string) *Transcript {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}
	return &Transcript{
		names:    append([]string(nil), names...),
		index:    index,
		bindings: make([][][]byte, len(names)),
		computed: make([][]byte, len(names)),
		lastPos:  -1,
	}
}

// Bind appends data to name's binding list. Fails if name is unknown or if
// that slot has already been computed.
func (t *Transcript) Bind(name string, data []byte) error {
	idx, ok := t.index[name]
	if !ok {
		return ErrUnknownSlot
	}
	if t.computed[idx] != nil {
		return ErrSlotComputed
	}
	cp := append([]byte(nil), data...)
	t.bindings[idx] = append(t.bindings[idx], cp)
	return nil
}

// Compute hashes the current slot and advances last_pos. It may only be
// called when name is the immediate successor of the last computed slot:
// SHA256(name_ascii || prev || binding_0 || binding_1 || ...), where prev
// is the preceding slot's 32-byte value (or empty for the first slot).
func (t *Transcript) Compute(name string) ([]byte, error) {
	idx, ok := t.index[name]
	if !ok {
		return nil, ErrUnknownSlot
	}
	if idx != t.lastPos+1 {
		return nil, ErrOutOfOrder
	}

	h := sha256.New()
	h.Write([]byte(name))
	if t.lastPos >= 0 {
		h.Write(t.computed[t.lastPos])
	}
	for _, b := range t.bindings[idx] {
		h.Write(b)
	}
	sum := h.Sum(nil)

	t.computed[idx] = sum
	t.lastPos = idx
	return sum, nil
}

// Value returns the computed value of name, or nil if it has not been
// computed yet.
func (t *Transcript) Value(name string) []byte {
	idx, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.computed[idx]
}

// ToFr interprets h big-endian and reduces it modulo the BN254 scalar
// prime r.
func ToFr(h []byte) fr.Element {
	var e fr.Element
	e.SetBytes(h)
	return e
}
