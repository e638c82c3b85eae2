// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"errors"
	"math/big"
	"testing"

	"github.com/luxfi/zkverify/bn254"
	"github.com/luxfi/zkverify/groth16"
	"github.com/luxfi/zkverify/plonk"
)

func TestRiscZeroVerifyBeforeInitialize(t *testing.T) {
	v := NewRiscZeroVerifier()
	_, err := v.Verify(bn254.NewSoftwareOracle(), make([]byte, 260), [32]byte{}, [32]byte{})
	if !errors.Is(err, ErrInvalidInitialization) {
		t.Fatalf("expected InvalidInitialization, got %v", err)
	}
}

func TestRiscZeroSelectorBeforeInitialize(t *testing.T) {
	v := NewRiscZeroVerifier()
	if _, err := v.Selector(); !errors.Is(err, ErrInvalidInitialization) {
		t.Fatalf("expected InvalidInitialization, got %v", err)
	}
}

func TestRiscZeroInitializeIdempotenceRejected(t *testing.T) {
	v := NewRiscZeroVerifier()
	var root, id [32]byte
	root[0] = 0x53
	id[0] = 0x04

	if err := v.Initialize(root, id); err != nil {
		t.Fatalf("first Initialize: %v", err)
	}
	err := v.Initialize(root, id)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("expected AlreadyInitialized on second call, got %v", err)
	}
}

func TestRiscZeroSelectorDerivedAfterInitialize(t *testing.T) {
	v := NewRiscZeroVerifier()
	var root, id [32]byte
	root[0] = 0x53
	id[0] = 0x04
	if err := v.Initialize(root, id); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	sel, err := v.Selector()
	if err != nil {
		t.Fatalf("Selector: %v", err)
	}
	var zero [4]byte
	if sel == zero {
		t.Fatalf("selector should be derived, not the zero value")
	}
}

func TestRiscZeroSelectorMismatchCarriesReceivedExpected(t *testing.T) {
	v := NewRiscZeroVerifier()
	var root, id [32]byte
	root[0] = 0x53
	id[0] = 0x04
	if err := v.Initialize(root, id); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	expected, _ := v.Selector()
	wrongSeal := make([]byte, 260)
	copy(wrongSeal[:4], []byte{expected[0] ^ 0xff, expected[1], expected[2], expected[3]})

	_, err := v.Verify(bn254.NewSoftwareOracle(), wrongSeal, [32]byte{}, [32]byte{})
	var zerr *Error
	if !errors.As(err, &zerr) || zerr.Kind != SelectorMismatch {
		t.Fatalf("expected SelectorMismatch, got %v", err)
	}
	if zerr.Expected != expected {
		t.Fatalf("expected field should carry the verifier's own selector")
	}
}

func TestSP1Groth16TooShortSealIsInvalidProofData(t *testing.T) {
	v := NewSP1Groth16Verifier([4]byte{1, 2, 3, 4}, groth16.VerifyingKey{IC: []groth16.G1Affine{{X: big.NewInt(0), Y: big.NewInt(0)}}})
	_, err := v.VerifyProof(bn254.NewSoftwareOracle(), big.NewInt(1), nil, []byte{0, 0})
	if !errors.Is(err, ErrInvalidProofData) {
		t.Fatalf("expected InvalidProofData, got %v", err)
	}
}

func TestSP1PlonkShapeMismatchIsInvalidProofData(t *testing.T) {
	vk := plonk.VerifyingKey{N: 1, NInv: big.NewInt(1), Omega: big.NewInt(1), K: big.NewInt(2), P: 2}
	v := NewSP1PlonkVerifier([4]byte{1, 2, 3, 4}, vk)

	sealBytes := make([]byte, 4+28*32)
	copy(sealBytes[:4], []byte{1, 2, 3, 4})

	_, err := v.VerifyProof(bn254.NewSoftwareOracle(), big.NewInt(1), []byte("whatever"), sealBytes)
	if !errors.Is(err, ErrInvalidProofData) {
		t.Fatalf("expected InvalidProofData (BSB22 commitment count mismatch: vk has none, seal always carries one), got %v", err)
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := []ErrorKind{InvalidProofData, SelectorMismatch, InvalidInitialization, AlreadyInitialized, VerificationFailed}
	for _, k := range kinds {
		if k.String() == "Unknown" {
			t.Fatalf("ErrorKind %d missing a String() case", k)
		}
	}
}
