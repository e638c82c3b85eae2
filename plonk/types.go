// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package plonk implements the PLONK verification engine of §4.E: the
// largest component of the verification core, running Fiat-Shamir
// challenge derivation, public-input and BSB22 Lagrange contributions, a
// linearized-polynomial reconstruction via multi-scalar multiplication,
// a batched KZG opening fold, and a final two-pairing check.
package plonk

import (
	"math/big"
)

// G1Affine is an affine BN254 G1 point with base-field coordinates.
type G1Affine struct {
	X, Y *big.Int
}

func marshalG1(p G1Affine) []byte {
	out := make([]byte, 64)
	p.X.FillBytes(out[:32])
	p.Y.FillBytes(out[32:])
	return out
}

// G2Affine is an affine BN254 G2 point. X0/Y0 hold each coordinate's c1
// (imaginary) component and X1/Y1 its c0 (real) component, matching the VK constants'
// own field naming; marshalG2 emits them X0‖X1‖Y0‖Y1, the on-chain
// pairing-oracle convention.
type G2Affine struct {
	X0, X1, Y0, Y1 *big.Int
}

func marshalG2(p G2Affine) []byte {
	out := make([]byte, 128)
	p.X0.FillBytes(out[:32])
	p.X1.FillBytes(out[32:64])
	p.Y0.FillBytes(out[64:96])
	p.Y1.FillBytes(out[96:])
	return out
}

// VerifyingKey is the compiled-in PLONK verification key of §3.
type VerifyingKey struct {
	N     uint64   // domain size, a power of two
	NInv  *big.Int // N^-1 mod r
	Omega *big.Int // primitive N-th root of unity
	K     *big.Int // coset shift, k^2 != k != 1
	P     int      // number of public variables

	QL, QR, QM, QO, QK G1Affine
	S1, S2, S3         G1Affine

	// QCP holds the BSB22 custom-gate selector commitments; each entry's
	// index corresponds 1:1 with CommitmentConstraintIndexes.
	QCP                         []G1Affine
	CommitmentConstraintIndexes []uint64

	// KZG reference string: G1 is g1, G2[0] is g2, G2[1] is [tau]2.
	G1 G1Affine
	G2 [2]G2Affine
}

// Proof is a PLONK proof matching the 25-field layout of §3 (fewer fields
// appear here because BSB22 commitments/evaluations are variable-length
// slices rather than fixed struct fields).
type Proof struct {
	L, R, O G1Affine
	Z       G1Affine
	H0, H1, H2 G1Affine

	// BSB22Commitments holds one commitment per custom gate, matching
	// VerifyingKey.QCP in both length and order.
	BSB22Commitments []G1Affine

	LAtZeta, RAtZeta, OAtZeta     *big.Int
	S1AtZeta, S2AtZeta            *big.Int
	BSB22AtZeta                   []*big.Int
	ZAtZetaOmega                  *big.Int

	WZeta, WZetaOmega G1Affine
}
