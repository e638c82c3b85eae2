// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package groth16 implements the Groth16 pairing-check engine of §4.D: a
// single core shared by RISC Zero receipt seals and SP1 Groth16 seals,
// differing only in whether the proof's A element is negated before the
// pairing equation is evaluated.
package groth16

import (
	"errors"
	"math/big"

	"github.com/luxfi/zkverify/bn254"
)

// ErrPublicInputCount is returned when the public-signal vector's length
// does not satisfy |w| + 1 == |IC|.
var ErrPublicInputCount = errors.New("groth16: public signal count does not match IC length")

// ErrOutOfField is returned when a public signal is not strictly less
// than the BN254 scalar prime r.
var ErrOutOfField = errors.New("groth16: public signal out of field")

// ErrVerificationFailed covers oracle errors downstream of the pre-checks,
// including a malformed curve point. A pairing equation that does not hold
// is reported as (false, nil), not as an error.
var ErrVerificationFailed = errors.New("groth16: verification failed")

// G1Affine is an affine BN254 G1 point with base-field coordinates. The
// zero value (X == nil, Y == nil) is never valid; callers must always
// supply explicit coordinates, including the point at infinity as (0, 0).
type G1Affine struct {
	X, Y *big.Int
}

// G2Affine is an affine BN254 G2 point. X0/Y0 hold each coordinate's c1
// (imaginary) component and X1/Y1 its c0 (real) component, matching the VK/proof
// constants' own field naming; marshalG2 emits them X0‖X1‖Y0‖Y1, the
// on-chain pairing-oracle convention (c1 first, i.e. "x[1]‖x[0]" in the
// original's x[0]/x[1] indexing).
type G2Affine struct {
	X0, X1, Y0, Y1 *big.Int
}

// VerifyingKey is the compiled-in Groth16 verification key of §3: fixed
// α, β, γ, δ, and an IC list whose length is one more than the number of
// public signals the circuit expects.
type VerifyingKey struct {
	Alpha G1Affine
	Beta  G2Affine
	Gamma G2Affine
	Delta G2Affine
	IC    []G1Affine
}

// Proof is a Groth16 proof: three group elements, no auxiliary data.
type Proof struct {
	A G1Affine
	B G2Affine
	C G1Affine
}

func marshalG1(p G1Affine) []byte {
	out := make([]byte, 64)
	p.X.FillBytes(out[:32])
	p.Y.FillBytes(out[32:])
	return out
}

func marshalG2(p G2Affine) []byte {
	out := make([]byte, 128)
	p.X0.FillBytes(out[:32])
	p.X1.FillBytes(out[32:64])
	p.Y0.FillBytes(out[64:96])
	p.Y1.FillBytes(out[96:])
	return out
}

// negateG1 returns (x, q−y), or (0, 0) when p is the point at infinity.
// This is plain base-field arithmetic, not a curve operation: whether p
// actually lies on the curve is left for the pairing oracle to reject.
func negateG1(p G1Affine) G1Affine {
	if p.X.Sign() == 0 && p.Y.Sign() == 0 {
		return p
	}
	q := bn254.Q()
	negY := new(big.Int).Sub(q, p.Y)
	negY.Mod(negY, q)
	return G1Affine{X: new(big.Int).Set(p.X), Y: negY}
}

// Verify runs the Groth16 pairing equation of §4.D against vk using
// oracle o for all curve arithmetic:
//
//	e(∓A, B) · e(α, β) · e(vk_x, γ) · e(C, δ) = 1
//
// negateA selects the sign convention: RISC Zero seals negate A, SP1
// seals do not (the equation is algebraically rearranged on the prover
// side so that A is supplied positive).
func Verify(o bn254.EcOracle, vk VerifyingKey, proof Proof, publicSignals []*big.Int, negateA bool) (bool, error) {
	if len(publicSignals)+1 != len(vk.IC) {
		return false, ErrPublicInputCount
	}
	r := bn254.R()
	for _, w := range publicSignals {
		if w.Sign() < 0 || w.Cmp(r) >= 0 {
			return false, ErrOutOfField
		}
	}

	points := make([][]byte, len(vk.IC))
	scalars := make([]*big.Int, len(vk.IC))
	points[0] = marshalG1(vk.IC[0])
	scalars[0] = big.NewInt(1)
	for i, w := range publicSignals {
		points[i+1] = marshalG1(vk.IC[i+1])
		scalars[i+1] = w
	}
	vkX, err := bn254.MSM(o, points, scalars)
	if err != nil {
		return false, ErrVerificationFailed
	}

	a := proof.A
	if negateA {
		a = negateG1(a)
	}

	pairingInput := make([]byte, 0, 192*4)
	pairingInput = append(pairingInput, marshalG1(a)...)
	pairingInput = append(pairingInput, marshalG2(proof.B)...)
	pairingInput = append(pairingInput, marshalG1(vk.Alpha)...)
	pairingInput = append(pairingInput, marshalG2(vk.Beta)...)
	pairingInput = append(pairingInput, vkX...)
	pairingInput = append(pairingInput, marshalG2(vk.Gamma)...)
	pairingInput = append(pairingInput, marshalG1(proof.C)...)
	pairingInput = append(pairingInput, marshalG2(vk.Delta)...)

	out, err := o.EcPairing(pairingInput)
	if err != nil {
		return false, ErrVerificationFailed
	}
	for _, b := range out {
		if b != 0 {
			return true, nil
		}
	}
	return false, nil
}
