// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/luxfi/crypto/bn256"
)

// Q is the BN254 base-field prime, used only for the G1 y-coordinate
// negation y -> q - y (Data Model, §3).
func Q() *big.Int {
	return fp.Modulus()
}

// G1 is a point on the BN254 base curve, encoded as a 64-byte big-endian
// (x, y) pair once marshaled. (0, 0) is the designated infinity encoding.
type G1 = bn256.G1

// G2 is a point on the BN254 twist, encoded as a 128-byte big-endian
// c1||c0 pair per coordinate once marshaled (the on-chain pairing-oracle
// convention, "x[1]||x[0]" in EIP-197 wording).
type G2 = bn256.G2

// IsInfinityG1 reports whether the 64-byte marshaled form of p is the
// designated (0, 0) infinity encoding.
func IsInfinityG1(marshaled []byte) bool {
	if len(marshaled) != 64 {
		return false
	}
	for _, b := range marshaled {
		if b != 0 {
			return false
		}
	}
	return true
}

// NegateG1 returns the negation of the G1 point encoded in marshaled:
// infinity negates to infinity; otherwise (x, y) negates to (x, q-y).
// This delegates to the oracle's curve arithmetic rather than reimplementing
// base-field reduction, per the spec's choice to push curve arithmetic to
// the precompile/software oracle (§1 non-goals, §4.A g1_negate).
func NegateG1(marshaled []byte) ([]byte, error) {
	if IsInfinityG1(marshaled) {
		out := make([]byte, 64)
		return out, nil
	}
	var p bn256.G1
	if _, err := p.Unmarshal(marshaled); err != nil {
		return nil, err
	}
	var neg bn256.G1
	neg.Neg(&p)
	return neg.Marshal(), nil
}
