// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bn254 implements the field and curve primitives of the BN254
// verification core: modular arithmetic over the scalar prime r, G1/G2
// point encoding, batched inversion, and the EcOracle abstraction over
// EcAdd/EcMul/EcPairing/Sha256.
package bn254

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrZeroInverse is returned by ModInv and BatchInvert when asked to invert
// zero, which has no multiplicative inverse mod r.
var ErrZeroInverse = errors.New("bn254: cannot invert zero")

// R is the BN254 scalar field prime. All Fr arithmetic in this package is
// reduced modulo R.
func R() *big.Int {
	return fr.Modulus()
}

// FrFromBigInt reduces x modulo r and returns the field element.
func FrFromBigInt(x *big.Int) fr.Element {
	var e fr.Element
	e.SetBigInt(x)
	return e
}

// FrFromBytes interprets b big-endian and reduces modulo r.
func FrFromBytes(b []byte) fr.Element {
	var e fr.Element
	e.SetBytes(b)
	return e
}

// FrToBytes32 encodes e as a 32-byte big-endian value, fully reduced.
func FrToBytes32(e fr.Element) [32]byte {
	return e.Bytes()
}

// FrBigInt returns e as a *big.Int in [0, r).
func FrBigInt(e fr.Element) *big.Int {
	var out big.Int
	e.BigInt(&out)
	return &out
}

// InField reports whether x < r, per the Data Model invariant that every
// in-field quantity fed to a pairing must be reduced below r.
func InField(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(R()) < 0
}

// ModAdd returns (a + b) mod r.
func ModAdd(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)
	return z
}

// ModSub returns (a - b) mod r.
func ModSub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)
	return z
}

// ModMul returns (a * b) mod r. fr.Element.Mul carries the full
// double-width intermediate internally (Montgomery multiplication), which
// is the only correct semantics per the spec's note on modular-arithmetic
// precision: no intermediate here is allowed to escape unreduced.
func ModMul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)
	return z
}

// PowMod computes base^exp mod r via left-to-right square-and-multiply
// (fr.Element.Exp implements exactly this bit scan).
func PowMod(base fr.Element, exp *big.Int) fr.Element {
	var z fr.Element
	z.Exp(base, exp)
	return z
}

// ModInv computes a^(r-2) mod r, the Fermat's-little-theorem inverse of a.
// It fails on a zero input, which has no inverse.
func ModInv(a fr.Element) (fr.Element, error) {
	if a.IsZero() {
		return fr.Element{}, ErrZeroInverse
	}
	var z fr.Element
	z.Inverse(&a)
	return z, nil
}

// BatchInvert returns the inverses of every element of v in a new slice
// (v itself is left unchanged) using Montgomery's trick: one accumulated
// run of prefix products, a single modular inversion of the running
// product, then a backward scan that peels off each individual inverse.
// This amortizes n inversions into one, at the cost of 3n multiplications.
//
// Fails if any element of v is zero.
func BatchInvert(v []fr.Element) ([]fr.Element, error) {
	n := len(v)
	if n == 0 {
		return nil, nil
	}

	prefix := make([]fr.Element, n)
	prefix[0].SetOne()
	for i := 1; i < n; i++ {
		prefix[i].Mul(&prefix[i-1], &v[i-1])
	}

	var acc fr.Element
	acc.Mul(&prefix[n-1], &v[n-1])
	if acc.IsZero() {
		return nil, ErrZeroInverse
	}
	accInv, err := ModInv(acc)
	if err != nil {
		return nil, err
	}

	out := make([]fr.Element, n)
	for i := n - 1; i >= 0; i-- {
		var t fr.Element
		t.Mul(&accInv, &prefix[i])
		out[i] = t
		accInv.Mul(&accInv, &v[i])
	}
	return out, nil
}
