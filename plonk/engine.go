// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plonk

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/luxfi/zkverify/bn254"
	"github.com/luxfi/zkverify/transcript"
)

// ErrShapeMismatch covers the step-1 shape checks: the BSB22 commitment
// count must match the VK's custom-gate selector count, and the public
// input count must match P.
var ErrShapeMismatch = errors.New("plonk: shape mismatch")

// ErrZeroDenominator is returned when zeta collides with a domain point
// (zeta = omega^i for some i), which would divide by zero in the
// Lagrange-basis evaluation.
var ErrZeroDenominator = errors.New("plonk: zeta collides with a domain point")

// ErrVerificationFailed covers oracle and transcript errors. A final
// pairing equation that does not hold is reported as (false, nil), not as
// an error.
var ErrVerificationFailed = errors.New("plonk: verification failed")

func frOf(x *big.Int) fr.Element  { return bn254.FrFromBigInt(x) }
func bigOf(e fr.Element) *big.Int { return bn254.FrBigInt(e) }

// frBytes32 encodes x as a 32-byte big-endian value for transcript
// binding, fully reducing it modulo r first.
func frBytes32(x *big.Int) []byte {
	b := bn254.FrToBytes32(frOf(x))
	return b[:]
}

// Verify runs the eight-step PLONK verification identity of §4.E against
// vk using oracle o, over the wire commitments and claimed evaluations in
// proof and the declared public inputs.
func Verify(o bn254.EcOracle, vk VerifyingKey, proof Proof, publicInputs []*big.Int) (bool, error) {
	// 1. Shape checks.
	if len(proof.BSB22Commitments) != len(vk.QCP) || len(proof.BSB22AtZeta) != len(vk.QCP) {
		return false, ErrShapeMismatch
	}
	if len(publicInputs) != vk.P {
		return false, ErrShapeMismatch
	}

	// 2. Transcript init.
	tr := transcript.New("gamma", "beta", "alpha", "zeta", "u")

	canonicalVKPoints := []G1Affine{vk.S1, vk.S2, vk.S3, vk.QL, vk.QR, vk.QM, vk.QO, vk.QK}
	canonicalVKPoints = append(canonicalVKPoints, vk.QCP...)
	for _, p := range canonicalVKPoints {
		if err := tr.Bind("gamma", marshalG1(p)); err != nil {
			return false, ErrVerificationFailed
		}
	}
	for _, w := range publicInputs {
		if err := tr.Bind("gamma", frBytes32(w)); err != nil {
			return false, ErrVerificationFailed
		}
	}
	for _, p := range []G1Affine{proof.L, proof.R, proof.O} {
		if err := tr.Bind("gamma", marshalG1(p)); err != nil {
			return false, ErrVerificationFailed
		}
	}
	gammaH, err := tr.Compute("gamma")
	if err != nil {
		return false, ErrVerificationFailed
	}
	betaH, err := tr.Compute("beta")
	if err != nil {
		return false, ErrVerificationFailed
	}
	for _, p := range proof.BSB22Commitments {
		if err := tr.Bind("alpha", marshalG1(p)); err != nil {
			return false, ErrVerificationFailed
		}
	}
	if err := tr.Bind("alpha", marshalG1(proof.Z)); err != nil {
		return false, ErrVerificationFailed
	}
	alphaH, err := tr.Compute("alpha")
	if err != nil {
		return false, ErrVerificationFailed
	}
	for _, p := range []G1Affine{proof.H0, proof.H1, proof.H2} {
		if err := tr.Bind("zeta", marshalG1(p)); err != nil {
			return false, ErrVerificationFailed
		}
	}
	zetaH, err := tr.Compute("zeta")
	if err != nil {
		return false, ErrVerificationFailed
	}

	gamma := transcript.ToFr(gammaH)
	beta := transcript.ToFr(betaH)
	alpha := transcript.ToFr(alphaH)
	zeta := transcript.ToFr(zetaH)

	// 3. Vanishing polynomial and Lagrange-1.
	nBig := new(big.Int).SetUint64(vk.N)
	zetaN := bn254.PowMod(zeta, nBig)
	var one fr.Element
	one.SetOne()
	zh := bn254.ModSub(zetaN, one)

	nFr := frOf(nBig)
	nInv := frOf(vk.NInv)
	zMinus1 := bn254.ModSub(zeta, one)
	denom1, err := bn254.ModInv(bn254.ModMul(nFr, zMinus1))
	if err != nil {
		return false, ErrZeroDenominator
	}
	l1 := bn254.ModMul(zh, denom1)

	// 4. Public-input contribution.
	omega := frOf(vk.Omega)
	accOmega := one
	denoms := make([]fr.Element, vk.P)
	omegaPowers := make([]fr.Element, vk.P)
	for i := 0; i < vk.P; i++ {
		omegaPowers[i] = accOmega
		denoms[i] = bn254.ModSub(zeta, accOmega)
		accOmega = bn254.ModMul(accOmega, omega)
	}
	invDenoms, err := bn254.BatchInvert(denoms)
	if err != nil {
		return false, ErrZeroDenominator
	}

	zhOverN := bn254.ModMul(zh, nInv)
	var pi fr.Element
	for i := 0; i < vk.P; i++ {
		li := bn254.ModMul(bn254.ModMul(zhOverN, omegaPowers[i]), invDenoms[i])
		term := bn254.ModMul(li, frOf(publicInputs[i]))
		pi = bn254.ModAdd(pi, term)
	}

	// 5. BSB22 contribution. Each denominator is inverted on its own.
	for j, comm := range proof.BSB22Commitments {
		hashed, err := transcript.HashG1ToFr(marshalG1(comm))
		if err != nil {
			return false, ErrVerificationFailed
		}
		exp := new(big.Int).Add(big.NewInt(int64(vk.P)), new(big.Int).SetUint64(vk.CommitmentConstraintIndexes[j]))
		omegaExp := bn254.PowMod(omega, exp)
		denom := bn254.ModSub(zeta, omegaExp)
		invDenom, err := bn254.ModInv(denom)
		if err != nil {
			return false, ErrZeroDenominator
		}
		lj := bn254.ModMul(bn254.ModMul(zhOverN, omegaExp), invDenom)
		pi = bn254.ModAdd(pi, bn254.ModMul(lj, hashed))
	}

	// 6. Constant term of linearization.
	l := frOf(proof.LAtZeta)
	rEval := frOf(proof.RAtZeta)
	oEval := frOf(proof.OAtZeta)
	s1Eval := frOf(proof.S1AtZeta)
	s2Eval := frOf(proof.S2AtZeta)
	zOmega := frOf(proof.ZAtZetaOmega)

	alpha2 := bn254.ModMul(alpha, alpha)
	alpha2L1 := bn254.ModMul(alpha2, l1)

	betaS1 := bn254.ModMul(beta, s1Eval)
	betaS2 := bn254.ModMul(beta, s2Eval)
	f1 := bn254.ModAdd(bn254.ModAdd(l, betaS1), gamma)
	f2 := bn254.ModAdd(bn254.ModAdd(rEval, betaS2), gamma)
	f3 := bn254.ModAdd(oEval, gamma)
	t1 := bn254.ModMul(bn254.ModMul(bn254.ModMul(f1, f2), f3), bn254.ModMul(alpha, zOmega))

	sum := bn254.ModAdd(bn254.ModSub(t1, alpha2L1), pi)
	var constLin fr.Element
	constLin.Neg(&sum)

	// 7. Multi-scalar reconstruction of [linearized].
	points := make([][]byte, 0, len(vk.QCP)+9)
	scalars := make([]*big.Int, 0, len(vk.QCP)+9)
	for j, comm := range proof.BSB22Commitments {
		points = append(points, marshalG1(comm))
		scalars = append(scalars, proof.BSB22AtZeta[j])
	}
	points = append(points, marshalG1(vk.QL), marshalG1(vk.QR), marshalG1(vk.QM), marshalG1(vk.QO), marshalG1(vk.QK))
	scalars = append(scalars, bigOf(l), bigOf(rEval), bigOf(bn254.ModMul(l, rEval)), bigOf(oEval), big.NewInt(1))

	s1Coeff := bn254.ModMul(bn254.ModMul(bn254.ModMul(f1, f2), beta), bn254.ModMul(alpha, zOmega))
	points = append(points, marshalG1(vk.S3))
	scalars = append(scalars, bigOf(s1Coeff))

	k := frOf(vk.K)
	k2 := bn254.ModMul(k, k)
	betaZeta := bn254.ModMul(beta, zeta)
	g1 := bn254.ModAdd(bn254.ModAdd(l, betaZeta), gamma)
	g2 := bn254.ModAdd(bn254.ModAdd(rEval, bn254.ModMul(betaZeta, k)), gamma)
	g3 := bn254.ModAdd(bn254.ModAdd(oEval, bn254.ModMul(betaZeta, k2)), gamma)
	coeffZ := bn254.ModSub(alpha2L1, bn254.ModMul(bn254.ModMul(bn254.ModMul(g1, g2), g3), alpha))
	points = append(points, marshalG1(proof.Z))
	scalars = append(scalars, bigOf(coeffZ))

	var negZh fr.Element
	negZh.Neg(&zh)
	nPlus2 := new(big.Int).Add(nBig, big.NewInt(2))
	zetaNPlus2 := bn254.PowMod(zeta, nPlus2)
	c1Pos := bn254.ModMul(zetaNPlus2, zh)
	var c1 fr.Element
	c1.Neg(&c1Pos)
	doubleNPlus2 := new(big.Int).Mul(nPlus2, big.NewInt(2))
	zeta2NPlus2 := bn254.PowMod(zeta, doubleNPlus2)
	c2Pos := bn254.ModMul(zeta2NPlus2, zh)
	var c2 fr.Element
	c2.Neg(&c2Pos)

	points = append(points, marshalG1(proof.H0), marshalG1(proof.H1), marshalG1(proof.H2))
	scalars = append(scalars, bigOf(negZh), bigOf(c1), bigOf(c2))

	fDigest, err := bn254.MSM(o, points, scalars)
	if err != nil {
		return false, ErrVerificationFailed
	}

	// 8. Batched KZG opening.
	digestList := make([][]byte, 0, 6+len(vk.QCP))
	digestList = append(digestList, fDigest, marshalG1(proof.L), marshalG1(proof.R), marshalG1(proof.O), marshalG1(vk.S1), marshalG1(vk.S2))
	digestList = append(digestList, pointsOnly(proof.BSB22Commitments)...)

	valueList := make([]fr.Element, 0, 6+len(vk.QCP))
	valueList = append(valueList, constLin, l, rEval, oEval, s1Eval, s2Eval)
	for _, b := range proof.BSB22AtZeta {
		valueList = append(valueList, frOf(b))
	}

	fold := transcript.New("gamma")
	if err := fold.Bind("gamma", frBytes32(bigOf(zeta))); err != nil {
		return false, ErrVerificationFailed
	}
	for _, d := range digestList {
		if err := fold.Bind("gamma", d); err != nil {
			return false, ErrVerificationFailed
		}
	}
	for _, v := range valueList {
		if err := fold.Bind("gamma", frBytes32(bigOf(v))); err != nil {
			return false, ErrVerificationFailed
		}
	}
	if err := fold.Bind("gamma", frBytes32(bigOf(zOmega))); err != nil {
		return false, ErrVerificationFailed
	}
	foldH, err := fold.Compute("gamma")
	if err != nil {
		return false, ErrVerificationFailed
	}
	gammaFold := transcript.ToFr(foldH)

	powers := make([]*big.Int, len(digestList))
	var p fr.Element
	p.SetOne()
	for i := range powers {
		powers[i] = bigOf(p)
		p = bn254.ModMul(p, gammaFold)
	}

	dFold, err := bn254.MSM(o, digestList, powers)
	if err != nil {
		return false, ErrVerificationFailed
	}
	var vFold fr.Element
	for i, v := range valueList {
		vFold = bn254.ModAdd(vFold, bn254.ModMul(frOf(powers[i]), v))
	}

	if err := tr.Bind("u", frBytes32(bigOf(gammaFold))); err != nil {
		return false, ErrVerificationFailed
	}
	for _, b := range [][]byte{dFold, marshalG1(proof.Z), marshalG1(proof.WZeta), marshalG1(proof.WZetaOmega)} {
		if err := tr.Bind("u", b); err != nil {
			return false, ErrVerificationFailed
		}
	}
	uH, err := tr.Compute("u")
	if err != nil {
		return false, ErrVerificationFailed
	}
	u := transcript.ToFr(uH)

	// Final pairing check.
	omegaZeta := bn254.ModMul(zeta, omega)
	evalPoints := []fr.Element{zeta, omegaZeta}
	digests := [][]byte{dFold, marshalG1(proof.Z)}
	evals := []fr.Element{vFold, zOmega}
	proofs := [][]byte{marshalG1(proof.WZeta), marshalG1(proof.WZetaOmega)}
	rnd := []fr.Element{one, u}

	qDigest, err := bn254.MSM(o, proofs, []*big.Int{bigOf(rnd[0]), bigOf(rnd[1])})
	if err != nil {
		return false, ErrVerificationFailed
	}

	dPrimeA, err := bn254.MSM(o, digests, []*big.Int{bigOf(rnd[0]), bigOf(rnd[1])})
	if err != nil {
		return false, ErrVerificationFailed
	}

	var sumRndEval fr.Element
	for i := range rnd {
		sumRndEval = bn254.ModAdd(sumRndEval, bn254.ModMul(rnd[i], evals[i]))
	}
	var negSumRndEval fr.Element
	negSumRndEval.Neg(&sumRndEval)
	g1Term, err := bn254.EcMulPoint(o, marshalG1(vk.G1), bigOf(negSumRndEval))
	if err != nil {
		return false, ErrVerificationFailed
	}

	scaledPointScalars := make([]*big.Int, len(rnd))
	for i := range rnd {
		scaledPointScalars[i] = bigOf(bn254.ModMul(rnd[i], evalPoints[i]))
	}
	proofsScaled, err := bn254.MSM(o, proofs, scaledPointScalars)
	if err != nil {
		return false, ErrVerificationFailed
	}

	dPrime, err := bn254.EcAddPoints(o, dPrimeA, g1Term)
	if err != nil {
		return false, ErrVerificationFailed
	}
	dPrime, err = bn254.EcAddPoints(o, dPrime, proofsScaled)
	if err != nil {
		return false, ErrVerificationFailed
	}

	negQ, err := bn254.NegateG1(qDigest)
	if err != nil {
		return false, ErrVerificationFailed
	}

	pairingInput := make([]byte, 0, 192*2)
	pairingInput = append(pairingInput, dPrime...)
	pairingInput = append(pairingInput, marshalG2(vk.G2[0])...)
	pairingInput = append(pairingInput, negQ...)
	pairingInput = append(pairingInput, marshalG2(vk.G2[1])...)

	return bn254.PairingHolds(o, pairingInput), nil
}

func pointsOnly(pts []G1Affine) [][]byte {
	out := make([][]byte, len(pts))
	for i, p := range pts {
		out[i] = marshalG1(p)
	}
	return out
}
