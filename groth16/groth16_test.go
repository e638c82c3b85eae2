// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package groth16

import (
	"math/big"
	"testing"

	"github.com/luxfi/zkverify/bn254"
)

func sampleVK(n int) VerifyingKey {
	ic := make([]G1Affine, n+1)
	for i := range ic {
		ic[i] = G1Affine{X: big.NewInt(0), Y: big.NewInt(0)}
	}
	return VerifyingKey{
		Alpha: G1Affine{X: big.NewInt(0), Y: big.NewInt(0)},
		Beta:  G2Affine{X0: big.NewInt(0), X1: big.NewInt(0), Y0: big.NewInt(0), Y1: big.NewInt(0)},
		Gamma: G2Affine{X0: big.NewInt(0), X1: big.NewInt(0), Y0: big.NewInt(0), Y1: big.NewInt(0)},
		Delta: G2Affine{X0: big.NewInt(0), X1: big.NewInt(0), Y0: big.NewInt(0), Y1: big.NewInt(0)},
		IC:    ic,
	}
}

func TestPublicInputCountMismatchRejectsBeforeEC(t *testing.T) {
	vk := sampleVK(2)
	proof := Proof{}
	_, err := Verify(nil, vk, proof, []*big.Int{big.NewInt(1)}, true)
	if err != ErrPublicInputCount {
		t.Fatalf("expected ErrPublicInputCount, got %v", err)
	}
}

func TestOutOfFieldSignalRejectsBeforeEC(t *testing.T) {
	vk := sampleVK(1)
	proof := Proof{}
	w := new(big.Int).Set(bn254.R())
	_, err := Verify(nil, vk, proof, []*big.Int{w}, true)
	if err != ErrOutOfField {
		t.Fatalf("expected ErrOutOfField, got %v", err)
	}
}

func TestNegateG1Infinity(t *testing.T) {
	inf := G1Affine{X: big.NewInt(0), Y: big.NewInt(0)}
	neg := negateG1(inf)
	if neg.X.Sign() != 0 || neg.Y.Sign() != 0 {
		t.Fatalf("negating infinity should yield infinity")
	}
}

func TestNegateG1Point(t *testing.T) {
	p := G1Affine{X: big.NewInt(5), Y: big.NewInt(7)}
	neg := negateG1(p)
	want := new(big.Int).Sub(bn254.Q(), big.NewInt(7))
	if neg.Y.Cmp(want) != 0 {
		t.Fatalf("negateG1: expected y = q-7, got %v", neg.Y)
	}
	if neg.X.Cmp(p.X) != 0 {
		t.Fatalf("negateG1 must not change x")
	}
}

// TestVerifyAcceptsSelfConsistentProof builds a proof/VK pair that is
// genuinely valid under the pairing equation rather than all-zero: set
// proof.A = vk.Alpha, proof.B = vk.Beta, proof.C = infinity, and IC =
// [infinity] (no public signals), so that
//
//	e(-A,B)·e(α,β)·e(vk_x,γ)·e(C,δ) = e(-α,β)·e(α,β)·1·1 = e(0,β) = 1
//
// regardless of γ/δ (reused from a real compiled-in RISC Zero VK here
// purely as valid, arbitrary G2 points). This exercises the full
// marshalG1/marshalG2/EcPairing path end-to-end and would have caught a
// G2 coordinate-order regression that an all-zero fixture cannot.
func TestVerifyAcceptsSelfConsistentProof(t *testing.T) {
	alpha := G1Affine{
		X: bigFromHex(t, "2D4D9AA7E302D9DF41749D5507949D05DBEA33FBB16C643B22F599A2BE6DF2E2"),
		Y: bigFromHex(t, "14BEDD503C37CEB061D8EC60209FE345CE89830A19230301F076CAFF004D1926"),
	}
	beta := G2Affine{
		X0: bigFromHex(t, "967032FCBF776D1AFC985F88877F182D38480A653F2DECAA9794CBC3BF3060C"),
		X1: bigFromHex(t, "E187847AD4C798374D0D6732BF501847DD68BC0E071241E0213BC7FC13DB7AB"),
		Y0: bigFromHex(t, "304CFBD1E08A704A99F5E847D93F8C3CAAFDDEC46B7A0D379DA69A4D112346A7"),
		Y1: bigFromHex(t, "1739C1B1A457A8C7313123D24D2F9192F896B7C63EEA05A9D57F06547AD0CEC8"),
	}
	gamma := G2Affine{
		X0: bigFromHex(t, "198E9393920D483A7260BFB731FB5D25F1AA493335A9E71297E485B7AEF312C2"),
		X1: bigFromHex(t, "1800DEEF121F1E76426A00665E5C4479674322D4F75EDADD46DEBD5CD992F6ED"),
		Y0: bigFromHex(t, "90689D0585FF075EC9E99AD690C3395BC4B313370B38EF355ACDADCD122975B"),
		Y1: bigFromHex(t, "12C85EA5DB8C6DEB4AAB71808DCB408FE3D1E7690C43D37B4CE6CC0166FA7DAA"),
	}
	delta := G2Affine{
		X0: bigFromHex(t, "3B03CD5EFFA95AC9BEE94F1F5EF907157BDA4812CCF0B4C91F42BB629F83A1C"),
		X1: bigFromHex(t, "1AA085FF28179A12D922DBA0547057CCAAE94B9D69CFAA4E60401FEA7F3E0333"),
		Y0: bigFromHex(t, "110C10134F200B19F6490846D518C9AEA868366EFB7228CA5C91D2940D030762"),
		Y1: bigFromHex(t, "1E60F31FCBF757E837E867178318832D0B2D74D59E2FEA1C7142DF187D3FC6D3"),
	}

	vk := VerifyingKey{
		Alpha: alpha,
		Beta:  beta,
		Gamma: gamma,
		Delta: delta,
		IC:    []G1Affine{{X: big.NewInt(0), Y: big.NewInt(0)}},
	}
	proof := Proof{
		A: alpha,
		B: beta,
		C: G1Affine{X: big.NewInt(0), Y: big.NewInt(0)},
	}

	ok, err := Verify(bn254.NewSoftwareOracle(), vk, proof, nil, true)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected self-consistent proof to verify")
	}
}

func bigFromHex(t *testing.T, hex string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		t.Fatalf("malformed test constant %q", hex)
	}
	return v
}

func TestVerifyRejectsOnOraclePairingFailure(t *testing.T) {
	vk := sampleVK(0)
	proof := Proof{
		A: G1Affine{X: big.NewInt(0), Y: big.NewInt(0)},
		B: G2Affine{X0: big.NewInt(0), X1: big.NewInt(0), Y0: big.NewInt(0), Y1: big.NewInt(0)},
		C: G1Affine{X: big.NewInt(0), Y: big.NewInt(0)},
	}
	ok, err := Verify(bn254.NewSoftwareOracle(), vk, proof, nil, true)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatalf("an all-zero proof/VK should not verify")
	}
}
