// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"math/big"
	"testing"

	"github.com/luxfi/crypto/bn256"
)

func genPoint(k int64) []byte {
	return new(bn256.G1).ScalarBaseMult(big.NewInt(k)).Marshal()
}

func TestEcAddWithInfinity(t *testing.T) {
	o := NewSoftwareOracle()
	p := genPoint(7)

	out, err := EcAddPoints(o, InfinityG1(), p)
	if err != nil {
		t.Fatalf("EcAdd: %v", err)
	}
	if string(out) != string(p) {
		t.Fatalf("EcAdd(infinity, p) != p")
	}
}

func TestEcMulByZero(t *testing.T) {
	o := NewSoftwareOracle()
	out, err := EcMulPoint(o, genPoint(7), big.NewInt(0))
	if err != nil {
		t.Fatalf("EcMul: %v", err)
	}
	if !IsInfinityG1(out) {
		t.Fatalf("EcMul(p, 0) should be infinity")
	}
}

func TestMSMSkipsZeroScalars(t *testing.T) {
	o := NewSoftwareOracle()
	g1 := genPoint(7)
	g2 := genPoint(11)

	points := [][]byte{g1, g2}
	scalars := []*big.Int{big.NewInt(0), big.NewInt(3)}

	got, err := MSM(o, points, scalars)
	if err != nil {
		t.Fatalf("MSM: %v", err)
	}
	want, err := EcMulPoint(o, g2, big.NewInt(3))
	if err != nil {
		t.Fatalf("EcMul: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("MSM with a zero scalar should equal the remaining term")
	}
}

func TestEcPairingBadLength(t *testing.T) {
	o := NewSoftwareOracle()
	if _, err := o.EcPairing(make([]byte, 100)); err != ErrBadPairingInput {
		t.Fatalf("expected ErrBadPairingInput, got %v", err)
	}
}

func TestSha256(t *testing.T) {
	o := NewSoftwareOracle()
	out, err := o.Sha256([]byte("hello"))
	if err != nil {
		t.Fatalf("Sha256: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("expected 32-byte digest, got %d", len(out))
	}
}
