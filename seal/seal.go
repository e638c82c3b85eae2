// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package seal implements the seal dispatchers of §4.F: strip the 4-byte
// selector prefix from an opaque proof blob, decode its ABI-encoded
// payload into a typed record, derive the public-signal vector, and route
// to the Groth16 or PLONK engine.
package seal

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/luxfi/zkverify/bn254"
	"github.com/luxfi/zkverify/groth16"
	"github.com/luxfi/zkverify/plonk"
	"github.com/luxfi/zkverify/risc0"
)

// ErrTooShort is returned when a seal is shorter than the 4-byte selector
// prefix.
var ErrTooShort = errors.New("seal: shorter than the selector prefix")

// ErrSelectorMismatch is returned when a seal's selector prefix does not
// match the expected, compiled-in selector.
type ErrSelectorMismatch struct {
	Received, Expected [4]byte
}

func (e *ErrSelectorMismatch) Error() string {
	return "seal: selector mismatch"
}

// ErrMalformed is returned when the ABI-encoded payload's length does not
// match the record shape a dispatcher expects.
var ErrMalformed = errors.New("seal: malformed payload")

const wordSize = 32

func word(payload []byte, i int) *big.Int {
	return new(big.Int).SetBytes(payload[i*wordSize : (i+1)*wordSize])
}

// splitSelector checks the 4-byte length floor, compares the selector
// against expected, and returns the remaining payload.
func splitSelector(sealBytes []byte, expected [4]byte) ([]byte, error) {
	if len(sealBytes) < 4 {
		return nil, ErrTooShort
	}
	var received [4]byte
	copy(received[:], sealBytes[:4])
	if received != expected {
		return nil, &ErrSelectorMismatch{Received: received, Expected: expected}
	}
	return sealBytes[4:], nil
}

// decodeGroth16ABC decodes a 256-byte ABI payload laid out as
// {uint256[2] a, uint256[2][2] b, uint256[2] c} (the RISC Zero and SP1
// Groth16 seal shapes are byte-for-byte identical once the selector is
// stripped; only the public-signal derivation differs between them).
func decodeGroth16ABC(payload []byte) (groth16.Proof, error) {
	if len(payload) != 8*wordSize {
		return groth16.Proof{}, ErrMalformed
	}
	return groth16.Proof{
		A: groth16.G1Affine{X: word(payload, 0), Y: word(payload, 1)},
		B: groth16.G2Affine{X0: word(payload, 2), X1: word(payload, 3), Y0: word(payload, 4), Y1: word(payload, 5)},
		C: groth16.G1Affine{X: word(payload, 6), Y: word(payload, 7)},
	}, nil
}

// VerifyRiscZeroGroth16 implements the RISC Zero dispatcher of §4.F: strip
// and check the selector, decode the Groth16 proof, build the public
// signals from the receipt claim digest, and run the Groth16 engine with
// A negated.
func VerifyRiscZeroGroth16(
	o bn254.EcOracle,
	sealBytes []byte,
	selector [4]byte,
	controlRoot, bn254ControlID [32]byte,
	imageID, journalDigest [32]byte,
) (bool, error) {
	payload, err := splitSelector(sealBytes, selector)
	if err != nil {
		return false, err
	}
	proof, err := decodeGroth16ABC(payload)
	if err != nil {
		return false, err
	}

	claim := risc0.ReceiptClaimOk(imageID, journalDigest)
	signalWords := risc0.PublicSignals(controlRoot, claim, bn254ControlID)
	signals := make([]*big.Int, len(signalWords))
	for i, w := range signalWords {
		signals[i] = new(big.Int).SetBytes(w[:])
	}

	return groth16.Verify(o, risc0.VerifyingKey, proof, signals, true)
}

// VerifyRiscZeroIntegrity is the verify_integrity variant of §6: the
// caller supplies the receipt claim digest directly rather than an
// (image_id, journal_digest) pair the dispatcher would otherwise digest
// itself.
func VerifyRiscZeroIntegrity(
	o bn254.EcOracle,
	sealBytes []byte,
	selector [4]byte,
	controlRoot, bn254ControlID [32]byte,
	claimDigest [32]byte,
) (bool, error) {
	payload, err := splitSelector(sealBytes, selector)
	if err != nil {
		return false, err
	}
	proof, err := decodeGroth16ABC(payload)
	if err != nil {
		return false, err
	}

	ctrlLo, ctrlHi := risc0.SplitDigest(controlRoot)
	claimLo, claimHi := risc0.SplitDigest(claimDigest)
	signals := []*big.Int{
		new(big.Int).SetBytes(padTo32(ctrlLo[:])),
		new(big.Int).SetBytes(padTo32(ctrlHi[:])),
		new(big.Int).SetBytes(padTo32(claimLo[:])),
		new(big.Int).SetBytes(padTo32(claimHi[:])),
		new(big.Int).SetBytes(bn254ControlID[:]),
	}

	return groth16.Verify(o, risc0.VerifyingKey, proof, signals, true)
}

func padTo32(b []byte) []byte {
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// sp1PublicSignals implements §4.F's SP1 public-signal derivation:
// SHA256(public_values) with the top three bits of its first byte
// cleared, reduced mod r, paired with program_vkey (also reduced).
func sp1PublicSignals(programVKey *big.Int, publicValues []byte) []*big.Int {
	d := sha256.Sum256(publicValues)
	d[0] &= 0x1F
	digest := new(big.Int).SetBytes(d[:])
	return []*big.Int{
		new(big.Int).Mod(programVKey, bn254.R()),
		new(big.Int).Mod(digest, bn254.R()),
	}
}

// VerifySP1Groth16 implements the SP1 Groth16 dispatcher: strip and check
// the selector, decode the Groth16 proof, derive the two-element public
// signal vector from (program_vkey, public_values), and run the Groth16
// engine with A left positive.
func VerifySP1Groth16(
	o bn254.EcOracle,
	sealBytes []byte,
	selector [4]byte,
	vk groth16.VerifyingKey,
	programVKey *big.Int,
	publicValues []byte,
) (bool, error) {
	payload, err := splitSelector(sealBytes, selector)
	if err != nil {
		return false, err
	}
	proof, err := decodeGroth16ABC(payload)
	if err != nil {
		return false, err
	}

	signals := sp1PublicSignals(programVKey, publicValues)
	return groth16.Verify(o, vk, proof, signals, false)
}

// plonkSP1Words is the word count of §6's SP1 PLONK seal layout: wire
// commitments (6), permutation commitment (2), quotient commitments (6),
// bsb22 commitment (2), wire evaluations (3), permutation evaluations
// (3), bsb22 evaluation (1), quotient evaluation (1), opening proof (2),
// opening proof at omega (2) = 28 words.
const plonkSP1Words = 28

// decodePlonkSP1 decodes the 28-word ABI layout of §6 into a plonk.Proof.
// The quotient evaluation word is part of the wire format but unused by
// the engine's reconstruction (§4.E never references it directly).
func decodePlonkSP1(payload []byte) (plonk.Proof, error) {
	if len(payload) != plonkSP1Words*wordSize {
		return plonk.Proof{}, ErrMalformed
	}
	g1 := func(i int) plonk.G1Affine {
		return plonk.G1Affine{X: word(payload, i), Y: word(payload, i+1)}
	}

	return plonk.Proof{
		L: g1(0), R: g1(2), O: g1(4),
		Z:  g1(6),
		H0: g1(8), H1: g1(10), H2: g1(12),
		BSB22Commitments: []plonk.G1Affine{g1(14)},
		LAtZeta:          word(payload, 16),
		RAtZeta:          word(payload, 17),
		OAtZeta:          word(payload, 18),
		ZAtZetaOmega:     word(payload, 19),
		S1AtZeta:         word(payload, 20),
		S2AtZeta:         word(payload, 21),
		BSB22AtZeta:      []*big.Int{word(payload, 22)},
		// word(payload, 23) is the quotient evaluation.
		WZeta:      g1(24),
		WZetaOmega: g1(26),
	}, nil
}

// VerifySP1Plonk implements the SP1 PLONK dispatcher: strip and check the
// selector, decode the 25-field PLONK seal, derive the two-element public
// signal vector the same way the Groth16 SP1 dispatcher does, and run the
// PLONK engine.
func VerifySP1Plonk(
	o bn254.EcOracle,
	sealBytes []byte,
	selector [4]byte,
	vk plonk.VerifyingKey,
	programVKey *big.Int,
	publicValues []byte,
) (bool, error) {
	payload, err := splitSelector(sealBytes, selector)
	if err != nil {
		return false, err
	}
	proof, err := decodePlonkSP1(payload)
	if err != nil {
		return false, err
	}

	signals := sp1PublicSignals(programVKey, publicValues)
	return plonk.Verify(o, vk, proof, signals)
}
