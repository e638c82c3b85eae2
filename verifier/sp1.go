// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"math/big"

	"github.com/luxfi/zkverify/bn254"
	"github.com/luxfi/zkverify/groth16"
	"github.com/luxfi/zkverify/plonk"
	"github.com/luxfi/zkverify/seal"
)

const (
	sp1Groth16Version = "sp1-groth16-v1"
	sp1PlonkVersion   = "sp1-plonk-v1"
)

// SP1Groth16Verifier is the stateless SP1 Groth16 verifier of §6: unlike
// RiscZeroVerifier it carries no persisted initialization state — its
// selector and verifying key are both fixed at construction.
type SP1Groth16Verifier struct {
	selector [4]byte
	vk       groth16.VerifyingKey
}

// NewSP1Groth16Verifier constructs a stateless SP1 Groth16 verifier bound
// to the given fixed selector and verifying key.
func NewSP1Groth16Verifier(selector [4]byte, vk groth16.VerifyingKey) *SP1Groth16Verifier {
	return &SP1Groth16Verifier{selector: selector, vk: vk}
}

// Version returns the verifier's compiled-in version string.
func (v *SP1Groth16Verifier) Version() string { return sp1Groth16Version }

// Selector returns the fixed four-byte verifier selector.
func (v *SP1Groth16Verifier) Selector() [4]byte { return v.selector }

// Name identifies this verifier in a registry.Registry.
func (v *SP1Groth16Verifier) Name() string { return "sp1-groth16" }

// VerifyProof implements §6's verify_proof(program_vkey, public_values,
// seal_bytes): strip and check the selector, decode the Groth16 proof,
// derive the two-element public-signal vector, and run the Groth16
// engine with A left positive.
func (v *SP1Groth16Verifier) VerifyProof(o bn254.EcOracle, programVKey *big.Int, publicValues, sealBytes []byte) (bool, error) {
	ok, err := seal.VerifySP1Groth16(o, sealBytes, v.selector, v.vk, programVKey, publicValues)
	return ok, translateSP1Err(err)
}

// SP1PlonkVerifier is the stateless SP1 PLONK verifier of §6.
type SP1PlonkVerifier struct {
	selector [4]byte
	vk       plonk.VerifyingKey
}

// NewSP1PlonkVerifier constructs a stateless SP1 PLONK verifier bound to
// the given fixed selector and verifying key.
func NewSP1PlonkVerifier(selector [4]byte, vk plonk.VerifyingKey) *SP1PlonkVerifier {
	return &SP1PlonkVerifier{selector: selector, vk: vk}
}

// Version returns the verifier's compiled-in version string.
func (v *SP1PlonkVerifier) Version() string { return sp1PlonkVersion }

// Selector returns the fixed four-byte verifier selector.
func (v *SP1PlonkVerifier) Selector() [4]byte { return v.selector }

// Name identifies this verifier in a registry.Registry.
func (v *SP1PlonkVerifier) Name() string { return "sp1-plonk" }

// VerifyProof implements §6's verify_proof for the PLONK seal: strip and
// check the selector, decode the 25-field PLONK seal, derive the
// public-signal vector, and run the full PLONK algebraic check.
func (v *SP1PlonkVerifier) VerifyProof(o bn254.EcOracle, programVKey *big.Int, publicValues, sealBytes []byte) (bool, error) {
	ok, err := seal.VerifySP1Plonk(o, sealBytes, v.selector, v.vk, programVKey, publicValues)
	return ok, translateSP1Err(err)
}

// translateSP1Err maps the seal/groth16/plonk packages' local sentinel
// errors onto the §7 taxonomy.
func translateSP1Err(err error) error {
	if err == nil {
		return nil
	}
	if mismatch, ok := err.(*seal.ErrSelectorMismatch); ok {
		return selectorMismatch(mismatch.Received, mismatch.Expected)
	}
	switch err {
	case seal.ErrTooShort, seal.ErrMalformed,
		groth16.ErrPublicInputCount, groth16.ErrOutOfField,
		plonk.ErrShapeMismatch:
		return invalidProofData(err.Error())
	case plonk.ErrZeroDenominator:
		return verificationFailed(err.Error())
	case groth16.ErrVerificationFailed, plonk.ErrVerificationFailed:
		return verificationFailed(err.Error())
	default:
		return verificationFailed(err.Error())
	}
}
