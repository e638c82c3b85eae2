// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"sync"

	"github.com/luxfi/zkverify/bn254"
	"github.com/luxfi/zkverify/groth16"
	"github.com/luxfi/zkverify/risc0"
	"github.com/luxfi/zkverify/seal"
)

// riscZeroVersion identifies this verifier's algebraic core, independent
// of any host-contract versioning scheme (out of scope per §1).
const riscZeroVersion = "risc0-groth16-v1"

// RiscZeroVerifier is the §6 stateful RISC Zero verifier instance: it
// persists (control_root, bn254_control_id, selector, initialized_flag)
// across calls. The control root is stored as one 32-byte value; its
// lo/hi halves are derived from it on each verification.
// Initialize is idempotent-checked rather than idempotent: a second call
// fails with AlreadyInitialized. The mutex follows the teacher's
// plain-struct-with-mutex pattern for stateful precompiles (see
// quantum/verifier.go's QuantumVerifier); it protects the
// initialize-once transition, not any per-verification scratch state,
// since §5 already guarantees no mutable state is retained across a
// single verify_proof call.
type RiscZeroVerifier struct {
	mu sync.RWMutex

	controlRoot    [32]byte
	bn254ControlID [32]byte
	selector       [4]byte
	initialized    bool
}

// NewRiscZeroVerifier returns an uninitialized RISC Zero verifier. Verify
// and VerifyIntegrity both fail with InvalidInitialization until
// Initialize has succeeded.
func NewRiscZeroVerifier() *RiscZeroVerifier {
	return &RiscZeroVerifier{}
}

// Initialize sets the control root and BN254 control ID and derives the
// compiled-in selector from them (risc0.ComputeSelector). It fails with
// AlreadyInitialized on a second call, matching §6/§7: "initialize ...
// idempotent — second call fails".
func (v *RiscZeroVerifier) Initialize(controlRoot, bn254ControlID [32]byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initialized {
		return &Error{Kind: AlreadyInitialized, Msg: "risc zero verifier already initialized"}
	}
	v.controlRoot = controlRoot
	v.bn254ControlID = bn254ControlID
	v.selector = risc0.ComputeSelector(controlRoot, bn254ControlID)
	v.initialized = true
	return nil
}

// Version returns the verifier's compiled-in version string.
func (v *RiscZeroVerifier) Version() string { return riscZeroVersion }

// Selector returns the four-byte verifier selector, or
// InvalidInitialization if Initialize has not yet succeeded.
func (v *RiscZeroVerifier) Selector() ([4]byte, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.initialized {
		return [4]byte{}, &Error{Kind: InvalidInitialization, Msg: "risc zero verifier not initialized"}
	}
	return v.selector, nil
}

// Name identifies this verifier in a registry.Registry.
func (v *RiscZeroVerifier) Name() string { return "risc0-groth16" }

// Verify implements the RISC Zero dispatcher of §4.F / §6's
// verify(seal, image_id, journal_digest): strip and check the selector,
// decode the Groth16 proof, build the five-element public-signal vector
// from the receipt claim digest, and run the Groth16 engine with A
// negated.
func (v *RiscZeroVerifier) Verify(o bn254.EcOracle, sealBytes []byte, imageID, journalDigest [32]byte) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.initialized {
		return false, &Error{Kind: InvalidInitialization, Msg: "risc zero verifier not initialized"}
	}

	ok, err := seal.VerifyRiscZeroGroth16(o, sealBytes, v.selector, v.controlRoot, v.bn254ControlID, imageID, journalDigest)
	return ok, translateRiscZeroErr(err)
}

// VerifyIntegrity implements §6's verify_integrity variant: the caller
// supplies the receipt claim digest directly instead of (image_id,
// journal_digest).
func (v *RiscZeroVerifier) VerifyIntegrity(o bn254.EcOracle, sealBytes []byte, claimDigest [32]byte) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if !v.initialized {
		return false, &Error{Kind: InvalidInitialization, Msg: "risc zero verifier not initialized"}
	}

	ok, err := seal.VerifyRiscZeroIntegrity(o, sealBytes, v.selector, v.controlRoot, v.bn254ControlID, claimDigest)
	return ok, translateRiscZeroErr(err)
}

// translateRiscZeroErr maps the seal/groth16 packages' local sentinel
// errors onto the §7 taxonomy's closed enumeration.
func translateRiscZeroErr(err error) error {
	if err == nil {
		return nil
	}
	if mismatch, ok := err.(*seal.ErrSelectorMismatch); ok {
		return selectorMismatch(mismatch.Received, mismatch.Expected)
	}
	switch err {
	case seal.ErrTooShort, seal.ErrMalformed, groth16.ErrPublicInputCount, groth16.ErrOutOfField:
		return invalidProofData(err.Error())
	case groth16.ErrVerificationFailed:
		return verificationFailed(err.Error())
	default:
		return verificationFailed(err.Error())
	}
}
