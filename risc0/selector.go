// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package risc0

// ComputeSelector derives the compiled-in four-byte verifier selector from
// the control root and bn254 control ID supplied at initialization, bound
// together with the (compiled-in, constant) verifying-key digest. It is a
// pure function of its two arguments: equal inputs always yield the same
// selector.
func ComputeSelector(controlRoot, bn254ControlID [32]byte) [4]byte {
	vkDigest := VerifierKeyDigest()
	reversed := reverseByteOrder(bn254ControlID)

	digest := taggedStruct(groth16ParamsTag, controlRoot, reversed, vkDigest)

	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

// PublicSignals builds the five BN254 scalar-field public-input words a
// RISC Zero Groth16 seal's pairing check runs against: the control root
// and claim digest each split into high/low 128-bit halves, followed by
// the bn254 control ID.
//
// Each returned word is a big-endian 32-byte value with its top 16 bytes
// zero (the split halves are 128 bits wide); bn254ControlID is returned
// verbatim and must already be < r.
func PublicSignals(controlRoot [32]byte, claim ReceiptClaim, bn254ControlID [32]byte) [5][32]byte {
	ctrlLo, ctrlHi := SplitDigest(controlRoot)
	claimDigest := claim.Digest()
	claimLo, claimHi := SplitDigest(claimDigest)

	var out [5][32]byte
	copy(out[0][16:], ctrlLo[:])
	copy(out[1][16:], ctrlHi[:])
	copy(out[2][16:], claimLo[:])
	copy(out[3][16:], claimHi[:])
	out[4] = bn254ControlID
	return out
}
