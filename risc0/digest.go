// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package risc0 implements the RISC Zero receipt-claim digester of §4.C:
// the tagged-struct SHA-256 digest scheme used to bind an (image ID,
// journal digest) pair to a single 32-byte claim digest, the public-signal
// splitting convention, and the compiled-in verifying key used to derive
// the RISC Zero Groth16 seal selector.
package risc0

import (
	"crypto/sha256"
	"encoding/binary"
)

// Tag strings bind a tagged struct's shape to its digest so that no two
// differently-shaped structures can ever collide on the same input bytes.
const (
	receiptClaimTag = "risc0.ReceiptClaim"
	outputTag       = "risc0.Output"
	vkICTag         = "risc0_groth16.VerifyingKey.IC"
	vkTag           = "risc0_groth16.VerifyingKey"

	// groth16ParamsTag seeds the selector computation; it binds the
	// selector to "this is a RISC Zero Groth16 receipt verifier" rather
	// than to any other receipt kind.
	groth16ParamsTag = "risc0_groth16.ReceiptVerifierParameters"
)

// systemStateZeroDigest is the canonical digest of a "zero" SystemState
// (used by ReceiptClaimOk to represent a halted, unconstrained
// post-state). It is a compiled-in constant, not recomputed at runtime.
var systemStateZeroDigest = [32]byte{
	0xa3, 0xac, 0xc2, 0x71, 0x17, 0x41, 0x89, 0x96, 0x34, 0x0b, 0x84, 0xe5, 0xa9, 0x0f,
	0x3e, 0xf4, 0xc4, 0x9d, 0x22, 0xc7, 0x9e, 0x44, 0xaa, 0xd8, 0x22, 0xec, 0x9c, 0x31,
	0x3e, 0x1e, 0xb8, 0xe2,
}

func tagDigest(tag string) [32]byte {
	return sha256.Sum256([]byte(tag))
}

func sha256Sum(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// taggedStruct computes SHA256(SHA256(tag) || downs[0] || downs[1] || ...
// || be16(len(downs)<<8)). The trailing word is a single u16 equal to the
// down-element count shifted left 8 bits: its low byte is always zero, it
// is not a two-field (down-count, data-count) encoding.
func taggedStruct(tag string, downs ...[32]byte) [32]byte {
	td := tagDigest(tag)
	buf := make([]byte, 0, 32+32*len(downs)+2)
	buf = append(buf, td[:]...)
	for _, d := range downs {
		buf = append(buf, d[:]...)
	}
	var cnt [2]byte
	binary.BigEndian.PutUint16(cnt[:], uint16(len(downs))<<8)
	buf = append(buf, cnt[:]...)
	return sha256.Sum256(buf)
}

// taggedListCons computes one cons cell of a right-associated tagged list:
// taggedStruct(tag, head, tail).
func taggedListCons(tag string, head, tail [32]byte) [32]byte {
	return taggedStruct(tag, head, tail)
}

// taggedList folds list right-to-left into a single digest via repeated
// taggedListCons, starting the accumulator at the zero digest.
func taggedList(tag string, list [][32]byte) [32]byte {
	var curr [32]byte
	for i := len(list) - 1; i >= 0; i-- {
		curr = taggedListCons(tag, list[i], curr)
	}
	return curr
}

// Output is the RISC Zero receipt output: a journal digest plus an
// assumptions digest (empty for a receipt with no conditional assumptions).
type Output struct {
	JournalDigest     [32]byte
	AssumptionsDigest [32]byte
}

// Digest computes the tagged digest of o per §4.C.
func (o Output) Digest() [32]byte {
	return taggedStruct(outputTag, o.JournalDigest, o.AssumptionsDigest)
}

// SystemExitCode mirrors the RISC Zero VM's coarse halt classification.
type SystemExitCode uint8

const (
	SystemExitHalted SystemExitCode = 0
	SystemExitPaused SystemExitCode = 1
	SystemExitSplit  SystemExitCode = 2
)

// ExitCode pairs a system-level exit classification with a user-supplied
// exit code from guest code.
type ExitCode struct {
	System SystemExitCode
	User   uint8
}

// ReceiptClaim is the committed claim of a RISC Zero execution: what image
// ran, on what input, from what pre-state to what post-state, producing
// what output, and how it exited.
type ReceiptClaim struct {
	PreStateDigest  [32]byte
	PostStateDigest [32]byte
	ExitCode        ExitCode
	Input           [32]byte
	Output          [32]byte
}

// ReceiptClaimOk builds the claim of a successful, halted execution of
// imageID over an input that produced journalDigest, with no conditional
// assumptions — the shape every seal verified by
// seal.VerifyRiscZeroGroth16 must match.
func ReceiptClaimOk(imageID, journalDigest [32]byte) ReceiptClaim {
	out := Output{JournalDigest: journalDigest}
	return ReceiptClaim{
		PreStateDigest:  imageID,
		PostStateDigest: systemStateZeroDigest,
		ExitCode:        ExitCode{System: SystemExitHalted, User: 0},
		Output:          out.Digest(),
	}
}

// Digest computes the claim's tagged digest. Unlike Output's digest, this
// is not a plain taggedStruct over 32-byte downs: the exit code contributes
// two raw big-endian uint32 words rather than two more 32-byte digests, so
// the buffer is built explicitly.
func (c ReceiptClaim) Digest() [32]byte {
	td := tagDigest(receiptClaimTag)

	var exitSystem, exitUser [4]byte
	binary.BigEndian.PutUint32(exitSystem[:], uint32(c.ExitCode.System)<<24)
	binary.BigEndian.PutUint32(exitUser[:], uint32(c.ExitCode.User)<<24)

	buf := make([]byte, 0, 32+32*4+4+4+2)
	buf = append(buf, td[:]...)
	buf = append(buf, c.Input[:]...)
	buf = append(buf, c.PreStateDigest[:]...)
	buf = append(buf, c.PostStateDigest[:]...)
	buf = append(buf, c.Output[:]...)
	buf = append(buf, exitSystem[:]...)
	buf = append(buf, exitUser[:]...)

	var cnt [2]byte
	binary.BigEndian.PutUint16(cnt[:], uint16(4)<<8)
	buf = append(buf, cnt[:]...)

	return sha256.Sum256(buf)
}

// reverseByteOrder returns d with its bytes reversed, matching
// alloy's big-endian-B256-as-little-endian-uint256 reinterpretation.
func reverseByteOrder(d [32]byte) [32]byte {
	var out [32]byte
	for i := range d {
		out[i] = d[31-i]
	}
	return out
}

// SplitDigest reverses d's byte order and splits the result into its high
// and low 16-byte halves, the encoding RISC Zero seals use to pack a
// 32-byte digest into two BN254 scalar-field public inputs.
func SplitDigest(d [32]byte) (lo, hi [16]byte) {
	rev := reverseByteOrder(d)
	copy(lo[:], rev[16:])
	copy(hi[:], rev[:16])
	return lo, hi
}
