// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package risc0

import "testing"

func TestReceiptClaimDigestDeterministic(t *testing.T) {
	var imageID, journal [32]byte
	imageID[0] = 0x88
	journal[0] = 0xd1

	a := ReceiptClaimOk(imageID, journal).Digest()
	b := ReceiptClaimOk(imageID, journal).Digest()
	if a != b {
		t.Fatalf("equal inputs produced different claim digests")
	}

	var otherJournal [32]byte
	otherJournal[0] = 0xd2
	c := ReceiptClaimOk(imageID, otherJournal).Digest()
	if a == c {
		t.Fatalf("different journal digests produced the same claim digest")
	}
}

func TestOutputDigestMatchesClaimOutputField(t *testing.T) {
	var journal [32]byte
	journal[5] = 1

	out := Output{JournalDigest: journal}
	claim := ReceiptClaimOk([32]byte{}, journal)
	if claim.Output != out.Digest() {
		t.Fatalf("ReceiptClaimOk did not embed Output.Digest()")
	}
}

func TestSplitDigestMatchesReverseThenSplit(t *testing.T) {
	var d [32]byte
	for i := range d {
		d[i] = byte(i)
	}
	lo, hi := SplitDigest(d)

	rev := reverseByteOrder(d)
	var wantHi, wantLo [16]byte
	copy(wantHi[:], rev[:16])
	copy(wantLo[:], rev[16:])

	if lo != wantLo || hi != wantHi {
		t.Fatalf("SplitDigest halves do not match reverse-then-split by hand")
	}
}

func TestComputeSelectorDeterministic(t *testing.T) {
	var controlRoot, controlID [32]byte
	controlRoot[0] = 0x53
	controlID[0] = 0x04

	a := ComputeSelector(controlRoot, controlID)
	b := ComputeSelector(controlRoot, controlID)
	if a != b {
		t.Fatalf("ComputeSelector not deterministic")
	}

	controlRoot[0] = 0x54
	c := ComputeSelector(controlRoot, controlID)
	if a == c {
		t.Fatalf("different control roots produced the same selector")
	}
}

func TestVerifierKeyDigestStable(t *testing.T) {
	a := VerifierKeyDigest()
	b := VerifierKeyDigest()
	if a != b {
		t.Fatalf("VerifierKeyDigest is not a pure function of the compiled-in VK")
	}
}

func TestPublicSignalsLayout(t *testing.T) {
	var controlRoot, controlID [32]byte
	controlRoot[0] = 1
	controlID[0] = 2
	claim := ReceiptClaimOk([32]byte{3}, [32]byte{4})

	signals := PublicSignals(controlRoot, claim, controlID)
	for i := 0; i < 4; i++ {
		for j := 0; j < 16; j++ {
			if signals[i][j] != 0 {
				t.Fatalf("signal %d: expected top 16 bytes zero, got nonzero at %d", i, j)
			}
		}
	}
	if signals[4] != controlID {
		t.Fatalf("fifth public signal should be bn254_control_id verbatim")
	}
}
