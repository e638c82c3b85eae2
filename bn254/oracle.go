// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/luxfi/crypto/bn256"
)

// ErrBadPairingInput mirrors the EVM precompile's own rejection of an
// EcPairing input whose length is not a multiple of 192 bytes.
var ErrBadPairingInput = errors.New("bn254: pairing input length must be a multiple of 192")

// trueWord / falseWord are the 32-byte big-endian booleans the EcPairing
// oracle returns, matching the EVM BN254 pairing precompile's encoding.
var (
	trueWord  = append(make([]byte, 31), 1)
	falseWord = make([]byte, 32)
)

// EcOracle is the abstract precompile collaborator of §4.A / §6: four
// synchronous byte-in/byte-out operations. An on-chain implementation
// forwards these calls to the host's EcAdd/EcMul/EcPairing/Sha256
// precompiles; SoftwareOracle below is the pure-software stand-in used for
// off-chain testing and as the reference semantics both sides must agree
// on (§9).
type EcOracle interface {
	// EcAdd takes 128 bytes (x1||y1||x2||y2) and returns 64 bytes (x3||y3).
	EcAdd(input []byte) ([]byte, error)
	// EcMul takes 96 bytes (x||y||s) and returns 64 bytes (x'||y').
	EcMul(input []byte) ([]byte, error)
	// EcPairing takes a multiple of 192 bytes (each 192 =
	// x1||y1||x2_c1||x2_c0||y2_c1||y2_c0) and returns a 32-byte big-endian
	// boolean: the product of pairings equals the target-group identity.
	EcPairing(input []byte) ([]byte, error)
	// Sha256 hashes arbitrary-length input to 32 bytes.
	Sha256(input []byte) ([]byte, error)
}

// SoftwareOracle implements EcOracle in pure Go, grounded on the reference
// EVM BN254 precompile implementation (runBn256Add / runBn256ScalarMul /
// runBn256Pairing in go-ethereum's core/vm/contracts.go): same calldata
// layout, same corner cases (a pairing input whose length isn't a multiple
// of 192 is rejected before any point is parsed), same G1/G2 curve
// arithmetic (github.com/luxfi/crypto/bn256, the fork the teacher already
// depends on).
type SoftwareOracle struct{}

// NewSoftwareOracle returns the pure-software BN254 oracle.
func NewSoftwareOracle() *SoftwareOracle {
	return &SoftwareOracle{}
}

func getData(data []byte, start, size uint64) []byte {
	out := make([]byte, size)
	if start > uint64(len(data)) {
		return out
	}
	end := start + size
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	copy(out, data[start:end])
	return out
}

func newG1(blob []byte) (*bn256.G1, error) {
	p := new(bn256.G1)
	if _, err := p.Unmarshal(blob); err != nil {
		return nil, err
	}
	return p, nil
}

func newG2(blob []byte) (*bn256.G2, error) {
	p := new(bn256.G2)
	if _, err := p.Unmarshal(blob); err != nil {
		return nil, err
	}
	return p, nil
}

// EcAdd implements the BN254 point-addition precompile.
func (o *SoftwareOracle) EcAdd(input []byte) ([]byte, error) {
	x, err := newG1(getData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	y, err := newG1(getData(input, 64, 64))
	if err != nil {
		return nil, err
	}
	res := new(bn256.G1)
	res.Add(x, y)
	return res.Marshal(), nil
}

// EcMul implements the BN254 scalar-multiplication precompile.
func (o *SoftwareOracle) EcMul(input []byte) ([]byte, error) {
	p, err := newG1(getData(input, 0, 64))
	if err != nil {
		return nil, err
	}
	s := new(big.Int).SetBytes(getData(input, 64, 32))
	res := new(bn256.G1)
	res.ScalarMult(p, s)
	return res.Marshal(), nil
}

// EcPairing implements the BN254 pairing-check precompile: the product of
// e(G1_i, G2_i) over all pairs equals the identity in the target group.
func (o *SoftwareOracle) EcPairing(input []byte) ([]byte, error) {
	if len(input)%192 != 0 {
		return nil, ErrBadPairingInput
	}
	var g1s []*bn256.G1
	var g2s []*bn256.G2
	for i := 0; i < len(input); i += 192 {
		g1, err := newG1(input[i : i+64])
		if err != nil {
			return nil, err
		}
		g2, err := newG2(input[i+64 : i+192])
		if err != nil {
			return nil, err
		}
		g1s = append(g1s, g1)
		g2s = append(g2s, g2)
	}
	if bn256.PairingCheck(g1s, g2s) {
		out := make([]byte, 32)
		copy(out, trueWord)
		return out, nil
	}
	out := make([]byte, 32)
	copy(out, falseWord)
	return out, nil
}

// Sha256 implements the SHA-256 precompile.
func (o *SoftwareOracle) Sha256(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// PairingHolds is a convenience wrapper around EcPairing that returns a
// bool instead of the raw 32-byte encoding, and treats any oracle error as
// a failed pairing — "the core never silently succeeds on an oracle
// failure; any precompile error maps to VerificationFailed" (§7).
func PairingHolds(o EcOracle, input []byte) bool {
	out, err := o.EcPairing(input)
	if err != nil {
		return false
	}
	for _, b := range out[:31] {
		if b != 0 {
			return false
		}
	}
	return out[31] == 1
}
