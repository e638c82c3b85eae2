// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package transcript

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// bsb22DST is the domain-separation tag for the BSB22 custom-gate
// hash-to-field contribution (§4.B).
const bsb22DST = "BSB22-Plonk"

// sha256BlockSize and sha256OutputSize are SHA-256's s_in_bytes/b_in_bytes
// per RFC 9380's expand_message_xmd.
const (
	sha256BlockSize  = 64
	sha256OutputSize = 32
)

// ErrExpandTooLong is returned when the requested output would require
// more SHA-256 blocks than expand_message_xmd allows (ell > 255).
var ErrExpandTooLong = errors.New("transcript: expand_message_xmd output too long")

// ExpandMessageXMD implements RFC 9380's expand_message_xmd using SHA-256,
// expanding msg under domain-separation tag dst to outLen pseudorandom
// bytes.
func ExpandMessageXMD(msg []byte, dst string, outLen int) ([]byte, error) {
	ell := (outLen + sha256OutputSize - 1) / sha256OutputSize
	if ell > 255 {
		return nil, ErrExpandTooLong
	}

	dstPrime := append([]byte(dst), byte(len(dst)))

	lenBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(lenBytes, uint16(outLen))

	msgPrime := make([]byte, 0, sha256BlockSize+len(msg)+2+1+len(dstPrime))
	msgPrime = append(msgPrime, make([]byte, sha256BlockSize)...) // Z_pad
	msgPrime = append(msgPrime, msg...)
	msgPrime = append(msgPrime, lenBytes...)
	msgPrime = append(msgPrime, 0)
	msgPrime = append(msgPrime, dstPrime...)

	b0 := sha256.Sum256(msgPrime)

	b1Input := make([]byte, 0, sha256OutputSize+1+len(dstPrime))
	b1Input = append(b1Input, b0[:]...)
	b1Input = append(b1Input, 1)
	b1Input = append(b1Input, dstPrime...)
	prev := sha256.Sum256(b1Input)

	out := make([]byte, 0, ell*sha256OutputSize)
	out = append(out, prev[:]...)

	for i := 2; i <= ell; i++ {
		xored := make([]byte, sha256OutputSize)
		for j := range xored {
			xored[j] = b0[j] ^ prev[j]
		}
		in := make([]byte, 0, sha256OutputSize+1+len(dstPrime))
		in = append(in, xored...)
		in = append(in, byte(i))
		in = append(in, dstPrime...)
		next := sha256.Sum256(in)
		out = append(out, next[:]...)
		prev = next
	}

	return out[:outLen], nil
}

// HashG1ToFr implements the BSB22 hash-to-field of §4.B: serialize the
// marshaled G1 point P (64 bytes, x||y) under "BSB22-Plonk", expand to 48
// bytes, take the leading 32 bytes big-endian, and reduce modulo r.
func HashG1ToFr(marshaledG1 []byte) (fr.Element, error) {
	expanded, err := ExpandMessageXMD(marshaledG1, bsb22DST, 48)
	if err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBytes(expanded[:32])
	return e, nil
}
