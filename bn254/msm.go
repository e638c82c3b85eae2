// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bn254

import (
	"errors"
	"math/big"
)

// ErrMSMLengthMismatch is returned by MSM when points and scalars disagree
// in length.
var ErrMSMLengthMismatch = errors.New("bn254: msm points/scalars length mismatch")

// InfinityG1 is the 64-byte marshaled encoding of the G1 point at infinity.
func InfinityG1() []byte {
	return make([]byte, 64)
}

// EcAddPoints adds two marshaled G1 points through the oracle.
func EcAddPoints(o EcOracle, a, b []byte) ([]byte, error) {
	buf := make([]byte, 0, 128)
	buf = append(buf, a...)
	buf = append(buf, b...)
	return o.EcAdd(buf)
}

// EcMulPoint scales a marshaled G1 point by s through the oracle.
func EcMulPoint(o EcOracle, p []byte, s *big.Int) ([]byte, error) {
	buf := make([]byte, 0, 96)
	buf = append(buf, p...)
	sBytes := make([]byte, 32)
	s.FillBytes(sBytes)
	buf = append(buf, sBytes...)
	return o.EcMul(buf)
}

// MSM computes the multi-scalar multiplication sum(scalars[i] * points[i])
// via the oracle's EcAdd/EcMul, using the fixed accumulator algorithm of
// §4.A: start at infinity, and for each index in ascending order compute
// t = EcMul(points[i], scalars[i]) then acc = EcAdd(acc, t). Zero scalars
// are skipped (their contribution to the sum is always infinity, and
// skipping them saves an oracle round-trip).
//
// points and scalars must have equal length.
func MSM(o EcOracle, points [][]byte, scalars []*big.Int) ([]byte, error) {
	if len(points) != len(scalars) {
		return nil, ErrMSMLengthMismatch
	}
	acc := InfinityG1()
	for i := range points {
		if scalars[i].Sign() == 0 {
			continue
		}
		term, err := EcMulPoint(o, points[i], scalars[i])
		if err != nil {
			return nil, err
		}
		acc, err = EcAddPoints(o, acc, term)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
