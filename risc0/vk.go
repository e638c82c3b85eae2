// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package risc0

import (
	"math/big"

	"github.com/luxfi/zkverify/groth16"
)

func bi(hex string) *big.Int {
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("risc0: malformed verifying-key constant " + hex)
	}
	return v
}

// VerifyingKey is the compiled-in Groth16 verifying key for RISC Zero's
// BN254 Groth16 receipt seals: five public signals (control_root split
// into two 128-bit halves, the claim digest split likewise, and the
// bn254_control_id), hence a six-element IC list.
var VerifyingKey = groth16.VerifyingKey{
	Alpha: groth16.G1Affine{
		X: bi("2D4D9AA7E302D9DF41749D5507949D05DBEA33FBB16C643B22F599A2BE6DF2E2"),
		Y: bi("14BEDD503C37CEB061D8EC60209FE345CE89830A19230301F076CAFF004D1926"),
	},
	Beta: groth16.G2Affine{
		X0: bi("967032FCBF776D1AFC985F88877F182D38480A653F2DECAA9794CBC3BF3060C"),
		X1: bi("E187847AD4C798374D0D6732BF501847DD68BC0E071241E0213BC7FC13DB7AB"),
		Y0: bi("304CFBD1E08A704A99F5E847D93F8C3CAAFDDEC46B7A0D379DA69A4D112346A7"),
		Y1: bi("1739C1B1A457A8C7313123D24D2F9192F896B7C63EEA05A9D57F06547AD0CEC8"),
	},
	Gamma: groth16.G2Affine{
		X0: bi("198E9393920D483A7260BFB731FB5D25F1AA493335A9E71297E485B7AEF312C2"),
		X1: bi("1800DEEF121F1E76426A00665E5C4479674322D4F75EDADD46DEBD5CD992F6ED"),
		Y0: bi("90689D0585FF075EC9E99AD690C3395BC4B313370B38EF355ACDADCD122975B"),
		Y1: bi("12C85EA5DB8C6DEB4AAB71808DCB408FE3D1E7690C43D37B4CE6CC0166FA7DAA"),
	},
	Delta: groth16.G2Affine{
		X0: bi("3B03CD5EFFA95AC9BEE94F1F5EF907157BDA4812CCF0B4C91F42BB629F83A1C"),
		X1: bi("1AA085FF28179A12D922DBA0547057CCAAE94B9D69CFAA4E60401FEA7F3E0333"),
		Y0: bi("110C10134F200B19F6490846D518C9AEA868366EFB7228CA5C91D2940D030762"),
		Y1: bi("1E60F31FCBF757E837E867178318832D0B2D74D59E2FEA1C7142DF187D3FC6D3"),
	},
	IC: []groth16.G1Affine{
		{X: bi("12AC9A25DCD5E1A832A9061A082C15DD1D61AA9C4D553505739D0F5D65DC3BE4"), Y: bi("25AA744581EBE7AD91731911C898569106FF5A2D30F3EEE2B23C60EE980ACD4")},
		{X: bi("707B920BC978C02F292FAE2036E057BE54294114CCC3C8769D883F688A1423F"), Y: bi("2E32A094B7589554F7BC357BF63481ACD2D55555C203383782A4650787FF6642")},
		{X: bi("BCA36E2CBE6394B3E249751853F961511011C7148E336F4FD974644850FC347"), Y: bi("2EDE7C9ACF48CF3A3729FA3D68714E2A8435D4FA6DB8F7F409C153B1FCDF9B8B")},
		{X: bi("1B8AF999DBFBB3927C091CC2AAF201E488CBACC3E2C6B6FB5A25F9112E04F2A7"), Y: bi("2B91A26AA92E1B6F5722949F192A81C850D586D81A60157F3E9CF04F679CCCD6")},
		{X: bi("2B5F494ED674235B8AC1750BDFD5A7615F002D4A1DCEFEDDD06EDA5A076CCD0D"), Y: bi("2FE520AD2020AAB9CBBA817FCBB9A863B8A76FF88F14F912C5E71665B2AD5E82")},
		{X: bi("F1C3C0D5D9DA0FA03666843CDE4E82E869BA5252FCE3C25D5940320B1C4D493"), Y: bi("214BFCFF74F425F6FE8C0D07B307482D8BC8BB2F3608F68287AA01BD0B69E809")},
	},
}

// abiPackU256 encodes x as a 32-byte big-endian word, the packed encoding
// a Solidity uint256 uses inside abi.encodePacked.
func abiPackU256(x *big.Int) [32]byte {
	var out [32]byte
	x.FillBytes(out[:])
	return out
}

func digestU256(x *big.Int) [32]byte {
	w := abiPackU256(x)
	return sha256Sum(w[:])
}

func digestU256Pair(a, b *big.Int) [32]byte {
	wa, wb := abiPackU256(a), abiPackU256(b)
	buf := make([]byte, 0, 64)
	buf = append(buf, wa[:]...)
	buf = append(buf, wb[:]...)
	return sha256Sum(buf)
}

func digestU256Quad(a, b, c, d *big.Int) [32]byte {
	wa, wb, wc, wd := abiPackU256(a), abiPackU256(b), abiPackU256(c), abiPackU256(d)
	buf := make([]byte, 0, 128)
	buf = append(buf, wa[:]...)
	buf = append(buf, wb[:]...)
	buf = append(buf, wc[:]...)
	buf = append(buf, wd[:]...)
	return sha256Sum(buf)
}

// VerifierKeyDigest computes the canonical digest of VerifyingKey: each
// curve element's ABI-packed coordinates are hashed individually, the IC
// list is folded via the tagged-list construction, and everything is
// combined in one final tagged struct.
func VerifierKeyDigest() [32]byte {
	icDigests := make([][32]byte, len(VerifyingKey.IC))
	for i, pt := range VerifyingKey.IC {
		icDigests[i] = digestU256Pair(pt.X, pt.Y)
	}

	alphaDigest := digestU256Pair(VerifyingKey.Alpha.X, VerifyingKey.Alpha.Y)
	betaDigest := digestU256Quad(VerifyingKey.Beta.X0, VerifyingKey.Beta.X1, VerifyingKey.Beta.Y0, VerifyingKey.Beta.Y1)
	gammaDigest := digestU256Quad(VerifyingKey.Gamma.X0, VerifyingKey.Gamma.X1, VerifyingKey.Gamma.Y0, VerifyingKey.Gamma.Y1)
	deltaDigest := digestU256Quad(VerifyingKey.Delta.X0, VerifyingKey.Delta.X1, VerifyingKey.Delta.Y0, VerifyingKey.Delta.Y1)

	icListDigest := taggedList(vkICTag, icDigests)

	return taggedStruct(vkTag, alphaDigest, betaDigest, gammaDigest, deltaDigest, icListDigest)
}
