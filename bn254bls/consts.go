// Package bn254bls holds the BN254 scalar and point types shared by the
// minsig and minpk schemes: PrivKey, G1Point/G1CompressedPoint,
// G2Point/G2CompressedPoint, and the field constants they're built from.
// Keeping these in one parameterized package (rather than duplicating them
// per scheme, as the original source does) is the refactor the original's
// own design notes call for — see SPEC_FULL.md §9.
package bn254bls

import (
	"math/big"

	"github.com/poupas/bn254bls/internal/oracle"
)

// Modulus is the BN254 base-field prime p.
var Modulus, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088696311157297823662689037894645226208583", 10,
)

// NormalizeModulus is the largest multiple of Modulus that is <= 2^256.
// A 256-bit big-endian integer is reducible mod Modulus without bias iff
// it is strictly less than NormalizeModulus.
var NormalizeModulus = func() *big.Int {
	twoTo256 := new(big.Int).Lsh(big.NewInt(1), 256)
	quotient := new(big.Int).Div(twoTo256, Modulus)
	return new(big.Int).Mul(quotient, Modulus)
}()

// G1One is the uncompressed 64-byte encoding of the BN254 G1 generator.
var G1One = oracle.G1Generator()

// G2One is the uncompressed 128-byte encoding of the BN254 G2 generator.
var G2One = oracle.G2Generator()

// G1MinusOne is the uncompressed 64-byte encoding of the negated G1
// generator, used as the fixed second pairing term when signatures live in
// G2 (min-pk's single, fast/augmented/threshold aggregate verify).
var G1MinusOne = func() [oracle.SizeG1Uncompressed]byte {
	neg, err := oracle.NegateG1(G1One)
	if err != nil {
		panic("bn254bls: failed to compute G1MinusOne: " + err.Error())
	}
	return neg
}()

// G2MinusOne is the uncompressed 128-byte encoding of the negated G2
// generator, used as the fixed second pairing term when signatures live in
// G1 (min-sig's single and aggregate verify).
var G2MinusOne = func() [oracle.SizeG2Uncompressed]byte {
	neg, err := oracle.NegateG2(G2One)
	if err != nil {
		panic("bn254bls: failed to compute G2MinusOne: " + err.Error())
	}
	return neg
}()
