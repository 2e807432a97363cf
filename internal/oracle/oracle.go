// Package oracle is the sole boundary between this module and the BN254
// arithmetic library. Every other package in this module calls through
// here for curve arithmetic (minsig and minpk import gnark-crypto only for
// the point types they pass to PairingCheck); the functions below
// reproduce, byte-for-byte, the trusted oracle contracts that a host
// runtime (e.g. Solana's alt_bn128 syscalls) would otherwise expose as
// native precompiles. See SPEC_FULL.md §9 for why one library can stand
// in for both of the original's collaborators.
package oracle

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

const (
	// SizeG1Uncompressed is the host wire size of an uncompressed G1 point.
	SizeG1Uncompressed = 64
	// SizeG1Compressed is the host wire size of a compressed G1 point.
	SizeG1Compressed = 32
	// SizeG2Uncompressed is the host wire size of an uncompressed G2 point.
	SizeG2Uncompressed = 128
	// SizeG2Compressed is the host wire size of a compressed G2 point.
	SizeG2Compressed = 64
	// SizeScalar is the byte width of a big-endian scalar.
	SizeScalar = 32
	// SizeGT is the byte width of the pairing oracle's success sentinel.
	SizeGT = 32
)

// GTOne is the canonical 32-byte encoding of the GT identity element: the
// pairing oracle returns exactly this value on a successful multi-pairing
// check.
var GTOne = [SizeGT]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
}

// G1Generator returns the uncompressed 64-byte host encoding of the BN254
// G1 generator (1, 2).
func G1Generator() [SizeG1Uncompressed]byte {
	_, _, g1, _ := bn254.Generators()
	return toHostG1(g1)
}

// G2Generator returns the uncompressed 128-byte host encoding of the BN254
// G2 generator.
func G2Generator() [SizeG2Uncompressed]byte {
	_, _, _, g2 := bn254.Generators()
	return toHostG2(g2)
}

// G1Add mirrors the alt_bn128 addition precompile: given two uncompressed
// 64-byte G1 points, it returns their sum, uncompressed.
func G1Add(a, b [SizeG1Uncompressed]byte) ([SizeG1Uncompressed]byte, error) {
	var pa, pb bn254.G1Affine
	if err := fromHostG1(a, &pa); err != nil {
		return [SizeG1Uncompressed]byte{}, fmt.Errorf("g1 add: decode operand a: %w", err)
	}
	if err := fromHostG1(b, &pb); err != nil {
		return [SizeG1Uncompressed]byte{}, fmt.Errorf("g1 add: decode operand b: %w", err)
	}
	var sum bn254.G1Affine
	sum.Add(&pa, &pb)
	return toHostG1(sum), nil
}

// G1ScalarMul mirrors the alt_bn128 scalar-multiplication precompile: given
// an uncompressed 64-byte G1 point and a 32-byte big-endian scalar, it
// returns the product, uncompressed.
func G1ScalarMul(point [SizeG1Uncompressed]byte, scalar [SizeScalar]byte) ([SizeG1Uncompressed]byte, error) {
	var p bn254.G1Affine
	if err := fromHostG1(point, &p); err != nil {
		return [SizeG1Uncompressed]byte{}, fmt.Errorf("g1 mul: decode point: %w", err)
	}
	s := new(big.Int).SetBytes(scalar[:])
	var out bn254.G1Affine
	out.ScalarMultiplication(&p, s)
	return toHostG1(out), nil
}

// NegateG1 returns the additive inverse of an uncompressed 64-byte G1
// point. Used at init to derive G1MinusOne, and by G1Point.Negate — negation does not
// depend on the scalar-field/base-field ambiguity that rejection sampling
// (Open Question 1) does, since it comes from the group law directly
// rather than from scalar multiplication by p-1.
func NegateG1(point [SizeG1Uncompressed]byte) ([SizeG1Uncompressed]byte, error) {
	var p bn254.G1Affine
	if err := fromHostG1(point, &p); err != nil {
		return [SizeG1Uncompressed]byte{}, fmt.Errorf("g1 negate: decode point: %w", err)
	}
	var out bn254.G1Affine
	out.Neg(&p)
	return toHostG1(out), nil
}

// NegateG2 returns the additive inverse of an uncompressed 128-byte G2
// point.
func NegateG2(point [SizeG2Uncompressed]byte) ([SizeG2Uncompressed]byte, error) {
	var p bn254.G2Affine
	if err := fromHostG2(point, &p); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 negate: decode point: %w", err)
	}
	var out bn254.G2Affine
	out.Neg(&p)
	return toHostG2(out), nil
}

// G1Compress converts an uncompressed 64-byte G1 point to its 32-byte
// compressed form.
func G1Compress(point [SizeG1Uncompressed]byte) ([SizeG1Compressed]byte, error) {
	var p bn254.G1Affine
	if err := fromHostG1(point, &p); err != nil {
		return [SizeG1Compressed]byte{}, fmt.Errorf("g1 compress: decode point: %w", err)
	}
	return p.Bytes(), nil
}

// G1Decompress converts a 32-byte compressed G1 point to its 64-byte
// uncompressed form.
func G1Decompress(compressed [SizeG1Compressed]byte) ([SizeG1Uncompressed]byte, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(compressed[:]); err != nil {
		return [SizeG1Uncompressed]byte{}, fmt.Errorf("g1 decompress: %w", err)
	}
	return toHostG1(p), nil
}

// G2Add returns the sum of two uncompressed 128-byte G2 points. Unlike the
// Solana host, gnark-crypto exposes native G2 addition, so this does not
// need to round-trip through compression and a second library; see
// SPEC_FULL.md §4.3/§9.
func G2Add(a, b [SizeG2Uncompressed]byte) ([SizeG2Uncompressed]byte, error) {
	var pa, pb bn254.G2Affine
	if err := fromHostG2(a, &pa); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 add: decode operand a: %w", err)
	}
	if err := fromHostG2(b, &pb); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 add: decode operand b: %w", err)
	}
	var sum bn254.G2Affine
	sum.Add(&pa, &pb)
	return toHostG2(sum), nil
}

// G2ScalarMul returns the product of an uncompressed 128-byte G2 point and
// a 32-byte big-endian scalar.
func G2ScalarMul(point [SizeG2Uncompressed]byte, scalar [SizeScalar]byte) ([SizeG2Uncompressed]byte, error) {
	var p bn254.G2Affine
	if err := fromHostG2(point, &p); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 mul: decode point: %w", err)
	}
	s := new(big.Int).SetBytes(scalar[:])
	var out bn254.G2Affine
	out.ScalarMultiplication(&p, s)
	return toHostG2(out), nil
}

// G2Compress converts an uncompressed 128-byte G2 point to its 64-byte
// compressed form.
func G2Compress(point [SizeG2Uncompressed]byte) ([SizeG2Compressed]byte, error) {
	var p bn254.G2Affine
	if err := fromHostG2(point, &p); err != nil {
		return [SizeG2Compressed]byte{}, fmt.Errorf("g2 compress: decode point: %w", err)
	}
	return p.Bytes(), nil
}

// G2Decompress converts a 64-byte compressed G2 point to its 128-byte
// uncompressed form. It only checks curve membership, not prime-order
// subgroup membership — callers that need subgroup membership (hash-to-curve)
// must clear the cofactor themselves; see ClearCofactorG2.
func G2Decompress(compressed [SizeG2Compressed]byte) ([SizeG2Uncompressed]byte, error) {
	var p bn254.G2Affine
	if _, err := p.SetBytes(compressed[:]); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 decompress: %w", err)
	}
	if !p.IsOnCurve() {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("g2 decompress: point not on curve")
	}
	return toHostG2(p), nil
}

// g2CompressedFlag is gnark-crypto's top-bit mask marking a G2 byte buffer
// as a compressed point encoding (vs. uncompressed); the next bit picks
// which of the two y square roots the decoder should reconstruct. Setting
// only the high bit (as here) selects the "smallest" root deterministically
// — the same convention relied on by cometbft's BN254 signer.
const g2CompressedFlag = 0x80

// G2FromXCoordinates attempts to recover a G2 point from its two x-limbs
// (the Fp2 x-coordinate, c0 and c1) by treating them as a gnark-crypto
// compressed G2 encoding and decompressing: gnark reconstructs y from x by
// solving the curve equation internally, exactly the capability hash-to-curve
// needs. It reports ok=false when x does not correspond to a point on the
// twist (no square root exists) rather than returning an error, since that
// is an expected, frequent outcome of hash-to-curve's rejection sampling.
func G2FromXCoordinates(x0, x1 [SizeScalar]byte) (point [SizeG2Uncompressed]byte, ok bool, err error) {
	var compressed [SizeG2Compressed]byte
	copy(compressed[0:32], x0[:])
	copy(compressed[32:64], x1[:])
	compressed[0] |= g2CompressedFlag

	var p bn254.G2Affine
	if _, err := p.SetBytes(compressed[:]); err != nil {
		return [SizeG2Uncompressed]byte{}, false, nil
	}
	if !p.IsOnCurve() {
		return [SizeG2Uncompressed]byte{}, false, nil
	}
	return toHostG2(p), true, nil
}

// bn254G2Cofactor is the cofactor of the BN254 twisted curve E'(Fp2): the
// order of E'(Fp2) is cofactor * r, where r is the scalar field order.
// Multiplying an arbitrary E'(Fp2) point by this value lands it in the
// prime-order subgroup used for pairings.
var bn254G2Cofactor, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088844257914179612981679871602714643921549", 10,
)

// ClearCofactorG2 multiplies an uncompressed 128-byte G2 point — known only
// to satisfy the curve equation, not necessarily to lie in the prime-order
// subgroup — by the BN254 G2 cofactor, returning a point that does.
func ClearCofactorG2(point [SizeG2Uncompressed]byte) ([SizeG2Uncompressed]byte, error) {
	var p bn254.G2Affine
	if err := fromHostG2(point, &p); err != nil {
		return [SizeG2Uncompressed]byte{}, fmt.Errorf("clear cofactor: decode point: %w", err)
	}
	var cleared bn254.G2Affine
	cleared.ScalarMultiplication(&p, bn254G2Cofactor)
	return toHostG2(cleared), nil
}

// PairingCheck mirrors the alt_bn128 pairing precompile: given parallel
// slices of G1 and G2 points, it returns true iff the product of their
// pairings is the GT identity.
func PairingCheck(g1s []bn254.G1Affine, g2s []bn254.G2Affine) (bool, error) {
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return false, fmt.Errorf("pairing: %w", err)
	}
	return ok, nil
}

// DecodeG1 parses a host-layout uncompressed G1 point into the underlying
// curve library's representation, for assembling PairingCheck inputs.
func DecodeG1(point [SizeG1Uncompressed]byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if err := fromHostG1(point, &p); err != nil {
		return bn254.G1Affine{}, err
	}
	return p, nil
}

// DecodeG2 parses a host-layout uncompressed G2 point into the underlying
// curve library's representation, for assembling PairingCheck inputs.
func DecodeG2(point [SizeG2Uncompressed]byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if err := fromHostG2(point, &p); err != nil {
		return bn254.G2Affine{}, err
	}
	return p, nil
}

func toHostG1(p bn254.G1Affine) [SizeG1Uncompressed]byte {
	var out [SizeG1Uncompressed]byte
	copy(out[:], p.Marshal())
	return out
}

func fromHostG1(buf [SizeG1Uncompressed]byte, p *bn254.G1Affine) error {
	return p.Unmarshal(buf[:])
}

// toHostG2 re-packs gnark-crypto's native (c0, c1) field-element ordering
// into the host's big-endian, c1-first quad-limb layout: x.c1 || x.c0 ||
// y.c1 || y.c0. This is the one real endian/ordering transform this port
// still needs, since it is part of the host's wire format rather than an
// artifact of crossing between two different curve libraries.
func toHostG2(p bn254.G2Affine) [SizeG2Uncompressed]byte {
	native := p.Marshal() // x.A0 || x.A1 || y.A0 || y.A1, 32B limbs
	var out [SizeG2Uncompressed]byte
	copy(out[0:32], native[32:64])   // x.c1
	copy(out[32:64], native[0:32])   // x.c0
	copy(out[64:96], native[96:128]) // y.c1
	copy(out[96:128], native[64:96]) // y.c0
	return out
}

func fromHostG2(buf [SizeG2Uncompressed]byte, p *bn254.G2Affine) error {
	var native [SizeG2Uncompressed]byte
	copy(native[32:64], buf[0:32])   // x.c1 -> A1
	copy(native[0:32], buf[32:64])   // x.c0 -> A0
	copy(native[96:128], buf[64:96]) // y.c1 -> A1
	copy(native[64:96], buf[96:128]) // y.c0 -> A0
	return p.Unmarshal(native[:])
}
