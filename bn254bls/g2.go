package bn254bls

import (
	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/internal/oracle"
)

// G2Point is an uncompressed 128-byte BN254 G2 point, host layout x.c1 ||
// x.c0 || y.c1 || y.c0.
type G2Point [oracle.SizeG2Uncompressed]byte

// G2CompressedPoint is a 64-byte compressed BN254 G2 point.
type G2CompressedPoint [oracle.SizeG2Compressed]byte

// Add returns the sum of two G2 points.
func (p G2Point) Add(q G2Point) (G2Point, error) {
	sum, err := oracle.G2Add([oracle.SizeG2Uncompressed]byte(p), [oracle.SizeG2Uncompressed]byte(q))
	if err != nil {
		return G2Point{}, blserrors.Wrap(blserrors.AltBN128AddError, err)
	}
	return G2Point(sum), nil
}

// ScalarMul returns scalar*p.
func (p G2Point) ScalarMul(scalar [oracle.SizeScalar]byte) (G2Point, error) {
	out, err := oracle.G2ScalarMul([oracle.SizeG2Uncompressed]byte(p), scalar)
	if err != nil {
		return G2Point{}, blserrors.Wrap(blserrors.AltBN128MulError, err)
	}
	return G2Point(out), nil
}

// Negate returns the additive inverse of p.
func (p G2Point) Negate() (G2Point, error) {
	out, err := oracle.NegateG2([oracle.SizeG2Uncompressed]byte(p))
	if err != nil {
		return G2Point{}, blserrors.Wrap(blserrors.AltBN128AddError, err)
	}
	return G2Point(out), nil
}

// Compress returns p's 64-byte compressed encoding.
func (p G2Point) Compress() (G2CompressedPoint, error) {
	c, err := oracle.G2Compress([oracle.SizeG2Uncompressed]byte(p))
	if err != nil {
		return G2CompressedPoint{}, blserrors.Wrap(blserrors.G2PointCompressionError, err)
	}
	return G2CompressedPoint(c), nil
}

// Decompress recovers the uncompressed 128-byte point from its compressed
// form. It only checks curve membership; see oracle.G2Decompress.
func (c G2CompressedPoint) Decompress() (G2Point, error) {
	p, err := oracle.G2Decompress([oracle.SizeG2Compressed]byte(c))
	if err != nil {
		return G2Point{}, blserrors.Wrap(blserrors.G2PointDecompressionError, err)
	}
	return G2Point(p), nil
}

// FromPrivKeyG2 derives the G2 public key sk*G2 for a private key, used by
// min-sig where public keys live in G2.
func FromPrivKeyG2(sk PrivKey) (G2Point, error) {
	pk, err := sk.PublicG2()
	if err != nil {
		return G2Point{}, err
	}
	return G2Point(pk), nil
}
