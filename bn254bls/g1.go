package bn254bls

import (
	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/internal/oracle"
)

// G1Point is an uncompressed 64-byte BN254 G1 point: x || y.
type G1Point [oracle.SizeG1Uncompressed]byte

// G1CompressedPoint is a 32-byte compressed BN254 G1 point.
type G1CompressedPoint [oracle.SizeG1Compressed]byte

// Add returns the sum of two G1 points.
func (p G1Point) Add(q G1Point) (G1Point, error) {
	sum, err := oracle.G1Add([oracle.SizeG1Uncompressed]byte(p), [oracle.SizeG1Uncompressed]byte(q))
	if err != nil {
		return G1Point{}, blserrors.Wrap(blserrors.AltBN128AddError, err)
	}
	return G1Point(sum), nil
}

// ScalarMul returns scalar*p.
func (p G1Point) ScalarMul(scalar [oracle.SizeScalar]byte) (G1Point, error) {
	out, err := oracle.G1ScalarMul([oracle.SizeG1Uncompressed]byte(p), scalar)
	if err != nil {
		return G1Point{}, blserrors.Wrap(blserrors.AltBN128MulError, err)
	}
	return G1Point(out), nil
}

// Negate returns the additive inverse of p.
func (p G1Point) Negate() (G1Point, error) {
	out, err := oracle.NegateG1([oracle.SizeG1Uncompressed]byte(p))
	if err != nil {
		return G1Point{}, blserrors.Wrap(blserrors.AltBN128AddError, err)
	}
	return G1Point(out), nil
}

// Compress returns p's 32-byte compressed encoding.
func (p G1Point) Compress() (G1CompressedPoint, error) {
	c, err := oracle.G1Compress([oracle.SizeG1Uncompressed]byte(p))
	if err != nil {
		return G1CompressedPoint{}, blserrors.Wrap(blserrors.G1PointCompressionError, err)
	}
	return G1CompressedPoint(c), nil
}

// Decompress recovers the uncompressed 64-byte point from its compressed
// form.
func (c G1CompressedPoint) Decompress() (G1Point, error) {
	p, err := oracle.G1Decompress([oracle.SizeG1Compressed]byte(c))
	if err != nil {
		return G1Point{}, blserrors.Wrap(blserrors.G1PointDecompressionError, err)
	}
	return G1Point(p), nil
}

// FromPrivKeyG1 derives the G1 public key sk*G1 for a private key, used by
// min-pk where public keys live in G1.
func FromPrivKeyG1(sk PrivKey) (G1Point, error) {
	pk, err := sk.PublicG1()
	if err != nil {
		return G1Point{}, err
	}
	return G1Point(pk), nil
}
