// Package minpk implements the min-pk BLS variant over BN254: public keys
// live in G1, signatures live in G2.
package minpk

import (
	"crypto/sha256"
	"math/big"

	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/bn254bls"
	"github.com/poupas/bn254bls/internal/oracle"
)

// maxHashToCurveAttempts bounds the try-and-increment loop, matching
// minsig's G1 hash-to-curve bound.
const maxHashToCurveAttempts = 255

// HashToCurve maps a message to a G2 point. Unlike G1 (a single coordinate
// over the base field), a G2 x-coordinate lives in Fp2 and needs two
// independent hashes — one per limb — tagged "c0"/"c1" so they don't
// collide. The candidate point found this way satisfies the curve equation
// but isn't guaranteed to be in the prime-order subgroup, so every
// candidate is cofactor-cleared before being accepted.
func HashToCurve(message []byte) (bn254bls.G2Point, error) {
	for n := 0; n < maxHashToCurveAttempts; n++ {
		x0, ok0 := reducedLimb(message, n, "c0")
		if !ok0 {
			continue
		}
		x1, ok1 := reducedLimb(message, n, "c1")
		if !ok1 {
			continue
		}

		candidate, ok, err := oracle.G2FromXCoordinates(x0, x1)
		if err != nil {
			return bn254bls.G2Point{}, blserrors.Wrap(blserrors.HashToCurveError, err)
		}
		if !ok {
			continue
		}

		cleared, err := oracle.ClearCofactorG2(candidate)
		if err != nil {
			return bn254bls.G2Point{}, blserrors.Wrap(blserrors.HashToCurveError, err)
		}
		return bn254bls.G2Point(cleared), nil
	}
	return bn254bls.G2Point{}, blserrors.New(blserrors.HashToCurveError)
}

func reducedLimb(message []byte, n int, tag string) ([oracle.SizeScalar]byte, bool) {
	h := sha256.New()
	h.Write(message)
	h.Write([]byte{byte(n)})
	h.Write([]byte(tag))
	digest := h.Sum(nil)

	v := new(big.Int).SetBytes(digest)
	if v.Cmp(bn254bls.NormalizeModulus) >= 0 {
		return [oracle.SizeScalar]byte{}, false
	}
	v.Mod(v, bn254bls.Modulus)

	var out [oracle.SizeScalar]byte
	v.FillBytes(out[:])
	return out, true
}
