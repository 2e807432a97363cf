// Package minsig implements the min-sig BLS variant over BN254: public keys
// live in G2, signatures live in G1.
package minsig

import (
	"crypto/sha256"
	"math/big"

	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/bn254bls"
	"github.com/poupas/bn254bls/internal/oracle"
)

// maxHashToCurveAttempts bounds the try-and-increment loop. 255 is enough
// that exhausting it indicates a broken hash function rather than bad luck;
// the probability of 255 consecutive rejections is astronomically small.
const maxHashToCurveAttempts = 255

// HashToCurve maps a message to a G1 point by try-and-increment: hash
// message||n for increasing n until the digest, reduced mod the base-field
// prime, decompresses to a valid curve point.
func HashToCurve(message []byte) (bn254bls.G1Point, error) {
	for n := 0; n < maxHashToCurveAttempts; n++ {
		digest := sha256.Sum256(append(append([]byte{}, message...), byte(n)))
		v := new(big.Int).SetBytes(digest[:])
		if v.Cmp(bn254bls.NormalizeModulus) >= 0 {
			continue
		}
		v.Mod(v, bn254bls.Modulus)

		var compressed [oracle.SizeG1Compressed]byte
		v.FillBytes(compressed[:])

		point, err := oracle.G1Decompress(compressed)
		if err != nil {
			continue
		}
		return bn254bls.G1Point(point), nil
	}
	return bn254bls.G1Point{}, blserrors.New(blserrors.HashToCurveError)
}
