package bn254bls

import (
	"crypto/rand"
	"math/big"

	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/internal/oracle"
)

// PrivKey is a 32-byte big-endian scalar. Both schemes share this type; the
// group the scalar multiplies against (G1 or G2) is determined by which
// scheme package derives a public key from it.
type PrivKey [oracle.SizeScalar]byte

// FromRandom draws a PrivKey uniformly at random, rejection-sampling 32
// random bytes against NormalizeModulus so the result is unbiased mod
// Modulus. Note this rejects against the base-field prime, not the scalar
// field order — see SPEC_FULL.md §9 Open Questions for why that's kept.
func FromRandom() (PrivKey, error) {
	var candidate [oracle.SizeScalar]byte
	for {
		if _, err := rand.Read(candidate[:]); err != nil {
			return PrivKey{}, blserrors.Wrap(blserrors.SecretKeyError, err)
		}
		v := new(big.Int).SetBytes(candidate[:])
		if v.Cmp(NormalizeModulus) < 0 {
			var reduced big.Int
			reduced.Mod(v, Modulus)
			var sk PrivKey
			reduced.FillBytes(sk[:])
			return sk, nil
		}
	}
}

// FromBytes constructs a PrivKey directly from a 32-byte big-endian scalar,
// with no range checking. Callers that need a uniformly-distributed key
// should use FromRandom instead.
func FromBytes(b [oracle.SizeScalar]byte) PrivKey {
	return PrivKey(b)
}

// Bytes returns the private key's 32-byte big-endian encoding.
func (k PrivKey) Bytes() [oracle.SizeScalar]byte {
	return [oracle.SizeScalar]byte(k)
}

// PublicG1 derives the G1 public key point sk*G1 (min-pk's public key
// group).
func (k PrivKey) PublicG1() ([oracle.SizeG1Uncompressed]byte, error) {
	out, err := oracle.G1ScalarMul(G1One, k.Bytes())
	if err != nil {
		return [oracle.SizeG1Uncompressed]byte{}, blserrors.Wrap(blserrors.AltBN128MulError, err)
	}
	return out, nil
}

// PublicG2 derives the G2 public key point sk*G2 (min-sig's public key
// group).
func (k PrivKey) PublicG2() ([oracle.SizeG2Uncompressed]byte, error) {
	out, err := oracle.G2ScalarMul(G2One, k.Bytes())
	if err != nil {
		return [oracle.SizeG2Uncompressed]byte{}, blserrors.Wrap(blserrors.AltBN128MulError, err)
	}
	return out, nil
}

// SignG1 multiplies a G1 hash-to-curve point by this private key, producing
// a min-sig signature (signature lives in G1, public key in G2).
func (k PrivKey) SignG1(hashPoint [oracle.SizeG1Uncompressed]byte) ([oracle.SizeG1Uncompressed]byte, error) {
	out, err := oracle.G1ScalarMul(hashPoint, k.Bytes())
	if err != nil {
		return [oracle.SizeG1Uncompressed]byte{}, blserrors.Wrap(blserrors.BLSSigningError, err)
	}
	return out, nil
}

// SignG2 multiplies a G2 hash-to-curve point by this private key, producing
// a min-pk signature (signature lives in G2, public key in G1).
func (k PrivKey) SignG2(hashPoint [oracle.SizeG2Uncompressed]byte) ([oracle.SizeG2Uncompressed]byte, error) {
	out, err := oracle.G2ScalarMul(hashPoint, k.Bytes())
	if err != nil {
		return [oracle.SizeG2Uncompressed]byte{}, blserrors.Wrap(blserrors.BLSSigningError, err)
	}
	return out, nil
}
