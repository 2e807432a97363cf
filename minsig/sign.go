package minsig

import (
	"github.com/poupas/bn254bls/bn254bls"
)

// Sign computes a partial BLS signature S = H(message) * sk as a G1 point.
// It is the cheap path used by fast aggregate verify, which assumes every
// signer's public key is registered with a proof of possession.
func Sign(sk bn254bls.PrivKey, message []byte) (bn254bls.G1Point, error) {
	hm, err := HashToCurve(message)
	if err != nil {
		return bn254bls.G1Point{}, err
	}
	sigBytes, err := sk.SignG1([64]byte(hm))
	if err != nil {
		return bn254bls.G1Point{}, err
	}
	return bn254bls.G1Point(sigBytes), nil
}

// SignAugmented computes a partial signature over H(signerPK || message),
// binding the signer's own public key into the hash. This defeats
// rogue-key attacks without requiring a proof of possession, at the cost of
// one hash-to-curve per signer at verify time instead of one total.
func SignAugmented(sk bn254bls.PrivKey, message []byte, signerPK bn254bls.G2Point) (bn254bls.G1Point, error) {
	augmented := append(append([]byte{}, signerPK[:]...), message...)
	hm, err := HashToCurve(augmented)
	if err != nil {
		return bn254bls.G1Point{}, err
	}
	sigBytes, err := sk.SignG1([64]byte(hm))
	if err != nil {
		return bn254bls.G1Point{}, err
	}
	return bn254bls.G1Point(sigBytes), nil
}
