package minpk

import (
	"github.com/poupas/bn254bls/bn254bls"
)

// Sign computes a partial BLS signature S = H(message) * sk as a G2 point.
func Sign(sk bn254bls.PrivKey, message []byte) (bn254bls.G2Point, error) {
	hm, err := HashToCurve(message)
	if err != nil {
		return bn254bls.G2Point{}, err
	}
	sigBytes, err := sk.SignG2([128]byte(hm))
	if err != nil {
		return bn254bls.G2Point{}, err
	}
	return bn254bls.G2Point(sigBytes), nil
}

// SignAugmented computes a partial signature over H(signerPK || message),
// binding the signer's own public key into the hash so rogue-key attacks
// are defeated without a proof of possession.
func SignAugmented(sk bn254bls.PrivKey, message []byte, signerPK bn254bls.G1Point) (bn254bls.G2Point, error) {
	augmented := append(append([]byte{}, signerPK[:]...), message...)
	hm, err := HashToCurve(augmented)
	if err != nil {
		return bn254bls.G2Point{}, err
	}
	sigBytes, err := sk.SignG2([128]byte(hm))
	if err != nil {
		return bn254bls.G2Point{}, err
	}
	return bn254bls.G2Point(sigBytes), nil
}
