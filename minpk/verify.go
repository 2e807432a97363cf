package minpk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/bn254bls"
	"github.com/poupas/bn254bls/internal/oracle"
	"github.com/poupas/bn254bls/registry"
)

// Verify checks a single min-pk signature: e(pk, H(m)) == e(G1, sig),
// equivalently e(pk, H(m)) * e(-G1, sig) == 1.
func Verify(pk bn254bls.G1Point, message []byte, sig bn254bls.G2Point) error {
	hm, err := HashToCurve(message)
	if err != nil {
		return err
	}
	return pairingCheck(
		[]bn254bls.G1Point{pk, bn254bls.G1Point(bn254bls.G1MinusOne)},
		[]bn254bls.G2Point{hm, sig},
	)
}

// VerifyFastAggregate checks an aggregated signature against the exact set
// of signer public keys, hashing the message once. Only sound against
// rogue-key attacks when every signerPubkeys entry carries an out-of-band
// proof of possession; otherwise use VerifyAugmented.
func VerifyFastAggregate(message []byte, signerPubkeys []bn254bls.G1Point, sSum bn254bls.G2Point) error {
	if len(signerPubkeys) == 0 {
		return blserrors.New(blserrors.SerializationError)
	}
	if !bn254bls.NoDuplicateG1(signerPubkeys) {
		return blserrors.New(blserrors.SerializationError)
	}

	hm, err := HashToCurve(message)
	if err != nil {
		return err
	}

	g1s := make([]bn254bls.G1Point, 0, len(signerPubkeys)+1)
	g2s := make([]bn254bls.G2Point, 0, len(signerPubkeys)+1)
	for _, pk := range signerPubkeys {
		g1s = append(g1s, pk)
		g2s = append(g2s, hm)
	}
	g1s = append(g1s, bn254bls.G1Point(bn254bls.G1MinusOne))
	g2s = append(g2s, sSum)

	return pairingCheck(g1s, g2s)
}

// VerifyAugmented checks an aggregated signature where every partial was
// produced by SignAugmented.
func VerifyAugmented(message []byte, signerPubkeys []bn254bls.G1Point, sSum bn254bls.G2Point) error {
	if len(signerPubkeys) == 0 {
		return blserrors.New(blserrors.SerializationError)
	}
	if !bn254bls.NoDuplicateG1(signerPubkeys) {
		return blserrors.New(blserrors.SerializationError)
	}

	g1s := make([]bn254bls.G1Point, 0, len(signerPubkeys)+1)
	g2s := make([]bn254bls.G2Point, 0, len(signerPubkeys)+1)
	for _, pk := range signerPubkeys {
		augmented := append(append([]byte{}, pk[:]...), message...)
		hm, err := HashToCurve(augmented)
		if err != nil {
			return err
		}
		g1s = append(g1s, pk)
		g2s = append(g2s, hm)
	}
	g1s = append(g1s, bn254bls.G1Point(bn254bls.G1MinusOne))
	g2s = append(g2s, sSum)

	return pairingCheck(g1s, g2s)
}

// VerifyThreshold checks an aggregated signature against a compact list of
// committee indices, resolving each index's G1 public key through provider.
func VerifyThreshold(message []byte, signerIndices []uint16, sSum bn254bls.G2Point, provider registry.G1PubkeyProvider) error {
	if len(signerIndices) == 0 {
		return blserrors.New(blserrors.SerializationError)
	}

	hm, err := HashToCurve(message)
	if err != nil {
		return err
	}

	g1s := make([]bn254bls.G1Point, 0, len(signerIndices)+1)
	g2s := make([]bn254bls.G2Point, 0, len(signerIndices)+1)
	for _, idx := range signerIndices {
		pk, err := provider.G1ByIndex(idx)
		if err != nil {
			return err
		}
		g1s = append(g1s, pk)
		g2s = append(g2s, hm)
	}
	if !bn254bls.NoDuplicateG1(g1s) {
		return blserrors.New(blserrors.SerializationError)
	}
	g1s = append(g1s, bn254bls.G1Point(bn254bls.G1MinusOne))
	g2s = append(g2s, sSum)

	return pairingCheck(g1s, g2s)
}

func pairingCheck(g1s []bn254bls.G1Point, g2s []bn254bls.G2Point) error {
	decodedG1 := make([]bn254.G1Affine, len(g1s))
	for i, p := range g1s {
		dp, err := oracle.DecodeG1([oracle.SizeG1Uncompressed]byte(p))
		if err != nil {
			return blserrors.Wrap(blserrors.AltBN128PairingError, err)
		}
		decodedG1[i] = dp
	}
	decodedG2 := make([]bn254.G2Affine, len(g2s))
	for i, p := range g2s {
		dp, err := oracle.DecodeG2([oracle.SizeG2Uncompressed]byte(p))
		if err != nil {
			return blserrors.Wrap(blserrors.AltBN128PairingError, err)
		}
		decodedG2[i] = dp
	}

	ok, err := oracle.PairingCheck(decodedG1, decodedG2)
	if err != nil {
		return blserrors.Wrap(blserrors.AltBN128PairingError, err)
	}
	if !ok {
		return blserrors.New(blserrors.BLSVerificationError)
	}
	return nil
}
