package bn254bls

import (
	"github.com/poupas/bn254bls/blserrors"
)

// AggregateG1 sums a list of G1 points (signatures, in min-sig; public keys,
// in min-pk). It rejects an empty list rather than silently returning the
// identity, since an aggregate of zero signers is never a meaningful input
// to a verification.
func AggregateG1(points []G1Point) (G1Point, error) {
	if len(points) == 0 {
		return G1Point{}, blserrors.New(blserrors.SerializationError)
	}
	acc := points[0]
	var err error
	for _, p := range points[1:] {
		acc, err = acc.Add(p)
		if err != nil {
			return G1Point{}, err
		}
	}
	return acc, nil
}

// AggregateG2 sums a list of G2 points (signatures, in min-pk; public keys,
// in min-sig).
func AggregateG2(points []G2Point) (G2Point, error) {
	if len(points) == 0 {
		return G2Point{}, blserrors.New(blserrors.SerializationError)
	}
	acc := points[0]
	var err error
	for _, p := range points[1:] {
		acc, err = acc.Add(p)
		if err != nil {
			return G2Point{}, err
		}
	}
	return acc, nil
}

// NoDuplicateG1 reports whether every point in pubkeys is distinct by its
// uncompressed encoding. Aggregate verification rejects duplicate signers
// so that no key is counted twice; this does not by itself defend against
// rogue-key attacks, which needs proof of possession or augmentation.
func NoDuplicateG1(pubkeys []G1Point) bool {
	seen := make(map[G1Point]struct{}, len(pubkeys))
	for _, pk := range pubkeys {
		if _, ok := seen[pk]; ok {
			return false
		}
		seen[pk] = struct{}{}
	}
	return true
}

// NoDuplicateG2 reports whether every point in pubkeys is distinct by its
// uncompressed encoding.
func NoDuplicateG2(pubkeys []G2Point) bool {
	seen := make(map[G2Point]struct{}, len(pubkeys))
	for _, pk := range pubkeys {
		if _, ok := seen[pk]; ok {
			return false
		}
		seen[pk] = struct{}{}
	}
	return true
}
