// Package registry provides indexed public-key lookup for threshold/indexed
// aggregate verification: callers submit a compact signer-index list rather
// than the full public keys, and verification resolves each index against a
// shared committee registry.
package registry

import (
	"github.com/poupas/bn254bls/blserrors"
	"github.com/poupas/bn254bls/bn254bls"
)

// G2PubkeyProvider resolves a committee index to its G2 public key, for
// min-sig's indexed aggregate verify.
type G2PubkeyProvider interface {
	G2ByIndex(idx uint16) (bn254bls.G2Point, error)
}

// G1PubkeyProvider resolves a committee index to its G1 public key, for
// min-pk's indexed aggregate verify.
type G1PubkeyProvider interface {
	G1ByIndex(idx uint16) (bn254bls.G1Point, error)
}

// MemoryG2Registry is a fixed, in-memory committee of G2 public keys indexed
// by position. It's the simplest G2PubkeyProvider: production deployments
// would back this with on-chain account data instead.
type MemoryG2Registry struct {
	keys []bn254bls.G2Point
}

// NewMemoryG2Registry builds a registry over keys, indexed in order.
func NewMemoryG2Registry(keys []bn254bls.G2Point) *MemoryG2Registry {
	return &MemoryG2Registry{keys: keys}
}

// G2ByIndex returns the public key registered at idx.
func (r *MemoryG2Registry) G2ByIndex(idx uint16) (bn254bls.G2Point, error) {
	if int(idx) >= len(r.keys) {
		return bn254bls.G2Point{}, blserrors.New(blserrors.SerializationError)
	}
	return r.keys[idx], nil
}

// Len reports the committee size.
func (r *MemoryG2Registry) Len() int { return len(r.keys) }

// MemoryG1Registry is the G1 analogue of MemoryG2Registry, for min-pk.
type MemoryG1Registry struct {
	keys []bn254bls.G1Point
}

// NewMemoryG1Registry builds a registry over keys, indexed in order.
func NewMemoryG1Registry(keys []bn254bls.G1Point) *MemoryG1Registry {
	return &MemoryG1Registry{keys: keys}
}

// G1ByIndex returns the public key registered at idx.
func (r *MemoryG1Registry) G1ByIndex(idx uint16) (bn254bls.G1Point, error) {
	if int(idx) >= len(r.keys) {
		return bn254bls.G1Point{}, blserrors.New(blserrors.SerializationError)
	}
	return r.keys[idx], nil
}

// Len reports the committee size.
func (r *MemoryG1Registry) Len() int { return len(r.keys) }
