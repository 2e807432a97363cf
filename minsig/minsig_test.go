package minsig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/bn254bls/bn254bls"
	"github.com/poupas/bn254bls/registry"
)

func TestSignAndVerify(t *testing.T) {
	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG2(sk)
	require.NoError(t, err)

	message := []byte("hello bn254")
	sig, err := Sign(sk, message)
	require.NoError(t, err)

	require.NoError(t, Verify(pk, message, sig))
}

func TestVerifyFailsOnWrongMessage(t *testing.T) {
	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG2(sk)
	require.NoError(t, err)

	sig, err := Sign(sk, []byte("correct message"))
	require.NoError(t, err)

	err = Verify(pk, []byte("wrong message"), sig)
	require.Error(t, err)
}

func TestVerifyFailsOnWrongKey(t *testing.T) {
	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	otherSk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	otherPK, err := bn254bls.FromPrivKeyG2(otherSk)
	require.NoError(t, err)

	message := []byte("hello bn254")
	sig, err := Sign(sk, message)
	require.NoError(t, err)

	err = Verify(otherPK, message, sig)
	require.Error(t, err)
}

func TestFastAggregateVerify(t *testing.T) {
	message := []byte("committee message")
	const n = 4

	pubkeys := make([]bn254bls.G2Point, n)
	partials := make([]bn254bls.G1Point, n)
	for i := 0; i < n; i++ {
		sk, err := bn254bls.FromRandom()
		require.NoError(t, err)
		pk, err := bn254bls.FromPrivKeyG2(sk)
		require.NoError(t, err)
		sig, err := Sign(sk, message)
		require.NoError(t, err)
		pubkeys[i] = pk
		partials[i] = sig
	}

	sSum, err := bn254bls.AggregateG1(partials)
	require.NoError(t, err)

	require.NoError(t, VerifyFastAggregate(message, pubkeys, sSum))
}

func TestFastAggregateVerifyFailsOnWrongMessage(t *testing.T) {
	message := []byte("committee message")
	const n = 3

	pubkeys := make([]bn254bls.G2Point, n)
	partials := make([]bn254bls.G1Point, n)
	for i := 0; i < n; i++ {
		sk, err := bn254bls.FromRandom()
		require.NoError(t, err)
		pk, err := bn254bls.FromPrivKeyG2(sk)
		require.NoError(t, err)
		sig, err := Sign(sk, message)
		require.NoError(t, err)
		pubkeys[i] = pk
		partials[i] = sig
	}

	sSum, err := bn254bls.AggregateG1(partials)
	require.NoError(t, err)

	err = VerifyFastAggregate([]byte("different message"), pubkeys, sSum)
	require.Error(t, err)
}

func TestFastAggregateVerifyRejectsDuplicatePubkeys(t *testing.T) {
	message := []byte("committee message")

	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG2(sk)
	require.NoError(t, err)
	sig, err := Sign(sk, message)
	require.NoError(t, err)

	sSum, err := bn254bls.AggregateG1([]bn254bls.G1Point{sig, sig})
	require.NoError(t, err)

	err = VerifyFastAggregate(message, []bn254bls.G2Point{pk, pk}, sSum)
	require.Error(t, err)
}

func TestAugmentedAggregateVerify(t *testing.T) {
	message := []byte("augmented committee message")
	const n = 3

	pubkeys := make([]bn254bls.G2Point, n)
	partials := make([]bn254bls.G1Point, n)
	for i := 0; i < n; i++ {
		sk, err := bn254bls.FromRandom()
		require.NoError(t, err)
		pk, err := bn254bls.FromPrivKeyG2(sk)
		require.NoError(t, err)
		sig, err := SignAugmented(sk, message, pk)
		require.NoError(t, err)
		pubkeys[i] = pk
		partials[i] = sig
	}

	sSum, err := bn254bls.AggregateG1(partials)
	require.NoError(t, err)

	require.NoError(t, VerifyAugmented(message, pubkeys, sSum))
}

func TestAugmentedAggregateVerifyFailsOnWrongMessage(t *testing.T) {
	message := []byte("augmented committee message")

	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG2(sk)
	require.NoError(t, err)
	sig, err := SignAugmented(sk, message, pk)
	require.NoError(t, err)

	sSum, err := bn254bls.AggregateG1([]bn254bls.G1Point{sig})
	require.NoError(t, err)

	err = VerifyAugmented([]byte("different message"), []bn254bls.G2Point{pk}, sSum)
	require.Error(t, err)
}

func TestVerifyThresholdByIndices(t *testing.T) {
	message := []byte("threshold message")
	const committeeSize = 5

	allPubkeys := make([]bn254bls.G2Point, committeeSize)
	allSks := make([]bn254bls.PrivKey, committeeSize)
	for i := 0; i < committeeSize; i++ {
		sk, err := bn254bls.FromRandom()
		require.NoError(t, err)
		pk, err := bn254bls.FromPrivKeyG2(sk)
		require.NoError(t, err)
		allSks[i] = sk
		allPubkeys[i] = pk
	}

	reg := registry.NewMemoryG2Registry(allPubkeys)

	signerIndices := []uint16{1, 3, 4}
	partials := make([]bn254bls.G1Point, 0, len(signerIndices))
	for _, idx := range signerIndices {
		sig, err := Sign(allSks[idx], message)
		require.NoError(t, err)
		partials = append(partials, sig)
	}

	sSum, err := bn254bls.AggregateG1(partials)
	require.NoError(t, err)

	require.NoError(t, VerifyThreshold(message, signerIndices, sSum, reg))
}

func TestVerifyThresholdRejectsWrongIndexSet(t *testing.T) {
	message := []byte("threshold message")
	const committeeSize = 4

	allPubkeys := make([]bn254bls.G2Point, committeeSize)
	allSks := make([]bn254bls.PrivKey, committeeSize)
	for i := 0; i < committeeSize; i++ {
		sk, err := bn254bls.FromRandom()
		require.NoError(t, err)
		pk, err := bn254bls.FromPrivKeyG2(sk)
		require.NoError(t, err)
		allSks[i] = sk
		allPubkeys[i] = pk
	}

	reg := registry.NewMemoryG2Registry(allPubkeys)

	signedIndices := []uint16{0, 1}
	partials := make([]bn254bls.G1Point, 0, len(signedIndices))
	for _, idx := range signedIndices {
		sig, err := Sign(allSks[idx], message)
		require.NoError(t, err)
		partials = append(partials, sig)
	}
	sSum, err := bn254bls.AggregateG1(partials)
	require.NoError(t, err)

	err = VerifyThreshold(message, []uint16{0, 2}, sSum, reg)
	require.Error(t, err)
}

func TestHashToCurveIsDeterministic(t *testing.T) {
	message := []byte("deterministic")
	a, err := HashToCurve(message)
	require.NoError(t, err)
	b, err := HashToCurve(message)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
