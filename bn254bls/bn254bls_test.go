package bn254bls

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRandomProducesDistinctKeys(t *testing.T) {
	sk1, err := FromRandom()
	require.NoError(t, err)
	sk2, err := FromRandom()
	require.NoError(t, err)
	require.NotEqual(t, sk1, sk2)
}

func TestFromRandomIsBelowModulus(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	skBytes := sk.Bytes()
	v := new(big.Int).SetBytes(skBytes[:])
	require.Equal(t, -1, v.Cmp(Modulus))
}

func TestPublicKeyDerivationIsDeterministic(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)

	pk1, err := sk.PublicG1()
	require.NoError(t, err)
	pk2, err := sk.PublicG1()
	require.NoError(t, err)
	require.Equal(t, pk1, pk2)

	qk1, err := sk.PublicG2()
	require.NoError(t, err)
	qk2, err := sk.PublicG2()
	require.NoError(t, err)
	require.Equal(t, qk1, qk2)
}

func TestG1CompressDecompressRoundTrip(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG1()
	require.NoError(t, err)
	pk := G1Point(pkBytes)

	compressed, err := pk.Compress()
	require.NoError(t, err)
	decompressed, err := compressed.Decompress()
	require.NoError(t, err)
	require.Equal(t, pk, decompressed)
}

func TestG1RecompressionIsStable(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG1()
	require.NoError(t, err)
	pk := G1Point(pkBytes)

	c1, err := pk.Compress()
	require.NoError(t, err)
	d1, err := c1.Decompress()
	require.NoError(t, err)
	c2, err := d1.Compress()
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestG2CompressDecompressRoundTrip(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG2()
	require.NoError(t, err)
	pk := G2Point(pkBytes)

	compressed, err := pk.Compress()
	require.NoError(t, err)
	decompressed, err := compressed.Decompress()
	require.NoError(t, err)
	require.Equal(t, pk, decompressed)
}

func TestG1AddIsCommutative(t *testing.T) {
	sk1, err := FromRandom()
	require.NoError(t, err)
	sk2, err := FromRandom()
	require.NoError(t, err)
	a, err := sk1.PublicG1()
	require.NoError(t, err)
	b, err := sk2.PublicG1()
	require.NoError(t, err)

	ab, err := G1Point(a).Add(G1Point(b))
	require.NoError(t, err)
	ba, err := G1Point(b).Add(G1Point(a))
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestG1AddIsAssociative(t *testing.T) {
	ska, _ := FromRandom()
	skb, _ := FromRandom()
	skc, _ := FromRandom()
	a, _ := ska.PublicG1()
	b, _ := skb.PublicG1()
	c, _ := skc.PublicG1()

	abThenC, err := mustAddG1(t, G1Point(a), G1Point(b)).Add(G1Point(c))
	require.NoError(t, err)
	aThenBC, err := G1Point(a).Add(mustAddG1(t, G1Point(b), G1Point(c)))
	require.NoError(t, err)
	require.Equal(t, abThenC, aThenBC)
}

func mustAddG1(t *testing.T, a, b G1Point) G1Point {
	t.Helper()
	sum, err := a.Add(b)
	require.NoError(t, err)
	return sum
}

func TestNegateG1IsAdditiveInverse(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG1()
	require.NoError(t, err)
	pk := G1Point(pkBytes)

	neg, err := pk.Negate()
	require.NoError(t, err)

	// Adding a point and its negation acts as the group identity: summing
	// it into an unrelated point must leave that point unchanged.
	other, err := FromRandom()
	require.NoError(t, err)
	otherPK, err := other.PublicG1()
	require.NoError(t, err)

	sum, err := G1Point(otherPK).Add(pk)
	require.NoError(t, err)
	sum, err = sum.Add(neg)
	require.NoError(t, err)

	require.Equal(t, G1Point(otherPK), sum)
}

func TestG1MinusOneIsNegationOfGenerator(t *testing.T) {
	neg, err := G1Point(G1One).Negate()
	require.NoError(t, err)
	require.Equal(t, G1MinusOne, [64]byte(neg))
}

func TestG2MinusOneIsNegationOfGenerator(t *testing.T) {
	neg, err := G2Point(G2One).Negate()
	require.NoError(t, err)
	require.Equal(t, G2MinusOne, [128]byte(neg))
}

func TestAggregateG1RejectsEmptyList(t *testing.T) {
	_, err := AggregateG1(nil)
	require.Error(t, err)
}

func TestAggregateG2RejectsEmptyList(t *testing.T) {
	_, err := AggregateG2(nil)
	require.Error(t, err)
}

func TestNoDuplicateG1DetectsRepeats(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG1()
	require.NoError(t, err)
	pk := G1Point(pkBytes)

	require.True(t, NoDuplicateG1([]G1Point{pk}))
	require.False(t, NoDuplicateG1([]G1Point{pk, pk}))
}

func TestNoDuplicateG2DetectsRepeats(t *testing.T) {
	sk, err := FromRandom()
	require.NoError(t, err)
	pkBytes, err := sk.PublicG2()
	require.NoError(t, err)
	pk := G2Point(pkBytes)

	require.True(t, NoDuplicateG2([]G2Point{pk}))
	require.False(t, NoDuplicateG2([]G2Point{pk, pk}))
}
