package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poupas/bn254bls/bn254bls"
)

func TestMemoryG2RegistryByIndex(t *testing.T) {
	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG2(sk)
	require.NoError(t, err)

	reg := NewMemoryG2Registry([]bn254bls.G2Point{pk})
	require.Equal(t, 1, reg.Len())

	got, err := reg.G2ByIndex(0)
	require.NoError(t, err)
	require.Equal(t, pk, got)

	_, err = reg.G2ByIndex(1)
	require.Error(t, err)
}

func TestMemoryG1RegistryByIndex(t *testing.T) {
	sk, err := bn254bls.FromRandom()
	require.NoError(t, err)
	pk, err := bn254bls.FromPrivKeyG1(sk)
	require.NoError(t, err)

	reg := NewMemoryG1Registry([]bn254bls.G1Point{pk})
	require.Equal(t, 1, reg.Len())

	got, err := reg.G1ByIndex(0)
	require.NoError(t, err)
	require.Equal(t, pk, got)

	_, err = reg.G1ByIndex(1)
	require.Error(t, err)
}
