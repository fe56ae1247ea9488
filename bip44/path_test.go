package bip44

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aldur/arcula"
)

func pathTestTree(t *testing.T) *arcula.Node {
	t.Helper()
	master, err := NewTree(Config{
		"BTC": {
			{PrivateAddresses: 1, PublicAddresses: 2},
			{PrivateAddresses: 5, PublicAddresses: 4},
			{PrivateAddresses: 0, PublicAddresses: 1},
		},
		"LTC": {
			{PrivateAddresses: 5, PublicAddresses: 5},
		},
	})
	require.NoError(t, err)
	return master
}

func TestResolveIntermediateLevels(t *testing.T) {
	master := pathTestTree(t)

	coinNode, err := Resolve(master, "m/44'/BTC")
	require.NoError(t, err)
	require.Equal(t, "BTC", coinNode.Tag)
	require.Len(t, coinNode.Edges, 3)

	accountNode, err := Resolve(master, "m/44'/BTC/1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), accountNode.ID)
	require.Len(t, accountNode.Edges, 2)

	branchNode, err := Resolve(master, "m/44'/BTC/1/xpub")
	require.NoError(t, err)
	require.Equal(t, uint64(0), branchNode.ID)
	require.Equal(t, "XPUB", branchNode.Tag)

	branchNode, err = Resolve(master, "m/44'/BTC/1/xprv")
	require.NoError(t, err)
	require.Equal(t, "XPRV", branchNode.Tag)
}

func TestResolveAddresses(t *testing.T) {
	master := pathTestTree(t)

	addressNode, err := Resolve(master, "m/44'/BTC/1/xpub/3")
	require.NoError(t, err)
	require.Equal(t, uint64(3), addressNode.ID)
	require.Empty(t, addressNode.Edges)

	addressNode, err = Resolve(master, "m/44'/ltc/0/xprv/0")
	require.NoError(t, err)
	require.Equal(t, uint64(0), addressNode.ID)
}

func TestResolveRejections(t *testing.T) {
	master := pathTestTree(t)

	for _, tc := range []struct {
		path string
		err  error
	}{
		{"", ErrPathPrefix},
		{"44'/BTC", ErrPathPrefix},
		{"m/49'/BTC", ErrPathPrefix},
		{"m/44'", ErrPathEmpty},
		{"m/44'/", ErrPathEmpty},
		{"m/44'/DOGE", ErrUnknownCoin},
		{"m/44'/BTC/9", ErrPathRange},
		{"m/44'/BTC/one", ErrPathMalformed},
		{"m/44'/BTC/1/2", ErrPathRange},
		{"m/44'/BTC/1/xpub/4", ErrPathRange},
		{"m/44'/BTC/1/xpub/-1", ErrPathMalformed},
		{"m/44'/BTC/1/xpub/3/0", ErrPathTooLong},
	} {
		_, err := Resolve(master, tc.path)
		require.ErrorIs(t, err, tc.err, "path %q", tc.path)
	}
}

func TestResolveRejectsForeignHierarchies(t *testing.T) {
	master := pathTestTree(t)

	_, err := Resolve(master.Edges[0], "m/44'/BTC")
	require.ErrorIs(t, err, ErrMalformedHierarchy)

	_, err = Resolve(nil, "m/44'/BTC")
	require.ErrorIs(t, err, ErrMalformedHierarchy)
}
