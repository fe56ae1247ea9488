package arcula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aldur/arcula/crypto"
)

// testTree builds the three-level hierarchy used across the tests:
// a root with two children and one grandchild under the second child.
func testTree() *Node {
	root := NewNode(0, "root")
	childZero := NewNode(0, "child_zero")
	childOne := NewNode(1, "child_one")
	root.AddEdge(childZero, childOne)
	grandsonZero := NewNode(0, "grandson_zero")
	childOne.AddEdge(grandsonZero)
	return root
}

// nodes collects the tree breadth-first.
func nodes(root *Node) []*Node {
	collected := []*Node{}
	queue := []*Node{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		collected = append(collected, u)
		queue = append(queue, u.Edges...)
	}
	return collected
}

func testSeed(label string) []byte {
	return crypto.SHA3512([]byte(label))
}

func TestKeyGenSingleRoot(t *testing.T) {
	root := NewNode(0, "tag")
	dhka, err := NewDHKA(root, crypto.DefaultSuite())
	require.NoError(t, err)

	seed := testSeed("secret_seed")
	require.NoError(t, dhka.KeyGen(seed[:DHKASeedSize]))

	require.Len(t, root.secret, crypto.KeySizeByte)
	require.Len(t, root.encryptionKey, crypto.KeySizeByte)
	require.Len(t, root.privateKey, crypto.KeySizeByte)
	require.Equal(t, make([]byte, 8), root.label, "root label encodes id 0")
	require.Empty(t, root.EncryptedEdges, "no children, no edges")
}

func TestKeyGenSeedSize(t *testing.T) {
	dhka, err := NewDHKA(NewNode(0, ""), crypto.DefaultSuite())
	require.NoError(t, err)
	require.ErrorIs(t, dhka.KeyGen([]byte("too short")), ErrDHKASeedSize)
}

func TestNewDHKAIncompleteSuite(t *testing.T) {
	suite := crypto.DefaultSuite()
	suite.Decrypt = nil
	_, err := NewDHKA(NewNode(0, ""), suite)
	require.ErrorIs(t, err, crypto.ErrSuiteIncomplete)
}

func TestKeyGenIsDeterministic(t *testing.T) {
	seed := testSeed("secret_seed_")[:DHKASeedSize]

	first, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, first.KeyGen(seed))

	second, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, second.KeyGen(seed))

	firstNodes, secondNodes := nodes(first.Root), nodes(second.Root)
	require.Equal(t, len(firstNodes), len(secondNodes))
	for i, u := range firstNodes {
		v := secondNodes[i]
		require.Equal(t, u.label, v.label)
		require.Equal(t, u.secret, v.secret)
		require.Equal(t, u.encryptionKey, v.encryptionKey)
		require.Equal(t, u.privateKey, v.privateKey)
	}

	// A different seed must yield different material.
	third, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, third.KeyGen(testSeed("_secret_seed")[:DHKASeedSize]))
	require.NotEqual(t, first.Root.secret, third.Root.secret)
}

func TestEdgeRoundTrip(t *testing.T) {
	dhka, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, dhka.KeyGen(testSeed("secret_seed")[:DHKASeedSize]))

	for _, u := range nodes(dhka.Root) {
		require.Len(t, u.EncryptedEdges, len(u.Edges))
		for i, v := range u.Edges {
			encryptionKey, privateKey, err := dhka.DecryptEdge(u.encryptionKey, v.ID, u.EncryptedEdges[i])
			require.NoError(t, err)
			require.Equal(t, v.encryptionKey, encryptionKey)
			require.Equal(t, v.privateKey, privateKey)
		}
	}
}

func TestEdgeTamperDetection(t *testing.T) {
	dhka, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, dhka.KeyGen(testSeed("secret_seed")[:DHKASeedSize]))

	root := dhka.Root
	child := root.Edges[0]
	edge := root.EncryptedEdges[0]

	for i := range edge.Ciphertext {
		for bit := 0; bit < 8; bit++ {
			edge.Ciphertext[i] ^= 1 << uint(bit)
			_, _, err := dhka.DecryptEdge(root.encryptionKey, child.ID, edge)
			require.Error(t, err, "tampered ciphertext must not decrypt")
			edge.Ciphertext[i] ^= 1 << uint(bit)
		}
	}
	for i := range edge.Nonce {
		edge.Nonce[i] ^= 1
		_, _, err := dhka.DecryptEdge(root.encryptionKey, child.ID, edge)
		require.Error(t, err, "tampered nonce must not decrypt")
		edge.Nonce[i] ^= 1
	}

	// Wrong child identifier selects a different edge key.
	_, _, err = dhka.DecryptEdge(root.encryptionKey, child.ID+7, edge)
	require.Error(t, err)
}

func TestSubtreeDelegation(t *testing.T) {
	dhka, err := NewDHKA(testTree(), crypto.DefaultSuite())
	require.NoError(t, err)
	require.NoError(t, dhka.KeyGen(testSeed("secret_seed")[:DHKASeedSize]))

	// Holding only a node's encryption key walks its whole subtree.
	childOne := dhka.Root.Edges[1]
	encryptionKey, _, err := dhka.DecryptEdge(dhka.Root.encryptionKey, childOne.ID, dhka.Root.EncryptedEdges[1])
	require.NoError(t, err)

	grandson := childOne.Edges[0]
	grandsonEncryptionKey, grandsonPrivateKey, err := dhka.DecryptEdge(encryptionKey, grandson.ID, childOne.EncryptedEdges[0])
	require.NoError(t, err)
	require.Equal(t, grandson.encryptionKey, grandsonEncryptionKey)
	require.Equal(t, grandson.privateKey, grandsonPrivateKey)
}

func TestKeyGenRejectsNonTree(t *testing.T) {
	root := NewNode(0, "root")
	childZero := NewNode(0, "child_zero")
	childOne := NewNode(1, "child_one")
	root.AddEdge(childZero, childOne)
	shared := NewNode(2, "shared")
	childZero.AddEdge(shared)
	childOne.AddEdge(shared) // reachable through two paths

	dhka, err := NewDHKA(root, crypto.DefaultSuite())
	require.NoError(t, err)
	require.ErrorIs(t, dhka.KeyGen(testSeed("secret_seed")[:DHKASeedSize]), ErrNotATree)
}

func TestKeyGenRejectsSelfLoop(t *testing.T) {
	root := NewNode(0, "root")
	root.AddEdge(root)

	dhka, err := NewDHKA(root, crypto.DefaultSuite())
	require.NoError(t, err)
	require.ErrorIs(t, dhka.KeyGen(testSeed("secret_seed")[:DHKASeedSize]), ErrNotATree)
}
