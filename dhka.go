package arcula

import (
	"errors"
	"fmt"

	"github.com/aldur/arcula/crypto"
	"github.com/aldur/arcula/encoding"
)

// Domain separation prefixes for the PRF derivations.
const (
	// PrefixEncryption derives a node's encryption key from its secret.
	PrefixEncryption = 0x00
	// PrefixPrivateKey derives a node's private key from its secret.
	PrefixPrivateKey = 0x01
	// PrefixEdge derives an edge key from the parent's encryption key.
	PrefixEdge = 0x02
	// PrefixSecret derives a node's secret from its parent's secret.
	PrefixSecret = 0x03
)

// DHKASeedSize is the size in bytes of the key assignment seed.
const DHKASeedSize = 32

var (
	// ErrDHKASeedSize indicates a key assignment seed of the
	// wrong length.
	ErrDHKASeedSize = errors.New("[arcula] Key assignment seed must be 32 bytes")
	// ErrNotATree indicates that the reachable hierarchy is not a
	// tree: some node can be reached through more than one path.
	ErrNotATree = errors.New("[arcula] The hierarchy is not a tree")
	// ErrEdgeMismatch indicates a violated internal invariant: a
	// node's encrypted edge list diverged from its edge list.
	ErrEdgeMismatch = errors.New("[arcula] Encrypted edges do not match edges")
	// ErrEdgePayload indicates a decrypted edge payload that does
	// not hold exactly an encryption key and a private key.
	ErrEdgePayload = errors.New("[arcula] Malformed edge payload")
)

// DHKA is a deterministic hierarchical key assignment scheme. From a
// single 256-bit seed it assigns every node of the hierarchy a tuple
// (label, secret, encryption key, private key) and attaches to every
// edge an authenticated ciphertext that lets a holder of the parent's
// encryption key recover the child's encryption and private keys.
//
// Holding a node's secret allows re-deriving the full material of its
// whole subtree; holding only its encryption key still allows
// decrypting every descendant edge, and therefore delegates the
// subtree's key material without exposing the node's own secret.
// Neither grants anything about ancestors or unrelated siblings.
type DHKA struct {
	Hierarchy
	suite crypto.Suite
}

// NewDHKA creates a key assignment scheme over the hierarchy rooted
// at root, parameterized by the primitive suite.
func NewDHKA(root *Node, suite crypto.Suite) (*DHKA, error) {
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return &DHKA{Hierarchy: Hierarchy{Root: root}, suite: suite}, nil
}

// deriveNode computes a node's tuple from its parent's secret (or, for
// the root, from the seed) and its identifier.
func (d *DHKA) deriveNode(parentSecret []byte, id uint64) (label, secret, encryptionKey, privateKey []byte) {
	label = encoding.IDToBytes(id)
	secret = d.suite.PRF(parentSecret, append([]byte{PrefixSecret}, label...))
	encryptionKey = d.suite.PRF(secret, append([]byte{PrefixEncryption}, label...))
	privateKey = d.suite.PRF(secret, append([]byte{PrefixPrivateKey}, label...))
	return
}

// edgeKey computes the key protecting the edge towards the child with
// the given label.
func (d *DHKA) edgeKey(parentEncryptionKey, childLabel []byte) []byte {
	return d.suite.PRF(parentEncryptionKey, append([]byte{PrefixEdge}, childLabel...))
}

// KeyGen assigns key material to every node of the hierarchy,
// breadth-first from the root. It fails with ErrNotATree if a node is
// reachable through more than one path; in that case the hierarchy
// must not be considered populated.
//
// KeyGen writes the hierarchy in place: it must not run concurrently
// with itself or with readers. Once it returns the populated fields
// are immutable, so no locking is needed afterwards.
func (d *DHKA) KeyGen(seed []byte) error {
	if len(seed) != DHKASeedSize {
		return ErrDHKASeedSize
	}

	root := d.Root
	root.setDerivation(d.deriveNode(seed, root.ID))

	queue := []*Node{root}
	visited := map[*Node]bool{root: true}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range u.Edges {
			if visited[v] {
				return ErrNotATree
			}
			visited[v] = true

			v.setDerivation(d.deriveNode(u.secret, v.ID))

			nonce, ciphertext, err := d.suite.Encrypt(
				d.edgeKey(u.encryptionKey, v.label),
				append(append([]byte{}, v.encryptionKey...), v.privateKey...),
			)
			if err != nil {
				return fmt.Errorf("[arcula] Encrypting edge %v->%v: %v", u, v, err)
			}
			u.EncryptedEdges = append(u.EncryptedEdges, EdgeCipher{Nonce: nonce, Ciphertext: ciphertext})

			queue = append(queue, v)
		}

		if len(u.EncryptedEdges) != len(u.Edges) {
			return ErrEdgeMismatch
		}
	}

	return nil
}

// DecryptEdge recovers a child's encryption and private keys from an
// edge ciphertext, given the issuing node's encryption key and the
// child's identifier. This is the selective disclosure mechanism:
// whoever holds a node's encryption key can walk its whole subtree.
// An authentication failure signals wrong key material or tampering
// and never yields a plaintext.
func (d *DHKA) DecryptEdge(parentEncryptionKey []byte, childID uint64, edge EdgeCipher) (encryptionKey, privateKey []byte, err error) {
	plaintext, err := d.suite.Decrypt(
		d.edgeKey(parentEncryptionKey, encoding.IDToBytes(childID)),
		edge.Nonce, edge.Ciphertext,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("[arcula] Decrypting edge to %d: %v", childID, err)
	}
	if len(plaintext) != 2*crypto.KeySizeByte {
		return nil, nil, ErrEdgePayload
	}
	return plaintext[:crypto.KeySizeByte], plaintext[crypto.KeySizeByte:], nil
}
