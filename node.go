package arcula

import (
	"fmt"

	"github.com/aldur/arcula/crypto/sign"
)

// A Node is an addressable position in the access hierarchy. It is
// identified by a numeric ID, unique among its siblings, and an
// optional Tag holding additional info. Edges is the ordered list of
// children the node owns.
//
// Nodes are created bare; the key assignment scheme populates the
// cryptographic fields in place during its traversal. Once populated,
// those fields are treated as immutable.
type Node struct {
	ID    uint64
	Tag   string
	Edges []*Node

	// EncryptedEdges pairs index-wise with Edges after key
	// generation: entry i is the authenticated encryption of
	// Edges[i]'s encryption and private keys.
	EncryptedEdges []EdgeCipher

	label         []byte
	secret        []byte
	encryptionKey []byte
	privateKey    []byte

	signingKey  *sign.PrivateKey
	certificate *Certificate
}

// An EdgeCipher is the public routing payload attached to an edge:
// the authenticated encryption, under the edge key, of the child's
// encryption key followed by its private key.
type EdgeCipher struct {
	Nonce      []byte
	Ciphertext []byte
}

// NewNode returns a bare node with the given identifier and tag.
func NewNode(id uint64, tag string) *Node {
	return &Node{ID: id, Tag: tag}
}

// AddEdge appends children to the node's ordered edge list.
func (n *Node) AddEdge(children ...*Node) {
	n.Edges = append(n.Edges, children...)
}

// Label returns the node's 8-byte big-endian label, or nil before
// key generation.
func (n *Node) Label() []byte {
	return n.label
}

// SigningKey returns the node's derived signing key, or nil before
// wallet key generation. It belongs to the hierarchy owner; handing
// it out delegates spending for this single node.
func (n *Node) SigningKey() *sign.PrivateKey {
	return n.signingKey
}

// SigningPublicKey returns the verification key matching the node's
// signing key, or nil before wallet key generation.
func (n *Node) SigningPublicKey() *sign.PublicKey {
	if n.signingKey == nil {
		return nil
	}
	return n.signingKey.Public()
}

// Certificate returns the cold-storage certificate bound to the
// node, or nil before wallet key generation.
func (n *Node) Certificate() *Certificate {
	return n.certificate
}

func (n *Node) String() string {
	if n.Tag == "" {
		return fmt.Sprintf("%d", n.ID)
	}
	return n.Tag
}

// A Hierarchy is the access structure of a key assignment scheme:
// a rooted structure whose reachable part must form a tree. Tree-ness
// is not checked at construction time; key generation verifies it
// during its traversal.
type Hierarchy struct {
	Root *Node
}

// setDerivation installs a node's derived tuple. Called exactly once
// per node per key generation.
func (n *Node) setDerivation(label, secret, encryptionKey, privateKey []byte) {
	n.label = label
	n.secret = secret
	n.encryptionKey = encryptionKey
	n.privateKey = privateKey
	n.EncryptedEdges = n.EncryptedEdges[:0]
}
