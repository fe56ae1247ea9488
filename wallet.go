package arcula

import (
	"errors"

	"github.com/aldur/arcula/crypto"
	"github.com/aldur/arcula/crypto/sign"
)

// WalletSeedSize is the size in bytes of a wallet seed: the first
// half seeds the key assignment scheme, the second half the
// cold-storage key pair.
const WalletSeedSize = 64

var (
	// ErrWalletSeedSize indicates a wallet seed of the wrong length.
	ErrWalletSeedSize = errors.New("[arcula] Wallet seed must be 64 bytes")
	// ErrDuplicateSibling indicates two children of the same node
	// sharing an identifier, which would make their certificate
	// messages ambiguous.
	ErrDuplicateSibling = errors.New("[arcula] Sibling identifiers must be pairwise distinct")
)

// A Wallet is a hierarchical deterministic wallet: a key assignment
// scheme whose nodes additionally receive a deterministic signing key
// pair and a certificate, issued by a cold-storage authority, binding
// that key to the node's identifier.
type Wallet struct {
	*DHKA
	coldStoragePublicKey *sign.PublicKey
}

// NewWallet creates a wallet over the hierarchy rooted at root,
// parameterized by the primitive suite.
func NewWallet(root *Node, suite crypto.Suite) (*Wallet, error) {
	dhka, err := NewDHKA(root, suite)
	if err != nil {
		return nil, err
	}
	return &Wallet{DHKA: dhka}, nil
}

// ColdStoragePublicKey returns the verification key of the
// cold-storage authority, or nil before key generation.
func (w *Wallet) ColdStoragePublicKey() *sign.PublicKey {
	return w.coldStoragePublicKey
}

// KeyGen runs the key assignment scheme with the first half of the
// seed, derives the cold-storage key pair from the second half, and
// issues one certificate per node during a second breadth-first pass.
//
// Sibling identifiers must be pairwise distinct; a duplicate is
// detected before any certificate for the affected node's children is
// issued. The cold-storage private key never outlives this call.
func (w *Wallet) KeyGen(seed []byte) error {
	if len(seed) != WalletSeedSize {
		return ErrWalletSeedSize
	}

	if err := w.DHKA.KeyGen(seed[:DHKASeedSize]); err != nil {
		return err
	}
	if err := w.checkSiblingUniqueness(); err != nil {
		return err
	}

	coldStorageKey, err := sign.GenerateKeyFromSeed(seed[DHKASeedSize:])
	if err != nil {
		return err
	}
	defer coldStorageKey.Zero() // best effort, see package docs
	w.coldStoragePublicKey = coldStorageKey.Public()

	queue := []*Node{w.Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		queue = append(queue, u.Edges...)

		u.signingKey, err = sign.GenerateKeyFromSeed(u.privateKey)
		if err != nil {
			return err
		}
		u.certificate = newCertificate(coldStorageKey, u.signingKey.Public(), u.ID)
	}

	return nil
}

// checkSiblingUniqueness verifies that, under every node, the
// children's identifiers are pairwise distinct. It runs to completion
// before any certificate is issued.
func (w *Wallet) checkSiblingUniqueness() error {
	queue := []*Node{w.Root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		siblings := make(map[uint64]bool, len(u.Edges))
		for _, v := range u.Edges {
			if siblings[v.ID] {
				return ErrDuplicateSibling
			}
			siblings[v.ID] = true
			queue = append(queue, v)
		}
	}
	return nil
}
