package bip44

import (
	"github.com/aldur/arcula"
	"github.com/aldur/arcula/crypto"
	"github.com/aldur/arcula/crypto/sign"
)

// A Wallet is a hierarchical deterministic wallet laid out as a BIP44
// hierarchy, with its nodes addressable by derivation path.
type Wallet struct {
	wallet *arcula.Wallet
}

// NewWallet builds the BIP44 hierarchy described by the
// configuration and runs wallet key generation over it with the
// given 64-byte seed.
func NewWallet(seed []byte, config Config, suite crypto.Suite) (*Wallet, error) {
	master, err := NewTree(config)
	if err != nil {
		return nil, err
	}
	wallet, err := arcula.NewWallet(master, suite)
	if err != nil {
		return nil, err
	}
	if err := wallet.KeyGen(seed); err != nil {
		return nil, err
	}
	return &Wallet{wallet: wallet}, nil
}

// ColdStoragePublicKey returns the verification key of the wallet's
// cold-storage authority.
func (w *Wallet) ColdStoragePublicKey() *sign.PublicKey {
	return w.wallet.ColdStoragePublicKey()
}

// Node resolves a derivation path to its node.
func (w *Wallet) Node(path string) (*arcula.Node, error) {
	return Resolve(w.wallet.Root, path)
}

// SigningKeyCertificate returns the signing key of the node at the
// given derivation path together with its authorization certificate.
func (w *Wallet) SigningKeyCertificate(path string) (*sign.PrivateKey, *arcula.Certificate, error) {
	node, err := w.Node(path)
	if err != nil {
		return nil, nil, err
	}
	return node.SigningKey(), node.Certificate(), nil
}
