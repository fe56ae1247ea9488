// Package sign implements deterministic ECDSA signing over the
// secp256k1 curve. Key pairs are derived from 256-bit seeds through a
// fixed rejection-sampling procedure, so the same seed always yields
// the same key pair. Signatures use a SHA-256 digest and are encoded
// in the strict canonical DER form.
package sign

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	// SeedSize is the size in bytes of a key generation seed.
	SeedSize = 32
	// PrivateKeySize is the size in bytes of a serialized private key.
	PrivateKeySize = 32
	// PublicKeySize is the size in bytes of a compressed public key:
	// one parity byte followed by the 32-byte big-endian x-coordinate.
	PublicKeySize = 33
)

var (
	// ErrSeedSize indicates that a key generation seed has the
	// wrong length.
	ErrSeedSize = errors.New("[sign] Key generation seed must be 32 bytes")
	// ErrPublicKeySize indicates a malformed compressed public key.
	ErrPublicKeySize = errors.New("[sign] Compressed public-key must be 33 bytes")
)

// PrivateKey is a secp256k1 signing key.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PublicKey is a secp256k1 verification key.
type PublicKey struct {
	key *btcec.PublicKey
}

// GenerateKeyFromSeed deterministically derives a signing key from a
// 256-bit seed. Scalar candidates are drawn from a SHA-256 stream over
// seed ∥ be64(counter) and the first candidate in [1, N) is accepted,
// N being the curve order. secp256k1's order is close enough to 2^256
// that the first candidate is accepted with overwhelming probability.
func GenerateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, ErrSeedSize
	}

	order := btcec.S256().N
	buf := make([]byte, 0, SeedSize+8)
	buf = append(buf, seed...)
	for counter := uint64(0); ; counter++ {
		buf = binary.BigEndian.AppendUint64(buf[:SeedSize], counter)
		digest := sha256.Sum256(buf)
		candidate := new(big.Int).SetBytes(digest[:])
		if candidate.Sign() > 0 && candidate.Cmp(order) < 0 {
			var scalar [PrivateKeySize]byte
			candidate.FillBytes(scalar[:])
			key, _ := btcec.PrivKeyFromBytes(scalar[:])
			return &PrivateKey{key: key}, nil
		}
	}
}

// Public returns the verification key corresponding to the signing key.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{key: sk.key.PubKey()}
}

// Sign signs the SHA-256 digest of the message and returns the
// signature in its strict canonical (low-S) DER encoding.
func (sk *PrivateKey) Sign(message []byte) []byte {
	digest := sha256.Sum256(message)
	return ecdsa.Sign(sk.key, digest[:]).Serialize()
}

// Zero overwrites the private scalar. It is best effort: the runtime
// may have copied the key material elsewhere.
func (sk *PrivateKey) Zero() {
	sk.key.Zero()
}

// Verify reports whether the DER signature is valid for the SHA-256
// digest of the message under the verification key.
func (pk *PublicKey) Verify(message, signature []byte) bool {
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	digest := sha256.Sum256(message)
	return sig.Verify(digest[:], pk.key)
}

// Compress serializes the verification key to its 33-byte
// compressed form.
func (pk *PublicKey) Compress() []byte {
	return pk.key.SerializeCompressed()
}

// ParseCompressed deserializes a verification key from its 33-byte
// compressed form.
func ParseCompressed(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeySize {
		return nil, ErrPublicKeySize
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// Equal reports whether both verification keys represent the
// same curve point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.key.IsEqual(other.key)
}
