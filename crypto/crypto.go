package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/sha3"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
	// KeySizeByte is the size of the symmetric and PRF keys in bytes.
	KeySizeByte = 32
	// NonceSizeByte is the size of the AEAD nonce in bytes.
	NonceSizeByte = 12
	// HashID identifies the used hash as a string.
	HashID = "SHA3-512/256"
)

var (
	// ErrSuiteIncomplete indicates that a Suite is missing one or
	// more of its required primitive functions.
	ErrSuiteIncomplete = errors.New("[crypto] Incomplete primitive suite")
	// ErrKeySize indicates that a symmetric key has the wrong length.
	ErrKeySize = errors.New("[crypto] Symmetric key must be 32 bytes")
)

// A HashFunc hashes all passed byte slices into a 256-bit digest.
type HashFunc func(ms ...[]byte) []byte

// A PRFFunc computes a 256-bit pseudorandom output for the
// given key and message.
type PRFFunc func(key, message []byte) []byte

// An EncryptFunc performs authenticated encryption of the plaintext
// under a 256-bit key, returning the nonce and the ciphertext.
type EncryptFunc func(key, plaintext []byte) (nonce, ciphertext []byte, err error)

// A DecryptFunc reverses an EncryptFunc. It returns an error if the
// ciphertext fails authentication.
type DecryptFunc func(key, nonce, ciphertext []byte) ([]byte, error)

// A Suite bundles the primitives the key assignment scheme is
// parameterized over. All fields are required; there are no
// silent defaults.
type Suite struct {
	Hash    HashFunc
	PRF     PRFFunc
	Encrypt EncryptFunc
	Decrypt DecryptFunc
}

// Validate reports whether the suite provides every primitive.
func (s Suite) Validate() error {
	if s.Hash == nil || s.PRF == nil || s.Encrypt == nil || s.Decrypt == nil {
		return ErrSuiteIncomplete
	}
	return nil
}

// DefaultSuite returns the suite used by the reference scheme:
// SHA3-512 truncated to 256 bits as hash and PRF, and
// AES-256-GCM as the authenticated cipher.
func DefaultSuite() Suite {
	return Suite{
		Hash:    SHA3512Half,
		PRF:     SHA3512HalfPRF,
		Encrypt: AESGCMEncrypt,
		Decrypt: AESGCMDecrypt,
	}
}

// SHA3512 hashes all passed byte slices with SHA3-512.
// The passed slices won't be mutated.
func SHA3512(ms ...[]byte) []byte {
	h := sha3.New512()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// SHA3512Half hashes all passed byte slices with SHA3-512 and
// returns the first half of the digest.
func SHA3512Half(ms ...[]byte) []byte {
	return SHA3512(ms...)[:HashSizeByte]
}

// SHA3512HalfPRF uses SHA3-512/256 as a PRF, keyed with key,
// over the message.
func SHA3512HalfPRF(key, message []byte) []byte {
	return SHA3512Half(key, message)
}

// AESGCMEncrypt performs an authenticated encryption of the plaintext
// under a 256-bit key with AES-256-GCM and a random 96-bit nonce.
func AESGCMEncrypt(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceSizeByte)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// AESGCMDecrypt reverses AESGCMEncrypt. It returns an error if the
// ciphertext or the nonce have been tampered with; it never returns
// an unauthenticated plaintext.
func AESGCMDecrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySizeByte {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
