package arcula

import (
	"github.com/aldur/arcula/crypto/sign"
	"github.com/aldur/arcula/encoding"
)

// A Certificate is the cold-storage attestation binding a node's
// signing public key to its numeric identifier. PublicKey holds the
// 33-byte compressed verification key, ID the 8-byte big-endian
// identifier, and Signature the canonical DER signature over
// PublicKey ∥ ID.
//
// Certificates are the only material meant to leave the wallet:
// anyone holding the cold-storage public key can verify them with no
// access to any node secret.
type Certificate struct {
	Signature []byte
	PublicKey []byte
	ID        []byte
}

// newCertificate signs the binding of the verification key to the
// identifier under the cold-storage key.
func newCertificate(coldStorageKey *sign.PrivateKey, publicKey *sign.PublicKey, id uint64) *Certificate {
	cert := &Certificate{
		PublicKey: publicKey.Compress(),
		ID:        encoding.IDToBytes(id),
	}
	cert.Signature = coldStorageKey.Sign(cert.Message())
	return cert
}

// Message returns the signed payload, PublicKey ∥ ID.
func (c *Certificate) Message() []byte {
	message := make([]byte, 0, len(c.PublicKey)+len(c.ID))
	message = append(message, c.PublicKey...)
	return append(message, c.ID...)
}

// VerifyCertificate reports whether the certificate was authorized by
// the cold-storage key. Success proves the cold-storage authority
// bound the certificate's public key to its identifier.
func VerifyCertificate(coldStoragePublicKey *sign.PublicKey, c *Certificate) bool {
	return coldStoragePublicKey.Verify(c.Message(), c.Signature)
}
