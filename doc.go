/*
Package arcula implements a hierarchical deterministic wallet built on
top of a deterministic hierarchical key assignment scheme.

Deterministic Hierarchical Key Assignment

From a single 256-bit seed, the DHKA type deterministically assigns an
independent tuple of key material (label, secret, encryption key,
private key) to every node of an access hierarchy. The derivation
walks the hierarchy breadth-first: each node's material is a PRF of
its parent's secret and its own identifier, so releasing one node's
material grants access to its whole subtree while revealing nothing
about ancestors or unrelated siblings. Every edge additionally carries
an authenticated ciphertext allowing a holder of the parent's
encryption key to recover the child's encryption and private keys,
which is the scheme's selective disclosure mechanism: handing out a
node's encryption key delegates its subtree without exposing the
node's own secret. The traversal verifies that the reachable
hierarchy is a tree and aborts otherwise.

Wallet

The Wallet type extends the key assignment scheme into a hierarchical
deterministic wallet. It takes a 512-bit seed, runs the scheme with
the first half, and derives a cold-storage signing key pair from the
second half. Every node then receives its own deterministic signing
key pair, seeded by the node's private key, together with a
certificate: a canonical DER signature of the cold-storage key over
the node's compressed signing public key concatenated with its
identifier. Certificates are publicly verifiable against the
cold-storage public key alone, so a third party can check that a
signing key was authorized to act for a position of the hierarchy
without learning any secret.

The cold-storage private key only lives for the duration of key
generation and its bytes are overwritten before returning. This is
best effort: the Go runtime may retain copies, so callers needing a
hard erasure guarantee must rely on external mechanisms.

The concrete primitives (hash, PRF, authenticated encryption) are
supplied through an explicit crypto.Suite value; signing is fixed to
ECDSA over secp256k1 (see the crypto/sign package).
*/
package arcula
