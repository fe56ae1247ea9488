// Package crypto contains the cryptographic routines the key
// assignment scheme is built on, to:
// - hash arbitrary data using SHA3-512, whole or truncated to 256 bits
// - compute a keyed PRF with a 256-bit output
// - perform authenticated encryption and decryption with AES-256-GCM.
// The primitives are bundled into an explicit Suite value so that the
// higher layers never depend on implicit defaults.
package crypto
