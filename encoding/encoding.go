// Package encoding provides the fixed-width big-endian codecs used
// by the key assignment scheme: 8 bytes for node identifiers and
// 32 bytes for curve-scale values.
package encoding

import (
	"encoding/binary"
	"errors"
	"math/big"
)

const (
	// IDSize is the size in bytes of an encoded node identifier.
	IDSize = 8
	// ScalarSize is the size in bytes of an encoded curve-scale value.
	ScalarSize = 32
)

var (
	// ErrIDSize indicates that an encoded identifier has the
	// wrong length.
	ErrIDSize = errors.New("[encoding] Encoded identifier must be 8 bytes")
	// ErrScalarSize indicates that an encoded scalar has the
	// wrong length.
	ErrScalarSize = errors.New("[encoding] Encoded scalar must be 32 bytes")
	// ErrScalarRange indicates a value outside [0, 2^256).
	ErrScalarRange = errors.New("[encoding] Scalar out of range")
)

// IDToBytes serializes a node identifier to 8 big-endian bytes.
func IDToBytes(id uint64) []byte {
	buf := make([]byte, IDSize)
	binary.BigEndian.PutUint64(buf, id)
	return buf
}

// IDFromBytes deserializes a node identifier from 8 big-endian bytes.
func IDFromBytes(b []byte) (uint64, error) {
	if len(b) != IDSize {
		return 0, ErrIDSize
	}
	return binary.BigEndian.Uint64(b), nil
}

// ScalarToBytes serializes a non-negative integer smaller than 2^256
// to 32 big-endian bytes.
func ScalarToBytes(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 || x.BitLen() > ScalarSize*8 {
		return nil, ErrScalarRange
	}
	buf := make([]byte, ScalarSize)
	x.FillBytes(buf)
	return buf, nil
}

// ScalarFromBytes deserializes an integer from 32 big-endian bytes.
func ScalarFromBytes(b []byte) (*big.Int, error) {
	if len(b) != ScalarSize {
		return nil, ErrScalarSize
	}
	return new(big.Int).SetBytes(b), nil
}
