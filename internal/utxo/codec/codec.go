// Package codec implements the fixed binary schemas used for index keys and values.
//
// Unsigned integers are written as Bitcoin CompactSize varints, floats as
// little-endian IEEE-754 doubles and strings as varint-prefixed bytes.
// Optional fields are announced in a leading presence byte and are omitted
// from the encoding when absent, so absence survives a round trip.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/btcsuite/btcd/wire"
)

// pver is passed to the wire helpers; the varint format does not depend on it.
const pver = 0

// maxListLen bounds decoded list lengths to guard against corrupt values.
const maxListLen = 1 << 24

// ErrTrailingBytes is returned when a value carries data past its schema.
var ErrTrailingBytes = errors.New("codec: trailing bytes after value")

// EncodeSymbol encodes the {symbol} schema.
func EncodeSymbol(symbol uint64) []byte {
	var buf bytes.Buffer
	_ = wire.WriteVarInt(&buf, pver, symbol)
	return buf.Bytes()
}

// DecodeSymbol decodes the {symbol} schema.
func DecodeSymbol(b []byte) (uint64, error) {
	r := bytes.NewReader(b)
	symbol, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return 0, fmt.Errorf("decode symbol: %w", err)
	}
	if r.Len() != 0 {
		return 0, fmt.Errorf("decode symbol: %w", ErrTrailingBytes)
	}
	return symbol, nil
}

func writeUints(w io.Writer, values ...uint64) error {
	for _, v := range values {
		if err := wire.WriteVarInt(w, pver, v); err != nil {
			return err
		}
	}
	return nil
}

func writeFloat(w io.Writer, v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	_, err := w.Write(b[:])
	return err
}

func readFloat(r io.Reader) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}

func readUintList(r io.Reader) ([]uint64, error) {
	n, err := wire.ReadVarInt(r, pver)
	if err != nil {
		return nil, err
	}
	if n > maxListLen {
		return nil, fmt.Errorf("list length %d exceeds limit", n)
	}
	list := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := wire.ReadVarInt(r, pver)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func writeUintList(w io.Writer, list []uint64) error {
	if err := wire.WriteVarInt(w, pver, uint64(len(list))); err != nil {
		return err
	}
	return writeUints(w, list...)
}

func finish(r *bytes.Reader, what string) error {
	if r.Len() != 0 {
		return fmt.Errorf("decode %s: %w", what, ErrTrailingBytes)
	}
	return nil
}
