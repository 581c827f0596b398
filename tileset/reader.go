package tileset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/glyphpack/bitpack"
)

var (
	errNotEnough     = errors.New("tileset: not enough data")
	errTooMuch       = errors.New("tileset: too much data")
	errBadReference  = errors.New("tileset: tile index out of range")
	errDuplicateTile = errors.New("tileset: duplicate tile in pool")
)

// UnmarshalBinary decodes the character set from binary form
func (ts *Tileset) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var refs [Slots]uint16
	if err := binary.Read(r, binary.LittleEndian, &refs); err != nil {
		return errNotEnough
	}

	var count uint16
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return errNotEnough
	}

	switch n := headerSize + int(count)*tileBytes; {
	case len(b) < n:
		return errNotEnough
	case len(b) > n:
		return errTooMuch
	}

	for slot, i := range refs {
		if i >= count {
			return fmt.Errorf("%w: slot %d references tile %d of %d", errBadReference, slot, i, count)
		}
	}

	var pool Pool
	for i := 0; i < int(count); i++ {
		var t bitpack.Tile
		if _, err := io.ReadFull(r, t[:]); err != nil {
			return errNotEnough
		}
		if j, ok := pool.Index(t); ok {
			return fmt.Errorf("%w: tile %d repeats tile %d", errDuplicateTile, i, j)
		}
		if _, err := pool.Add(t); err != nil {
			return err
		}
	}

	ts.refs = refs
	ts.pool = pool

	return nil
}

// Decode reads a deduplicated character set from r.
func Decode(r io.Reader) (*Tileset, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	ts := new(Tileset)
	if err := ts.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return ts, nil
}
