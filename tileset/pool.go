package tileset

import (
	"errors"
	"fmt"

	"github.com/bodgit/glyphpack/bitpack"
)

// MaxTiles is the most tiles a pool can hold, every index and the count
// itself must fit in 16 bits
const MaxTiles = 0xffff

// ErrPoolOverflow is returned when adding a tile to a full pool
var ErrPoolOverflow = errors.New("tileset: too many unique tiles")

// Pool is an append-only set of unique tiles. A tile's index is the position
// at which it was first added and never changes. The zero value is an empty
// pool ready to use.
type Pool struct {
	tiles []bitpack.Tile
	index map[bitpack.Tile]uint16
}

// Len returns the number of unique tiles in the pool
func (p *Pool) Len() int {
	return len(p.tiles)
}

// Add returns the index of t, appending it to the pool if it has not been
// seen before.
func (p *Pool) Add(t bitpack.Tile) (uint16, error) {
	if i, ok := p.index[t]; ok {
		return i, nil
	}
	if len(p.tiles) >= MaxTiles {
		return 0, fmt.Errorf("%w: limit is %d", ErrPoolOverflow, MaxTiles)
	}
	if p.index == nil {
		p.index = make(map[bitpack.Tile]uint16)
	}
	i := uint16(len(p.tiles))
	p.tiles = append(p.tiles, t)
	p.index[t] = i
	return i, nil
}

// Index returns the index of t and whether it is in the pool
func (p *Pool) Index(t bitpack.Tile) (uint16, bool) {
	i, ok := p.index[t]
	return i, ok
}

// Tile returns the tile at index i
func (p *Pool) Tile(i uint16) (bitpack.Tile, bool) {
	if int(i) >= len(p.tiles) {
		return bitpack.Tile{}, false
	}
	return p.tiles[i], true
}

// Tiles returns a copy of the pool contents in index order
func (p *Pool) Tiles() []bitpack.Tile {
	return append([]bitpack.Tile(nil), p.tiles...)
}
