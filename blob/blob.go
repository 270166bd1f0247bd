// ABOUTME: Binary hierarchy descriptor encoding and the cast lookup walk
// ABOUTME: Builds per-type blobs from base blobs and resolves identity offsets

// Package blob implements the immutable byte layout that records, for a
// registered type, every reachable ancestor identity together with the byte
// offset of the subobject that carries it.
//
// A blob is a sequence of blocks:
//
//	uint32 size | uint32 id * size | int64 offset-or-terminator
//
// The head block sits at offset 0 and starts with the type's own identity.
// The trailing field of a block holds the absolute offset of the next block's
// subobject, or 0 when the blob ends. Only the head block may sit at offset 0,
// which is what makes 0 usable as a terminator.
package blob

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// Field widths in bytes
const (
	SizeWidth   = 4
	IDWidth     = 4
	OffsetWidth = 8
)

var (
	// ErrNoBases is returned when Derive is called without bases
	ErrNoBases = errors.New("derived blob needs at least one base")

	// ErrPrimaryOffset is returned when the first base is not co-located with
	// the derived object
	ErrPrimaryOffset = errors.New("primary base must sit at offset 0")

	// ErrZeroOffset is returned when a secondary base would be recorded at
	// offset 0, which would read as a terminator
	ErrZeroOffset = errors.New("secondary base recorded at offset 0")

	// ErrMalformed is returned when bytes do not decode as a blob
	ErrMalformed = errors.New("malformed hierarchy blob")
)

// Blob is an encoded hierarchy descriptor
type Blob []byte

// Base is one direct base handed to Derive
type Base struct {
	Data   Blob  // The base's own blob
	Offset int64 // Byte offset of the base inside the derived object
}

// Block is a decoded block
type Block struct {
	Offset int64    // Offset of the block's subobject from the object start
	IDs    []uint32 // Identities reachable through this block
}

var le = binary.LittleEndian

// Root returns the blob of a type without bases
func Root(id uint32) Blob {
	b := make(Blob, 0, SizeWidth+IDWidth+OffsetWidth)
	b = le.AppendUint32(b, 1)
	b = le.AppendUint32(b, id)
	b = le.AppendUint64(b, 0)
	return b
}

// Derive returns the blob of a type with the given direct bases, in
// declaration order. The head block is the primary base's head block with id
// inserted in front; every further base contributes its blocks with their
// offsets shifted by the base's own offset.
//
// Repeated ancestors reachable through several bases are kept once per path.
func Derive(id uint32, bases []Base) (Blob, error) {
	if len(bases) == 0 {
		return nil, ErrNoBases
	}
	if bases[0].Offset != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPrimaryOffset, bases[0].Offset)
	}

	size := SizeWidth + IDWidth
	for _, base := range bases {
		size += len(base.Data)
	}
	out := make(Blob, 0, size)

	out, err := appendBlocks(out, bases[0].Data, 0, id)
	if err != nil {
		return nil, fmt.Errorf("primary base: %w", err)
	}

	for i, base := range bases[1:] {
		if base.Offset == 0 {
			return nil, fmt.Errorf("%w: base %d", ErrZeroOffset, i+1)
		}
		out = le.AppendUint64(out, uint64(base.Offset))
		out, err = appendBlocks(out, base.Data, base.Offset)
		if err != nil {
			return nil, fmt.Errorf("base %d: %w", i+1, err)
		}
	}

	return le.AppendUint64(out, 0), nil
}

// appendBlocks copies the blocks of src into dst, adding delta to every chained
// offset. front is prepended to the head block. The terminator is not copied.
func appendBlocks(dst, src Blob, delta int64, front ...uint32) (Blob, error) {
	blocks, err := src.Blocks()
	if err != nil {
		return nil, err
	}

	for i, blk := range blocks {
		if i > 0 {
			next := blk.Offset + delta
			if next == 0 {
				return nil, ErrZeroOffset
			}
			dst = le.AppendUint64(dst, uint64(next))
		}

		n := len(blk.IDs)
		if i == 0 {
			n += len(front)
		}
		dst = le.AppendUint32(dst, uint32(n))
		if i == 0 {
			for _, id := range front {
				dst = le.AppendUint32(dst, id)
			}
		}
		for _, id := range blk.IDs {
			dst = le.AppendUint32(dst, id)
		}
	}

	return dst, nil
}

// Find walks the blob from the head block and returns the offset of the first
// block that records id. The blob must be well formed.
func (b Blob) Find(id uint32) (int64, bool) {
	var offset int64
	pos := 0
	for {
		n := int(le.Uint32(b[pos:]))
		pos += SizeWidth

		for end := pos + n*IDWidth; pos < end; pos += IDWidth {
			if le.Uint32(b[pos:]) == id {
				return offset, true
			}
		}

		offset = int64(le.Uint64(b[pos:]))
		if offset == 0 {
			return 0, false
		}
		pos += OffsetWidth
	}
}

// Head returns the identity the blob was built for
func (b Blob) Head() uint32 {
	if len(b) < SizeWidth+IDWidth || le.Uint32(b) == 0 {
		return 0
	}
	return le.Uint32(b[SizeWidth:])
}

// Blocks decodes every block of the blob
func (b Blob) Blocks() ([]Block, error) {
	var blocks []Block
	var offset int64
	pos := 0

	for {
		if len(b)-pos < SizeWidth {
			return nil, fmt.Errorf("%w: truncated block size at byte %d", ErrMalformed, pos)
		}
		n := uint64(le.Uint32(b[pos:]))
		pos += SizeWidth

		if uint64(len(b)-pos) < n*IDWidth+OffsetWidth {
			return nil, fmt.Errorf("%w: block of %d ids overruns %d bytes", ErrMalformed, n, len(b))
		}
		ids := make([]uint32, n)
		for i := range ids {
			ids[i] = le.Uint32(b[pos:])
			pos += IDWidth
		}
		blocks = append(blocks, Block{Offset: offset, IDs: ids})

		next := int64(le.Uint64(b[pos:]))
		pos += OffsetWidth
		if next == 0 {
			if pos != len(b) {
				return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(b)-pos)
			}
			return blocks, nil
		}
		offset = next
	}
}

// Validate reports whether data is a well-formed blob
func Validate(data []byte) error {
	_, err := Blob(data).Blocks()
	return err
}

// Len returns the number of recorded identities across all blocks
func (b Blob) Len() int {
	blocks, err := b.Blocks()
	if err != nil {
		return 0
	}
	n := 0
	for _, blk := range blocks {
		n += len(blk.IDs)
	}
	return n
}

// Duplicates returns the identities recorded more than once, in ascending
// order. A non-empty result means the type inherits some ancestor through more
// than one path; lookups resolve such ancestors through the first path.
func (b Blob) Duplicates() []uint32 {
	blocks, err := b.Blocks()
	if err != nil {
		return nil
	}

	seen := make(map[uint32]int)
	for _, blk := range blocks {
		for _, id := range blk.IDs {
			seen[id]++
		}
	}

	var dups []uint32
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })
	return dups
}
