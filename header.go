package ustar

import (
	"bytes"

	"github.com/meigma/ustar/internal/octal"
)

// BlockSize is the unit of all archive I/O: headers occupy one block,
// bodies are zero-padded to a whole number of blocks.
const BlockSize = 512

// Header field offsets and widths, 0-indexed into the 512-byte block.
const (
	posName      = 0
	lenName      = 100
	posMode      = 100
	lenMode      = 8
	posOwnerID   = 108
	lenOwnerID   = 8
	posGroupID   = 116
	lenGroupID   = 8
	posSize      = 124
	lenSize      = 12
	posModTime   = 136
	lenModTime   = 12
	posChecksum  = 148
	lenChecksum  = 8
	posTypeFlag  = 156
	posLinkName  = 157
	lenLinkName  = 100
	posMagic     = 257
	posVersion   = 263
	posUserName  = 265
	lenUserName  = 32
	posGroupName = 297
	lenGroupName = 32
	posDevMajor  = 329
	posDevMinor  = 337
	posPrefix    = 345
	lenPrefix    = 155
)

const (
	magic   = "ustar"
	version = "00"
)

// padded returns size rounded up to the next block boundary.
func padded(size int64) int64 {
	r := size % BlockSize
	if r == 0 {
		return size
	}
	return size + BlockSize - r
}

// blockKind is the classification of a raw 512-byte block.
type blockKind uint8

const (
	// blockHeader carries the "ustar" magic at the magic offset.
	blockHeader blockKind = iota

	// blockNull is all zero bytes; it terminates the archive.
	blockNull

	// blockError is anything else; decoding stops on it.
	blockError
)

var zeroBlock [BlockSize]byte

// classifyBlock inspects a 512-byte block. The magic test wins over the
// null test, so a header is never mistaken for a terminator.
func classifyBlock(block []byte) blockKind {
	if string(block[posMagic:posMagic+len(magic)]) == magic {
		return blockHeader
	}
	if bytes.Equal(block, zeroBlock[:]) {
		return blockNull
	}
	return blockError
}

// headerChecksum sums the unsigned values of all 512 header bytes with the
// checksum field read as ASCII spaces.
func headerChecksum(block []byte) int64 {
	var sum int64
	for i, b := range block {
		if i >= posChecksum && i < posChecksum+lenChecksum {
			sum += ' '
			continue
		}
		sum += int64(b)
	}
	return sum
}

// putString writes s into a fixed-width field, truncating to the field
// width and NUL-padding the remainder.
func putString(field []byte, s string) {
	n := copy(field, s)
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
}

// encodeHeader renders meta as one header block.
//
// Field terminator conventions follow the USTAR layout: owner/group IDs are
// 6 octal digits + space + NUL, size and mtime are 11 octal digits + space,
// and the checksum is 6 octal digits + NUL + space. The mode field encodes
// the three permission classes after three leading zeros; the special bits
// never reach the wire.
func encodeHeader(meta MetaData) [BlockSize]byte {
	var block [BlockSize]byte

	putString(block[posName:posName+lenName], meta.Filename)

	copy(block[posMode:], "000")
	block[posMode+3] = meta.Mode.Owner.digit()
	block[posMode+4] = meta.Mode.Group.digit()
	block[posMode+5] = meta.Mode.Other.digit()
	block[posMode+6] = ' '
	block[posMode+7] = 0

	octal.Format(block[posOwnerID:posOwnerID+6], int64(meta.OwnerID))
	block[posOwnerID+6] = ' '
	block[posOwnerID+7] = 0

	octal.Format(block[posGroupID:posGroupID+6], int64(meta.GroupID))
	block[posGroupID+6] = ' '
	block[posGroupID+7] = 0

	octal.Format(block[posSize:posSize+11], meta.FileSize)
	block[posSize+11] = ' '

	octal.Format(block[posModTime:posModTime+11], meta.ModTime)
	block[posModTime+11] = ' '

	block[posTypeFlag] = byte(meta.TypeFlag)
	putString(block[posLinkName:posLinkName+lenLinkName], meta.LinkedFileName)

	copy(block[posMagic:], magic)
	block[posMagic+len(magic)] = 0
	copy(block[posVersion:], version)

	putString(block[posUserName:posUserName+lenUserName], meta.UserName)
	putString(block[posGroupName:posGroupName+lenGroupName], meta.GroupName)

	// Device major/minor fields stay as NUL placeholders: device entries
	// are not supported.

	putString(block[posPrefix:posPrefix+lenPrefix], meta.FileNamePrefix)

	octal.Format(block[posChecksum:posChecksum+6], headerChecksum(block[:]))
	block[posChecksum+6] = 0
	block[posChecksum+7] = ' '

	return block
}

// decodeHeader extracts the partial metadata a decoded entry carries: the
// filename and file size are read from the block, everything else comes
// from DefaultMetadata.
func decodeHeader(block []byte) MetaData {
	meta := DefaultMetadata()
	name := block[posName : posName+lenName]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	meta.Filename = string(name)
	meta.FileSize = octal.Parse(block[posSize : posSize+lenSize])
	return meta
}
