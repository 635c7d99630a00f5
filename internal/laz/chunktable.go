package laz

import (
	"encoding/binary"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Chunk table layout, little endian:
//
//	version  u32  always 0
//	count    u32  number of chunks
//	length   u32  bytes of the entry block
//	entries  varint point count, varint frame bytes, per chunk
const (
	chunkTableVersion    = 0
	chunkTableHeaderSize = 12
	maxChunkTableBlock   = 1 << 28
)

type chunkEntry struct {
	points uint64
	bytes  uint64
}

func appendChunkTable(dst []byte, entries []chunkEntry) []byte {
	var block []byte
	for _, e := range entries {
		block = protowire.AppendVarint(block, e.points)
		block = protowire.AppendVarint(block, e.bytes)
	}

	le := binary.LittleEndian
	dst = le.AppendUint32(dst, chunkTableVersion)
	dst = le.AppendUint32(dst, uint32(len(entries)))
	dst = le.AppendUint32(dst, uint32(len(block)))
	return append(dst, block...)
}

func readChunkTable(r io.Reader) ([]chunkEntry, error) {
	const op = "read chunk table"

	var raw [chunkTableHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, ioError(op, err)
	}

	le := binary.LittleEndian
	if version := le.Uint32(raw[0:]); version != chunkTableVersion {
		return nil, errorf(KindIo, op, "unsupported chunk table version %d", version)
	}
	count := le.Uint32(raw[4:])
	length := le.Uint32(raw[8:])
	if length > maxChunkTableBlock {
		return nil, errorf(KindIo, op, "entry block of %d bytes", length)
	}

	block := make([]byte, length)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, ioError(op, err)
	}

	entries := make([]chunkEntry, 0, min(count, length/2))
	for i := uint32(0); i < count; i++ {
		points, n := protowire.ConsumeVarint(block)
		if n < 0 {
			return nil, ioError(op, protowire.ParseError(n))
		}
		block = block[n:]

		size, n := protowire.ConsumeVarint(block)
		if n < 0 {
			return nil, ioError(op, protowire.ParseError(n))
		}
		block = block[n:]

		entries = append(entries, chunkEntry{points: points, bytes: size})
	}

	return entries, nil
}
