package laz

import (
	"encoding/binary"
	"math"
)

// CompressorType is the compressor field of a LASzip VLR.
type CompressorType uint16

const (
	CompressorNone             CompressorType = 0
	CompressorPointWise        CompressorType = 1
	CompressorPointWiseChunked CompressorType = 2
	CompressorLayeredChunked   CompressorType = 3
)

const (
	// VariableChunkSize marks streams whose chunks carry their own point count.
	VariableChunkSize uint32 = math.MaxUint32

	// DefaultChunkSize is the number of points per chunk of new streams.
	DefaultChunkSize uint32 = 50_000

	vlrHeaderSize = 34
	vlrItemSize   = 6

	coderArithmetic = 0
)

// LazVlr is the LASzip configuration record that describes how the points
// of a stream are coded.
type LazVlr struct {
	Compressor           CompressorType
	Coder                uint16
	VersionMajor         uint8
	VersionMinor         uint8
	VersionRevision      uint16
	Options              uint32
	ChunkSize            uint32
	NumberOfSpecialEvlrs int64
	OffsetToSpecialEvlrs int64
	Items                []LazItem
}

// NewLazVlrForPointFormat returns the record new streams of the given
// point format are written with. A zero chunkSize selects DefaultChunkSize.
func NewLazVlrForPointFormat(formatID uint8, numExtraBytes uint16, chunkSize uint32) (*LazVlr, error) {
	items, err := ItemsForPointFormat(formatID, numExtraBytes)
	if err != nil {
		return nil, err
	}

	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	compressor := CompressorPointWiseChunked
	if formatID >= 6 {
		compressor = CompressorLayeredChunked
	}

	return &LazVlr{
		Compressor:           compressor,
		Coder:                coderArithmetic,
		VersionMajor:         2,
		VersionMinor:         2,
		VersionRevision:      0,
		ChunkSize:            chunkSize,
		NumberOfSpecialEvlrs: -1,
		OffsetToSpecialEvlrs: -1,
		Items:                items,
	}, nil
}

// ParseLazVlr decodes and validates the record payload.
func ParseLazVlr(data []byte) (*LazVlr, error) {
	const op = "parse vlr"

	if len(data) < vlrHeaderSize {
		return nil, errorf(KindIo, op, "record is %d bytes, need at least %d", len(data), vlrHeaderSize)
	}

	le := binary.LittleEndian
	vlr := &LazVlr{
		Compressor:           CompressorType(le.Uint16(data[0:])),
		Coder:                le.Uint16(data[2:]),
		VersionMajor:         data[4],
		VersionMinor:         data[5],
		VersionRevision:      le.Uint16(data[6:]),
		Options:              le.Uint32(data[8:]),
		ChunkSize:            le.Uint32(data[12:]),
		NumberOfSpecialEvlrs: int64(le.Uint64(data[16:])),
		OffsetToSpecialEvlrs: int64(le.Uint64(data[24:])),
	}

	if vlr.Compressor > CompressorLayeredChunked {
		return nil, errorf(KindUnknownCompressorType, op, "compressor %d", vlr.Compressor)
	}

	numItems := int(le.Uint16(data[32:]))
	if want := vlrHeaderSize + numItems*vlrItemSize; len(data) < want {
		return nil, errorf(KindIo, op, "record is %d bytes, %d items need %d", len(data), numItems, want)
	}

	vlr.Items = make([]LazItem, 0, numItems)
	for i := 0; i < numItems; i++ {
		off := vlrHeaderSize + i*vlrItemSize
		item := LazItem{
			Type:    ItemType(le.Uint16(data[off:])),
			Size:    le.Uint16(data[off+2:]),
			Version: le.Uint16(data[off+4:]),
		}
		if err := item.validate(); err != nil {
			return nil, err
		}
		vlr.Items = append(vlr.Items, item)
	}

	return vlr, nil
}

// Size returns the serialized length of the record.
func (v *LazVlr) Size() int {
	return vlrHeaderSize + len(v.Items)*vlrItemSize
}

// Bytes serializes the record.
func (v *LazVlr) Bytes() []byte {
	le := binary.LittleEndian
	out := make([]byte, 0, v.Size())

	out = le.AppendUint16(out, uint16(v.Compressor))
	out = le.AppendUint16(out, v.Coder)
	out = append(out, v.VersionMajor, v.VersionMinor)
	out = le.AppendUint16(out, v.VersionRevision)
	out = le.AppendUint32(out, v.Options)
	out = le.AppendUint32(out, v.ChunkSize)
	out = le.AppendUint64(out, uint64(v.NumberOfSpecialEvlrs))
	out = le.AppendUint64(out, uint64(v.OffsetToSpecialEvlrs))
	out = le.AppendUint16(out, uint16(len(v.Items)))

	for _, item := range v.Items {
		out = le.AppendUint16(out, uint16(item.Type))
		out = le.AppendUint16(out, item.Size)
		out = le.AppendUint16(out, item.Version)
	}

	return out
}

// RecordSize returns the number of bytes of one point record.
func (v *LazVlr) RecordSize() int {
	size := 0
	for _, item := range v.Items {
		size += int(item.Size)
	}
	return size
}

// IsVariableChunked reports whether chunks carry their own point counts.
func (v *LazVlr) IsVariableChunked() bool {
	return v.ChunkSize == VariableChunkSize
}

// checkDecompressible rejects records that cannot drive a decompressor.
func (v *LazVlr) checkDecompressible() error {
	if v.Compressor == CompressorNone || v.Compressor == CompressorPointWise {
		return errorf(KindUnsupportedCompressorType, "new decompressor", "compressor %d", v.Compressor)
	}
	if len(v.Items) == 0 {
		return errorf(KindOther, "new decompressor", "record has no items")
	}
	if v.ChunkSize == 0 {
		return errorf(KindOther, "new decompressor", "chunk size is 0")
	}
	return nil
}
